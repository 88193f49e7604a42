package learngl

import (
	"fmt"
	"image"
)

// CheckPixelBuffer returns ErrPixelBuffer unless the rectangle is
// non-empty and dst holds width x height RGBA pixels.
func CheckPixelBuffer(dst []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrPixelBuffer, width, height)
	}
	if need := width * height * 4; len(dst) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrPixelBuffer, len(dst), need)
	}
	return nil
}

// CaptureFrame reads the bottom-left width x height region of the current
// framebuffer into a top-down RGBA image.
func CaptureFrame(ctx *Context, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrPixelBuffer, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := ctx.Device().ReadPixels(0, 0, width, height, img.Pix); err != nil {
		return nil, fmt.Errorf("read pixels: %w", err)
	}
	FlipRows(img.Pix, width*4, height)
	return img, nil
}

// FlipRows reverses the row order of pixels in place.
// OpenGL returns the bottom row first; images expect the top row first.
func FlipRows(pixels []byte, rowLen, rows int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}
}
