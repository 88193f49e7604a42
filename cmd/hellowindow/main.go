// Command hellowindow opens a resizable 500x500 window and presents
// empty frames until it is closed. Nothing is drawn.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	win, err := opengl.NewWindow(learngl.HelloWindowConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}

	// No teardown: process exit releases the window.
	learngl.RunWindow(win)
}
