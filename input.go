package learngl

// Key represents a keyboard key the programs react to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyCount
)

// InputState holds polled key state.
// Windows refresh it once per event poll.
type InputState struct {
	keyDown [KeyCount]bool
}

// NewInputState creates a new InputState with every key up.
func NewInputState() *InputState {
	return &InputState{}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	s.keyDown[key] = down
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyNone:
		return "--"
	case KeyEscape:
		return "Esc"
	default:
		return "?"
	}
}
