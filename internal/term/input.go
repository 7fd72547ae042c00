package term

import "github.com/grindlemire/webedit"

// Input is one decoded terminal input.
// Use a type switch to handle specific input types.
type Input interface {
	isInput()
}

// KeyInput is a key press.
type KeyInput struct {
	Key  webedit.Key
	Rune rune
	Mod  webedit.Modifier
}

// Button identifies the mouse button in a MouseInput.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonNone
	ButtonWheelUp
	ButtonWheelDown
)

// Action describes what a mouse report represents.
type Action int

const (
	// ActionPress is a button press or a wheel step.
	ActionPress Action = iota
	// ActionRelease is a button release.
	ActionRelease
	// ActionDrag is motion with a button held.
	ActionDrag
)

// MouseInput is an SGR mouse report in zero-based cell coordinates.
type MouseInput struct {
	Button Button
	Action Action
	X, Y   int
	Mod    webedit.Modifier
}

// ResizeInput reports a new terminal size.
type ResizeInput struct {
	Width, Height int
}

func (KeyInput) isInput()    {}
func (MouseInput) isInput()  {}
func (ResizeInput) isInput() {}
