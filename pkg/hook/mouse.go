package hook

import (
	"fmt"

	"uiohook/internal/native"
)

// MousePhase tells which kind of pointer activity a MouseEvent
// describes.
type MousePhase uint8

// Mouse phases.
const (
	MouseMoved MousePhase = iota + 1
	MousePressed
	MouseReleased
	MouseClicked
	MouseDragged
)

func (p MousePhase) String() string {
	switch p {
	case MouseMoved:
		return "moved"
	case MousePressed:
		return "pressed"
	case MouseReleased:
		return "released"
	case MouseClicked:
		return "clicked"
	case MouseDragged:
		return "dragged"
	}
	return fmt.Sprintf("MousePhase(%d)", uint8(p))
}

func (p MousePhase) kind() native.EventKind {
	switch p {
	case MousePressed:
		return native.KindMousePressed
	case MouseReleased:
		return native.KindMouseReleased
	case MouseClicked:
		return native.KindMouseClicked
	case MouseDragged:
		return native.KindMouseDragged
	}
	return native.KindMouseMoved
}

func mousePhaseOf(kind native.EventKind) MousePhase {
	switch kind {
	case native.KindMousePressed:
		return MousePressed
	case native.KindMouseReleased:
		return MouseReleased
	case native.KindMouseClicked:
		return MouseClicked
	case native.KindMouseDragged:
		return MouseDragged
	}
	return MouseMoved
}

// MouseButton identifies a pointer button. NoButton is used for pure
// movement events.
type MouseButton uint16

// Mouse buttons.
const (
	NoButton MouseButton = iota
	Button1
	Button2
	Button3
	Button4
	Button5
)

func (b MouseButton) String() string {
	if b == NoButton {
		return "NoButton"
	}
	if b <= Button5 {
		return fmt.Sprintf("Button%d", uint16(b))
	}
	return fmt.Sprintf("MouseButton(%d)", uint16(b))
}

// MouseButtonFromCode maps a native button code to a MouseButton.
// Codes above 5 are rejected with an ErrUnknownMouseButton error
// carrying the offending code.
func MouseButtonFromCode(code uint32) (MouseButton, error) {
	if code > uint32(Button5) {
		return NoButton, &Error{Kind: ErrUnknownMouseButton, Code: code}
	}
	return MouseButton(code), nil
}

// MouseEvent is pointer movement, a button transition or a completed
// click. X and Y are screen coordinates; Clicks is the click count for
// press, release and click phases.
type MouseEvent struct {
	Phase  MousePhase
	Button MouseButton
	Clicks uint16
	X      int16
	Y      int16

	When uint64
	Mods Modifiers
}

func (e *MouseEvent) Timestamp() uint64 { return e.When }
func (e *MouseEvent) Mask() Modifiers   { return e.Mods }
func (e *MouseEvent) isEvent()          {}

// MousePress posts a press of the given button at the current pointer
// position.
func MousePress(h *Hook, button MouseButton) error {
	return h.PostEvent(&MouseEvent{Phase: MousePressed, Button: button, Clicks: 1})
}

// MouseRelease posts a release of the given button at the current
// pointer position.
func MouseRelease(h *Hook, button MouseButton) error {
	return h.PostEvent(&MouseEvent{Phase: MouseReleased, Button: button, Clicks: 1})
}

// MouseClick posts a press followed by a release of the given button.
// The first failed post aborts the sequence.
func MouseClick(h *Hook, button MouseButton) error {
	if err := MousePress(h, button); err != nil {
		return err
	}
	return MouseRelease(h, button)
}

// MouseMove posts an absolute pointer move to screen coordinates x, y.
func MouseMove(h *Hook, x, y int16) error {
	return h.PostEvent(&MouseEvent{Phase: MouseMoved, Button: NoButton, X: x, Y: y})
}
