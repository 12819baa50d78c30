package hook

import (
	"fmt"

	"uiohook/internal/native"
)

// KeyPhase tells which part of a key's life cycle a KeyboardEvent
// describes.
type KeyPhase uint8

// Key phases.
const (
	KeyPressed KeyPhase = iota + 1
	KeyReleased
	KeyTyped
)

func (p KeyPhase) String() string {
	switch p {
	case KeyPressed:
		return "pressed"
	case KeyReleased:
		return "released"
	case KeyTyped:
		return "typed"
	}
	return fmt.Sprintf("KeyPhase(%d)", uint8(p))
}

func (p KeyPhase) kind() native.EventKind {
	switch p {
	case KeyReleased:
		return native.KindKeyReleased
	case KeyTyped:
		return native.KindKeyTyped
	}
	return native.KindKeyPressed
}

func keyPhaseOf(kind native.EventKind) KeyPhase {
	switch kind {
	case native.KindKeyReleased:
		return KeyReleased
	case native.KindKeyTyped:
		return KeyTyped
	}
	return KeyPressed
}

// KeyboardEvent is a key press, release or typed character. Char is the
// character produced by the key, or 0 when the event carries none (the
// usual case for press and release).
type KeyboardEvent struct {
	Phase   KeyPhase
	Key     KeyCode
	RawCode uint16
	Char    rune

	When uint64
	Mods Modifiers
}

func (e *KeyboardEvent) Timestamp() uint64 { return e.When }
func (e *KeyboardEvent) Mask() Modifiers   { return e.Mods }
func (e *KeyboardEvent) isEvent()          {}

// KeyTap posts a press and release of key, wrapped in presses of the
// given modifier keys. Modifiers are pressed in argument order before
// the key and released in reverse order after it. The first failed post
// aborts the sequence.
func KeyTap(h *Hook, key KeyCode, modifiers ...KeyCode) error {
	if err := KeyToggle(h, key, true, modifiers...); err != nil {
		return err
	}
	return KeyToggle(h, key, false, modifiers...)
}

// KeyToggle posts a press (pressed true) or release (pressed false) of
// key. On press the modifiers go down first, in argument order; on
// release the key goes up first and the modifiers follow in reverse
// order. The first failed post aborts the sequence.
func KeyToggle(h *Hook, key KeyCode, pressed bool, modifiers ...KeyCode) error {
	press := func(k KeyCode) error {
		return h.PostEvent(&KeyboardEvent{Phase: KeyPressed, Key: k})
	}
	release := func(k KeyCode) error {
		return h.PostEvent(&KeyboardEvent{Phase: KeyReleased, Key: k})
	}

	if pressed {
		for _, mod := range modifiers {
			if err := press(mod); err != nil {
				return err
			}
		}
		return press(key)
	}

	if err := release(key); err != nil {
		return err
	}
	for i := len(modifiers) - 1; i >= 0; i-- {
		if err := release(modifiers[i]); err != nil {
			return err
		}
	}
	return nil
}
