package hook

import "uiohook/internal/native"

// Modifiers is the mask of modifier keys, mouse buttons and lock states
// active when an event fired. The bit layout matches the native mask.
type Modifiers uint16

// Modifier mask bits.
const (
	ModShiftL Modifiers = Modifiers(native.MaskShiftL)
	ModCtrlL  Modifiers = Modifiers(native.MaskCtrlL)
	ModMetaL  Modifiers = Modifiers(native.MaskMetaL)
	ModAltL   Modifiers = Modifiers(native.MaskAltL)
	ModShiftR Modifiers = Modifiers(native.MaskShiftR)
	ModCtrlR  Modifiers = Modifiers(native.MaskCtrlR)
	ModMetaR  Modifiers = Modifiers(native.MaskMetaR)
	ModAltR   Modifiers = Modifiers(native.MaskAltR)

	ModShift = ModShiftL | ModShiftR
	ModCtrl  = ModCtrlL | ModCtrlR
	ModMeta  = ModMetaL | ModMetaR
	ModAlt   = ModAltL | ModAltR

	ModButton1 Modifiers = Modifiers(native.MaskButton1)
	ModButton2 Modifiers = Modifiers(native.MaskButton2)
	ModButton3 Modifiers = Modifiers(native.MaskButton3)
	ModButton4 Modifiers = Modifiers(native.MaskButton4)
	ModButton5 Modifiers = Modifiers(native.MaskButton5)

	ModNumLock    Modifiers = Modifiers(native.MaskNumLock)
	ModCapsLock   Modifiers = Modifiers(native.MaskCapsLock)
	ModScrollLock Modifiers = Modifiers(native.MaskScrollLock)
)

// Has reports whether all bits of m are set.
func (mods Modifiers) Has(m Modifiers) bool { return mods&m == m }

// HasAny reports whether any bit of m is set.
func (mods Modifiers) HasAny(m Modifiers) bool { return mods&m != 0 }

// HasShift reports whether either shift key is held.
func (mods Modifiers) HasShift() bool { return mods.HasAny(ModShift) }

// HasCtrl reports whether either control key is held.
func (mods Modifiers) HasCtrl() bool { return mods.HasAny(ModCtrl) }

// HasAlt reports whether either alt key is held.
func (mods Modifiers) HasAlt() bool { return mods.HasAny(ModAlt) }

// HasMeta reports whether either meta key is held.
func (mods Modifiers) HasMeta() bool { return mods.HasAny(ModMeta) }

// Event is a decoded hook event. It is a sealed interface: the only
// implementations are HookEnabledEvent, HookDisabledEvent,
// KeyboardEvent, MouseEvent and WheelEvent. Handle events with a type
// switch over those pointer types.
type Event interface {
	// Timestamp returns the native event time in milliseconds.
	Timestamp() uint64

	// Mask returns the modifier state captured with the event.
	Mask() Modifiers

	isEvent()
}

// HookEnabledEvent signals that the native hook finished installing.
type HookEnabledEvent struct {
	When uint64
	Mods Modifiers
}

// HookDisabledEvent signals that the native hook was removed.
type HookDisabledEvent struct {
	When uint64
	Mods Modifiers
}

func (e *HookEnabledEvent) Timestamp() uint64 { return e.When }
func (e *HookEnabledEvent) Mask() Modifiers   { return e.Mods }
func (e *HookEnabledEvent) isEvent()          {}

func (e *HookDisabledEvent) Timestamp() uint64 { return e.When }
func (e *HookDisabledEvent) Mask() Modifiers   { return e.Mods }
func (e *HookDisabledEvent) isEvent()          {}

// fromRaw decodes a native record into an Event. The decoding is total
// over the known kinds; an out-of-range discriminant yields an
// ErrUnknown error carrying the value, never a panic. The input record
// is fully copied, so the returned event stays valid after the native
// storage is reused.
func fromRaw(raw *native.RawEvent) (Event, error) {
	when, mods := raw.When, Modifiers(raw.Mask)

	switch raw.Kind {
	case native.KindHookEnabled:
		return &HookEnabledEvent{When: when, Mods: mods}, nil
	case native.KindHookDisabled:
		return &HookDisabledEvent{When: when, Mods: mods}, nil

	case native.KindKeyPressed, native.KindKeyReleased, native.KindKeyTyped:
		ev := &KeyboardEvent{
			Phase:   keyPhaseOf(raw.Kind),
			Key:     KeyCodeFromRaw(uint32(raw.Keyboard.KeyCode)),
			RawCode: raw.Keyboard.RawCode,
			When:    when,
			Mods:    mods,
		}
		if raw.Keyboard.KeyChar != native.CharUndefined {
			ev.Char = rune(raw.Keyboard.KeyChar)
		}
		return ev, nil

	case native.KindMousePressed, native.KindMouseReleased, native.KindMouseClicked,
		native.KindMouseMoved, native.KindMouseDragged:
		button, err := MouseButtonFromCode(uint32(raw.Mouse.Button))
		if err != nil {
			return nil, err
		}
		return &MouseEvent{
			Phase:  mousePhaseOf(raw.Kind),
			Button: button,
			Clicks: raw.Mouse.Clicks,
			X:      raw.Mouse.X,
			Y:      raw.Mouse.Y,
			When:   when,
			Mods:   mods,
		}, nil

	case native.KindMouseWheel:
		return &WheelEvent{
			Clicks:    raw.Wheel.Clicks,
			X:         raw.Wheel.X,
			Y:         raw.Wheel.Y,
			Type:      ScrollType(raw.Wheel.Type),
			Amount:    raw.Wheel.Amount,
			Rotation:  raw.Wheel.Rotation,
			Direction: ScrollDirection(raw.Wheel.Direction),
			When:      when,
			Mods:      mods,
		}, nil
	}

	return nil, &Error{Kind: ErrUnknown, Code: uint32(raw.Kind)}
}

// toRaw encodes an Event into a native record. Payloads of the other
// variants are left zero.
func toRaw(ev Event) (native.RawEvent, error) {
	if ev == nil {
		return native.RawEvent{}, &Error{Kind: ErrUnknown}
	}

	raw := native.RawEvent{When: ev.Timestamp(), Mask: uint16(ev.Mask())}

	switch e := ev.(type) {
	case *HookEnabledEvent:
		raw.Kind = native.KindHookEnabled
	case *HookDisabledEvent:
		raw.Kind = native.KindHookDisabled

	case *KeyboardEvent:
		raw.Kind = e.Phase.kind()
		raw.Keyboard = native.KeyboardData{
			KeyCode: uint16(e.Key),
			RawCode: e.RawCode,
			KeyChar: native.CharUndefined,
		}
		if e.Char != 0 {
			raw.Keyboard.KeyChar = uint16(e.Char)
		}

	case *MouseEvent:
		raw.Kind = e.Phase.kind()
		raw.Mouse = native.MouseData{
			Button: uint16(e.Button),
			Clicks: e.Clicks,
			X:      e.X,
			Y:      e.Y,
		}

	case *WheelEvent:
		raw.Kind = native.KindMouseWheel
		raw.Wheel = native.WheelData{
			Clicks:    e.Clicks,
			X:         e.X,
			Y:         e.Y,
			Type:      uint8(e.Type),
			Amount:    e.Amount,
			Rotation:  e.Rotation,
			Direction: uint8(e.Direction),
		}

	default:
		return native.RawEvent{}, &Error{Kind: ErrUnknown}
	}

	return raw, nil
}
