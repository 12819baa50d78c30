package hook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uiohook/internal/native"
)

func TestFromRawKeyboard(t *testing.T) {
	raw := &native.RawEvent{
		Kind: native.KindKeyPressed,
		When: 12345,
		Mask: native.MaskShiftL | native.MaskCapsLock,
		Keyboard: native.KeyboardData{
			KeyCode: uint16(KeyA),
			RawCode: 0x41,
			KeyChar: native.CharUndefined,
		},
	}

	ev, err := fromRaw(raw)
	require.NoError(t, err)

	kb, ok := ev.(*KeyboardEvent)
	require.True(t, ok, "decoded to %T", ev)
	assert.Equal(t, KeyPressed, kb.Phase)
	assert.Equal(t, KeyA, kb.Key)
	assert.Equal(t, uint16(0x41), kb.RawCode)
	assert.Equal(t, rune(0), kb.Char, "undefined char must decode to zero")
	assert.Equal(t, uint64(12345), kb.Timestamp())
	assert.True(t, kb.Mask().HasShift())
	assert.True(t, kb.Mask().Has(ModCapsLock))
}

func TestFromRawKeyTyped(t *testing.T) {
	raw := &native.RawEvent{
		Kind:     native.KindKeyTyped,
		Keyboard: native.KeyboardData{KeyCode: uint16(KeyA), KeyChar: 'a'},
	}

	ev, err := fromRaw(raw)
	require.NoError(t, err)

	kb := ev.(*KeyboardEvent)
	assert.Equal(t, KeyTyped, kb.Phase)
	assert.Equal(t, 'a', kb.Char)
}

func TestFromRawMouse(t *testing.T) {
	raw := &native.RawEvent{
		Kind: native.KindMouseClicked,
		When: 777,
		Mouse: native.MouseData{
			Button: native.MouseButton2,
			Clicks: 2,
			X:      100,
			Y:      -20,
		},
	}

	ev, err := fromRaw(raw)
	require.NoError(t, err)

	me := ev.(*MouseEvent)
	assert.Equal(t, MouseClicked, me.Phase)
	assert.Equal(t, Button2, me.Button)
	assert.Equal(t, uint16(2), me.Clicks)
	assert.Equal(t, int16(100), me.X)
	assert.Equal(t, int16(-20), me.Y)
}

func TestFromRawMouseUnknownButton(t *testing.T) {
	raw := &native.RawEvent{
		Kind:  native.KindMousePressed,
		Mouse: native.MouseData{Button: 99},
	}

	_, err := fromRaw(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMouseButton))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, uint32(99), e.Code)
}

func TestFromRawWheel(t *testing.T) {
	raw := &native.RawEvent{
		Kind: native.KindMouseWheel,
		Wheel: native.WheelData{
			Clicks:    1,
			X:         10,
			Y:         20,
			Type:      native.WheelUnitScroll,
			Amount:    3,
			Rotation:  -1,
			Direction: native.WheelVerticalDirection,
		},
	}

	ev, err := fromRaw(raw)
	require.NoError(t, err)

	we := ev.(*WheelEvent)
	assert.Equal(t, UnitScroll, we.Type)
	assert.Equal(t, int16(-1), we.Rotation)
	assert.True(t, we.IsVertical())
	assert.False(t, we.IsHorizontal())
}

func TestFromRawHookLifecycle(t *testing.T) {
	ev, err := fromRaw(&native.RawEvent{Kind: native.KindHookEnabled, When: 1})
	require.NoError(t, err)
	require.IsType(t, &HookEnabledEvent{}, ev)

	ev, err = fromRaw(&native.RawEvent{Kind: native.KindHookDisabled, When: 2})
	require.NoError(t, err)
	require.IsType(t, &HookDisabledEvent{}, ev)
}

func TestFromRawUnknownKind(t *testing.T) {
	// An out-of-range discriminant is reported, not panicked on.
	_, err := fromRaw(&native.RawEvent{Kind: native.EventKind(42)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, uint32(42), e.Code)
}

func TestRoundTripKeyboard(t *testing.T) {
	orig := &KeyboardEvent{
		Phase:   KeyReleased,
		Key:     KeyEnter,
		RawCode: 0x0D,
		When:    42,
		Mods:    ModCtrlL,
	}

	raw, err := toRaw(orig)
	require.NoError(t, err)
	assert.Equal(t, native.CharUndefined, raw.Keyboard.KeyChar,
		"zero char must encode to the undefined sentinel")

	back, err := fromRaw(&raw)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestRoundTripMouse(t *testing.T) {
	orig := &MouseEvent{
		Phase:  MouseDragged,
		Button: Button1,
		Clicks: 1,
		X:      -5,
		Y:      300,
		When:   9,
		Mods:   ModButton1,
	}

	raw, err := toRaw(orig)
	require.NoError(t, err)

	back, err := fromRaw(&raw)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestRoundTripWheel(t *testing.T) {
	orig := &WheelEvent{
		Clicks:    1,
		X:         4,
		Y:         5,
		Type:      BlockScroll,
		Amount:    2,
		Rotation:  1,
		Direction: HorizontalScroll,
		When:      77,
	}

	raw, err := toRaw(orig)
	require.NoError(t, err)

	back, err := fromRaw(&raw)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestToRawNil(t *testing.T) {
	_, err := toRaw(nil)
	require.Error(t, err)
}
