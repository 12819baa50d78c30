package hook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"uiohook/internal/native"
)

func TestMouseButtonFromCode(t *testing.T) {
	for code := uint32(0); code <= 5; code++ {
		b, err := MouseButtonFromCode(code)
		if err != nil {
			t.Fatalf("code %d rejected: %v", code, err)
		}
		if uint32(b) != code {
			t.Errorf("code %d mapped to %v", code, b)
		}
	}
}

func TestMouseButtonFromCodeUnknown(t *testing.T) {
	_, err := MouseButtonFromCode(99)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownMouseButton))
	require.EqualError(t, err, "unknown mouse button: 99")
}

func TestMouseClickSequence(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(nil, newSlot(engine, testLogger(t)))

	require.NoError(t, MouseClick(h, Button1))

	posted := engine.Posted()
	require.Len(t, posted, 2)
	if posted[0].Kind != native.KindMousePressed || posted[1].Kind != native.KindMouseReleased {
		t.Errorf("click posted kinds %d, %d", posted[0].Kind, posted[1].Kind)
	}
	if posted[0].Mouse.Button != native.MouseButton1 {
		t.Errorf("click posted button %d", posted[0].Mouse.Button)
	}
}

func TestMouseMove(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(nil, newSlot(engine, testLogger(t)))

	require.NoError(t, MouseMove(h, 320, 240))

	posted := engine.Posted()
	require.Len(t, posted, 1)
	if posted[0].Kind != native.KindMouseMoved {
		t.Errorf("move posted kind %d", posted[0].Kind)
	}
	if posted[0].Mouse.X != 320 || posted[0].Mouse.Y != 240 {
		t.Errorf("move posted position (%d, %d)", posted[0].Mouse.X, posted[0].Mouse.Y)
	}
	if posted[0].Mouse.Button != native.MouseNoButton {
		t.Errorf("move posted button %d", posted[0].Mouse.Button)
	}
}
