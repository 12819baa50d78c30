package hook

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uiohook/internal/native"
)

func TestScreenInfo(t *testing.T) {
	engine := native.NewFakeEngine()
	engine.Screens = []native.Screen{
		{Number: 0, X: 0, Y: 0, Width: 2560, Height: 1440},
		{Number: 1, X: 2560, Y: 0, Width: 1920, Height: 1080},
	}

	screens, err := screenInfo(engine)
	require.NoError(t, err)
	require.Len(t, screens, 2)
	require.Equal(t, Screen{Number: 1, X: 2560, Y: 0, Width: 1920, Height: 1080}, screens[1])
}

func TestQueries(t *testing.T) {
	engine := native.NewFakeEngine()
	engine.RepeatRate = 30
	engine.ClickTime = 400

	rate, err := query(engine.AutoRepeatRate)
	require.NoError(t, err)
	require.Equal(t, int64(30), rate)

	click, err := query(engine.MultiClickTime)
	require.NoError(t, err)
	require.Equal(t, int64(400), click)
}

func TestQueryFailure(t *testing.T) {
	engine := native.NewFakeEngine()
	engine.Sensitivity = -1

	_, err := query(engine.PointerSensitivity)
	require.Error(t, err)
}
