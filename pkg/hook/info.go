package hook

import "uiohook/internal/native"

// Screen describes one attached display.
type Screen struct {
	Number uint8
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// ScreenInfo reports the attached displays.
func ScreenInfo() ([]Screen, error) {
	return screenInfo(sharedSlot().engine)
}

func screenInfo(e native.Engine) ([]Screen, error) {
	raw, status := e.ScreenInfo()
	if status != native.Success {
		return nil, errorFromStatus(status)
	}
	screens := make([]Screen, len(raw))
	for i, s := range raw {
		screens[i] = Screen{
			Number: s.Number,
			X:      s.X,
			Y:      s.Y,
			Width:  s.Width,
			Height: s.Height,
		}
	}
	return screens, nil
}

// AutoRepeatRate reports the keyboard auto-repeat rate.
func AutoRepeatRate() (int64, error) {
	return query(sharedSlot().engine.AutoRepeatRate)
}

// AutoRepeatDelay reports the delay before keyboard auto-repeat starts.
func AutoRepeatDelay() (int64, error) {
	return query(sharedSlot().engine.AutoRepeatDelay)
}

// PointerAccelerationMultiplier reports the pointer acceleration
// multiplier.
func PointerAccelerationMultiplier() (int64, error) {
	return query(sharedSlot().engine.PointerAccelerationMultiplier)
}

// PointerAccelerationThreshold reports the pointer acceleration
// threshold.
func PointerAccelerationThreshold() (int64, error) {
	return query(sharedSlot().engine.PointerAccelerationThreshold)
}

// PointerSensitivity reports the pointer sensitivity.
func PointerSensitivity() (int64, error) {
	return query(sharedSlot().engine.PointerSensitivity)
}

// MultiClickTime reports the maximum interval between clicks of a
// multi-click, in milliseconds.
func MultiClickTime() (int64, error) {
	return query(sharedSlot().engine.MultiClickTime)
}

// query normalizes the native convention of negative values meaning the
// property could not be read.
func query(fn func() int64) (int64, error) {
	v := fn()
	if v < 0 {
		return 0, &Error{Kind: ErrFailure}
	}
	return v, nil
}
