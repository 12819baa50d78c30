//go:build !cgo && !windows

package native

// stubEngine stands in when no real backend is available in this build
// (non-Windows without cgo). Every operation reports failure.
type stubEngine struct{}

func defaultEngine() Engine {
	return stubEngine{}
}

func (stubEngine) Run() int32                    { return Failure }
func (stubEngine) Stop() int32                   { return Failure }
func (stubEngine) SetDispatcher(func(*RawEvent)) {}
func (stubEngine) PostEvent(*RawEvent)           {}

func (stubEngine) ScreenInfo() ([]Screen, int32) { return nil, Failure }

func (stubEngine) AutoRepeatRate() int64                { return -1 }
func (stubEngine) AutoRepeatDelay() int64               { return -1 }
func (stubEngine) PointerAccelerationMultiplier() int64 { return -1 }
func (stubEngine) PointerAccelerationThreshold() int64  { return -1 }
func (stubEngine) PointerSensitivity() int64            { return -1 }
func (stubEngine) MultiClickTime() int64                { return -1 }
