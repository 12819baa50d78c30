// Package native is the boundary to the OS-level input hook engine.
//
// The engine captures global keyboard and mouse input, delivers flat
// event records to a single process-wide dispatcher callback, and can
// post synthetic events back to the OS. Three implementations exist:
//
//   - cgo binding to libuiohook (the primary backend)
//   - a pure-Go Windows fallback built on low-level hooks
//   - an in-memory FakeEngine used by tests
//
// Records handed to the dispatcher are only valid for the duration of
// the callback; the engine may reuse the backing storage immediately
// after the callback returns. Callers must copy what they need.
package native

// Status codes returned by Run, Stop and ScreenInfo. The values mirror
// the native header and must not be renumbered.
const (
	Success        int32 = 0x00
	Failure        int32 = 0x01
	ErrOutOfMemory int32 = 0x02

	// X11
	ErrXOpenDisplay         int32 = 0x20
	ErrXRecordNotFound      int32 = 0x21
	ErrXRecordAllocRange    int32 = 0x22
	ErrXRecordCreateContext int32 = 0x23
	ErrXRecordEnableContext int32 = 0x24
	ErrXRecordGetContext    int32 = 0x25

	// Windows
	ErrSetWindowsHookEx int32 = 0x30
	ErrGetModuleHandle  int32 = 0x31

	// macOS
	ErrAXAPIDisabled       int32 = 0x40
	ErrCreateEventPort     int32 = 0x41
	ErrCreateRunLoopSource int32 = 0x42
	ErrGetRunLoop          int32 = 0x43
	ErrCreateObserver      int32 = 0x44
)

// EventKind discriminates the payload of a RawEvent.
type EventKind uint32

// Event kinds, in native enumeration order starting at 1.
const (
	KindHookEnabled EventKind = iota + 1
	KindHookDisabled
	KindKeyTyped
	KindKeyPressed
	KindKeyReleased
	KindMouseClicked
	KindMousePressed
	KindMouseReleased
	KindMouseMoved
	KindMouseDragged
	KindMouseWheel
)

// Modifier mask bits carried in RawEvent.Mask.
const (
	MaskShiftL uint16 = 1 << 0
	MaskCtrlL  uint16 = 1 << 1
	MaskMetaL  uint16 = 1 << 2
	MaskAltL   uint16 = 1 << 3
	MaskShiftR uint16 = 1 << 4
	MaskCtrlR  uint16 = 1 << 5
	MaskMetaR  uint16 = 1 << 6
	MaskAltR   uint16 = 1 << 7

	MaskShift = MaskShiftL | MaskShiftR
	MaskCtrl  = MaskCtrlL | MaskCtrlR
	MaskMeta  = MaskMetaL | MaskMetaR
	MaskAlt   = MaskAltL | MaskAltR

	MaskButton1 uint16 = 1 << 8
	MaskButton2 uint16 = 1 << 9
	MaskButton3 uint16 = 1 << 10
	MaskButton4 uint16 = 1 << 11
	MaskButton5 uint16 = 1 << 12

	MaskNumLock    uint16 = 1 << 13
	MaskCapsLock   uint16 = 1 << 14
	MaskScrollLock uint16 = 1 << 15
)

// Mouse button codes.
const (
	MouseNoButton uint16 = 0
	MouseButton1  uint16 = 1
	MouseButton2  uint16 = 2
	MouseButton3  uint16 = 3
	MouseButton4  uint16 = 4
	MouseButton5  uint16 = 5
)

// Wheel scroll types and directions.
const (
	WheelUnitScroll  uint8 = 1
	WheelBlockScroll uint8 = 2

	WheelVerticalDirection   uint8 = 3
	WheelHorizontalDirection uint8 = 4
)

// CharUndefined marks an absent key character in KeyboardData.KeyChar.
const CharUndefined uint16 = 0xFFFF

// KeyboardData is the keyboard payload of a RawEvent.
type KeyboardData struct {
	KeyCode uint16
	RawCode uint16
	KeyChar uint16
}

// MouseData is the mouse payload of a RawEvent.
type MouseData struct {
	Button uint16
	Clicks uint16
	X      int16
	Y      int16
}

// WheelData is the wheel payload of a RawEvent.
type WheelData struct {
	Clicks    uint16
	X         int16
	Y         int16
	Type      uint8
	Amount    uint16
	Rotation  int16
	Direction uint8
}

// RawEvent is the flat event record exchanged with the engine. The
// native layer uses a tagged union; here all three payloads are carried
// side by side and Kind selects the meaningful one. Unused payloads are
// zero.
type RawEvent struct {
	Kind EventKind
	When uint64 // native timestamp, milliseconds
	Mask uint16

	Keyboard KeyboardData
	Mouse    MouseData
	Wheel    WheelData
}

// Screen describes one attached display.
type Screen struct {
	Number uint8
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// Engine abstracts the native hook engine. Implementations must accept
// Run being invoked from a dedicated goroutine and Stop from any other
// goroutine. The engine supports exactly one dispatcher per process;
// SetDispatcher replaces it wholesale.
type Engine interface {
	// Run installs the hook and blocks driving the native event loop
	// until Stop is called or a failure occurs. Returns a status code.
	Run() int32

	// Stop unblocks a concurrent Run. Returns a status code.
	Stop() int32

	// SetDispatcher registers the process-wide event callback. The
	// *RawEvent passed to the dispatcher is invalidated when the
	// dispatcher returns.
	SetDispatcher(func(*RawEvent))

	// PostEvent submits a synthetic event to the OS input queue.
	PostEvent(*RawEvent)

	// ScreenInfo reports the attached displays.
	ScreenInfo() ([]Screen, int32)

	// One-shot input subsystem queries. Negative values signal failure.
	AutoRepeatRate() int64
	AutoRepeatDelay() int64
	PointerAccelerationMultiplier() int64
	PointerAccelerationThreshold() int64
	PointerSensitivity() int64
	MultiClickTime() int64
}

// Default returns the engine for this platform and build.
func Default() Engine {
	return defaultEngine()
}
