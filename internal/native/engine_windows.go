//go:build windows && !cgo

package native

import (
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsEngine is a pure-Go fallback used when the cgo libuiohook
// binding is unavailable. It installs WH_KEYBOARD_LL and WH_MOUSE_LL
// hooks and pumps a message loop on the Run thread.
//
// Known gaps versus libuiohook: no key-typed events and no multi-click
// counting; Clicks is always 1 on button events.
type windowsEngine struct {
	mu         sync.Mutex
	dispatcher func(*RawEvent)
	threadID   uint32
	buttons    uint16 // pressed-button mask, for moved vs dragged
}

func defaultEngine() Engine {
	return &windowsEngine{}
}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetWindowsHookExW     = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx   = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx        = user32.NewProc("CallNextHookEx")
	procGetMessageW           = user32.NewProc("GetMessageW")
	procPostThreadMessageW    = user32.NewProc("PostThreadMessageW")
	procSendInput             = user32.NewProc("SendInput")
	procGetSystemMetrics      = user32.NewProc("GetSystemMetrics")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
	procGetDoubleClickTime    = user32.NewProc("GetDoubleClickTime")
	procGetCurrentThreadId    = kernel32.NewProc("GetCurrentThreadId")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmQuit        = 0x0012
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmMouseHWheel = 0x020E
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C

	llkhfExtended = 0x01

	inputMouse    = 0
	inputKeyboard = 1

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
	keyeventfScancode    = 0x0008

	mouseeventfMove       = 0x0001
	mouseeventfLeftDown   = 0x0002
	mouseeventfLeftUp     = 0x0004
	mouseeventfRightDown  = 0x0008
	mouseeventfRightUp    = 0x0010
	mouseeventfMiddleDown = 0x0020
	mouseeventfMiddleUp   = 0x0040
	mouseeventfXDown      = 0x0080
	mouseeventfXUp        = 0x0100
	mouseeventfWheel      = 0x0800
	mouseeventfHWheel     = 0x1000
	mouseeventfAbsolute   = 0x8000

	smCxScreen = 0
	smCyScreen = 1

	spiGetKeyboardSpeed = 0x000A
	spiGetKeyboardDelay = 0x0016
	spiGetMouseSpeed    = 0x0070
)

type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msllHookStruct struct {
	Pt          point
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type point struct {
	X, Y int32
}

type msg struct {
	Hwnd    windows.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type keybdInput struct {
	Vk          uint16
	Scan        uint16
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type mouseInput struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// input matches the Win32 INPUT union; the payload area is sized for
// the larger MOUSEINPUT member.
type input struct {
	Type uint32
	_    uint32 // 8-byte alignment of the union
	Mi   mouseInput
}

// Run installs the low-level hooks and pumps messages until Stop posts
// WM_QUIT. Hook callbacks fire on this thread, so it is locked to the
// OS thread for the duration.
func (e *windowsEngine) Run() int32 {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tid, _, _ := procGetCurrentThreadId.Call()
	e.mu.Lock()
	e.threadID = uint32(tid)
	e.mu.Unlock()

	kbProc := windows.NewCallback(func(nCode int32, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			e.onKeyboard(wParam, (*kbdllHookStruct)(unsafe.Pointer(lParam)))
		}
		ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return ret
	})
	mouseProc := windows.NewCallback(func(nCode int32, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			e.onMouse(wParam, (*msllHookStruct)(unsafe.Pointer(lParam)))
		}
		ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return ret
	})

	kbHook, _, _ := procSetWindowsHookExW.Call(whKeyboardLL, kbProc, 0, 0)
	if kbHook == 0 {
		return ErrSetWindowsHookEx
	}
	mHook, _, _ := procSetWindowsHookExW.Call(whMouseLL, mouseProc, 0, 0)
	if mHook == 0 {
		procUnhookWindowsHookEx.Call(kbHook)
		return ErrSetWindowsHookEx
	}

	e.deliver(&RawEvent{Kind: KindHookEnabled})

	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			break
		}
	}

	procUnhookWindowsHookEx.Call(kbHook)
	procUnhookWindowsHookEx.Call(mHook)
	e.deliver(&RawEvent{Kind: KindHookDisabled})
	return Success
}

// Stop posts WM_QUIT to the Run thread's message loop.
func (e *windowsEngine) Stop() int32 {
	e.mu.Lock()
	tid := e.threadID
	e.mu.Unlock()
	if tid == 0 {
		return Failure
	}
	ret, _, _ := procPostThreadMessageW.Call(uintptr(tid), wmQuit, 0, 0)
	if ret == 0 {
		return Failure
	}
	return Success
}

func (e *windowsEngine) SetDispatcher(fn func(*RawEvent)) {
	e.mu.Lock()
	e.dispatcher = fn
	e.mu.Unlock()
}

func (e *windowsEngine) deliver(ev *RawEvent) {
	e.mu.Lock()
	fn := e.dispatcher
	e.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

func (e *windowsEngine) onKeyboard(wParam uintptr, k *kbdllHookStruct) {
	var kind EventKind
	switch wParam {
	case wmKeyDown, wmSysKeyDown:
		kind = KindKeyPressed
	case wmKeyUp, wmSysKeyUp:
		kind = KindKeyReleased
	default:
		return
	}

	// Key codes follow scan code set 1, which is also what the OS hands
	// us here; extended keys carry an 0x0E00 prefix.
	code := uint16(k.ScanCode)
	if k.Flags&llkhfExtended != 0 {
		code |= 0x0E00
	}

	e.deliver(&RawEvent{
		Kind: kind,
		When: uint64(k.Time),
		Keyboard: KeyboardData{
			KeyCode: code,
			RawCode: uint16(k.VkCode),
			KeyChar: CharUndefined,
		},
	})
}

func (e *windowsEngine) onMouse(wParam uintptr, m *msllHookStruct) {
	raw := RawEvent{When: uint64(m.Time)}
	x, y := int16(m.Pt.X), int16(m.Pt.Y)

	switch wParam {
	case wmMouseMove:
		e.mu.Lock()
		dragging := e.buttons != 0
		e.mu.Unlock()
		raw.Kind = KindMouseMoved
		if dragging {
			raw.Kind = KindMouseDragged
		}
		raw.Mouse = MouseData{Button: MouseNoButton, X: x, Y: y}
	case wmLButtonDown, wmRButtonDown, wmMButtonDown, wmXButtonDown:
		btn := buttonFor(wParam, m.MouseData)
		e.setButton(btn, true)
		raw.Kind = KindMousePressed
		raw.Mouse = MouseData{Button: btn, Clicks: 1, X: x, Y: y}
	case wmLButtonUp, wmRButtonUp, wmMButtonUp, wmXButtonUp:
		btn := buttonFor(wParam, m.MouseData)
		e.setButton(btn, false)
		raw.Kind = KindMouseReleased
		raw.Mouse = MouseData{Button: btn, Clicks: 1, X: x, Y: y}
	case wmMouseWheel, wmMouseHWheel:
		direction := WheelVerticalDirection
		if wParam == wmMouseHWheel {
			direction = WheelHorizontalDirection
		}
		rotation := int16(uint16(m.MouseData >> 16))
		raw.Kind = KindMouseWheel
		raw.Wheel = WheelData{
			Clicks:    1,
			X:         x,
			Y:         y,
			Type:      WheelUnitScroll,
			Amount:    3,
			Rotation:  rotation,
			Direction: direction,
		}
	default:
		return
	}

	e.deliver(&raw)
}

func buttonFor(wParam uintptr, mouseData uint32) uint16 {
	switch wParam {
	case wmLButtonDown, wmLButtonUp:
		return MouseButton1
	case wmRButtonDown, wmRButtonUp:
		return MouseButton2
	case wmMButtonDown, wmMButtonUp:
		return MouseButton3
	case wmXButtonDown, wmXButtonUp:
		if mouseData>>16 == 2 {
			return MouseButton5
		}
		return MouseButton4
	}
	return MouseNoButton
}

func (e *windowsEngine) setButton(btn uint16, down bool) {
	if btn == MouseNoButton {
		return
	}
	e.mu.Lock()
	if down {
		e.buttons |= 1 << (btn - 1)
	} else {
		e.buttons &^= 1 << (btn - 1)
	}
	e.mu.Unlock()
}

// PostEvent injects the event via SendInput.
func (e *windowsEngine) PostEvent(ev *RawEvent) {
	switch ev.Kind {
	case KindKeyPressed, KindKeyReleased, KindKeyTyped:
		e.postKeyboard(ev)
	case KindMousePressed, KindMouseReleased, KindMouseClicked, KindMouseMoved, KindMouseDragged:
		e.postMouse(ev)
	case KindMouseWheel:
		e.postWheel(ev)
	}
}

func (e *windowsEngine) postKeyboard(ev *RawEvent) {
	scan := ev.Keyboard.KeyCode
	var flags uint32 = keyeventfScancode
	if scan > 0x00FF {
		// 0x0E00 / 0xE000 prefixed codes are extended keys.
		scan &= 0x00FF
		flags |= keyeventfExtendedKey
	}

	send := func(up bool) {
		f := flags
		if up {
			f |= keyeventfKeyUp
		}
		in := input{Type: inputKeyboard}
		*(*keybdInput)(unsafe.Pointer(&in.Mi)) = keybdInput{Scan: scan, Flags: f}
		procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	}

	switch ev.Kind {
	case KindKeyPressed:
		send(false)
	case KindKeyReleased:
		send(true)
	case KindKeyTyped:
		send(false)
		send(true)
	}
}

func (e *windowsEngine) postMouse(ev *RawEvent) {
	if ev.Kind == KindMouseMoved || ev.Kind == KindMouseDragged {
		e.sendMouse(mouseeventfMove|mouseeventfAbsolute, absX(ev.Mouse.X), absY(ev.Mouse.Y), 0)
		return
	}

	down, up, data := buttonFlags(ev.Mouse.Button)
	if down == 0 {
		return
	}
	// Position first so the click lands at the requested coordinates.
	e.sendMouse(mouseeventfMove|mouseeventfAbsolute, absX(ev.Mouse.X), absY(ev.Mouse.Y), 0)
	switch ev.Kind {
	case KindMousePressed:
		e.sendMouse(down, 0, 0, data)
	case KindMouseReleased:
		e.sendMouse(up, 0, 0, data)
	case KindMouseClicked:
		e.sendMouse(down, 0, 0, data)
		e.sendMouse(up, 0, 0, data)
	}
}

func (e *windowsEngine) postWheel(ev *RawEvent) {
	flag := uint32(mouseeventfWheel)
	if ev.Wheel.Direction == WheelHorizontalDirection {
		flag = mouseeventfHWheel
	}
	e.sendMouse(flag, 0, 0, uint32(uint16(ev.Wheel.Rotation))<<16)
}

func (e *windowsEngine) sendMouse(flags uint32, dx, dy int32, data uint32) {
	in := input{
		Type: inputMouse,
		Mi:   mouseInput{Dx: dx, Dy: dy, MouseData: data, Flags: flags},
	}
	procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
}

// absX and absY map pixel coordinates to the 0..65535 range SendInput
// expects for absolute moves.
func absX(x int16) int32 {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	if w == 0 {
		return 0
	}
	return int32(x) * 65535 / int32(w)
}

func absY(y int16) int32 {
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if h == 0 {
		return 0
	}
	return int32(y) * 65535 / int32(h)
}

func (e *windowsEngine) ScreenInfo() ([]Screen, int32) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if w == 0 || h == 0 {
		return nil, Failure
	}
	return []Screen{{Number: 0, Width: uint16(w), Height: uint16(h)}}, Success
}

func (e *windowsEngine) AutoRepeatRate() int64 {
	var speed uint32
	ret, _, _ := procSystemParametersInfoW.Call(spiGetKeyboardSpeed, 0, uintptr(unsafe.Pointer(&speed)), 0)
	if ret == 0 {
		return -1
	}
	return int64(speed)
}

func (e *windowsEngine) AutoRepeatDelay() int64 {
	var delay uint32
	ret, _, _ := procSystemParametersInfoW.Call(spiGetKeyboardDelay, 0, uintptr(unsafe.Pointer(&delay)), 0)
	if ret == 0 {
		return -1
	}
	return int64(delay)
}

func (e *windowsEngine) PointerAccelerationMultiplier() int64 {
	var mouse [3]int32
	ret, _, _ := procSystemParametersInfoW.Call(0x0003 /* SPI_GETMOUSE */, 0, uintptr(unsafe.Pointer(&mouse)), 0)
	if ret == 0 {
		return -1
	}
	return int64(mouse[2])
}

func (e *windowsEngine) PointerAccelerationThreshold() int64 {
	var mouse [3]int32
	ret, _, _ := procSystemParametersInfoW.Call(0x0003 /* SPI_GETMOUSE */, 0, uintptr(unsafe.Pointer(&mouse)), 0)
	if ret == 0 {
		return -1
	}
	return int64(mouse[0])
}

func (e *windowsEngine) PointerSensitivity() int64 {
	var speed uint32
	ret, _, _ := procSystemParametersInfoW.Call(spiGetMouseSpeed, 0, uintptr(unsafe.Pointer(&speed)), 0)
	if ret == 0 {
		return -1
	}
	return int64(speed)
}

func (e *windowsEngine) MultiClickTime() int64 {
	t, _, _ := procGetDoubleClickTime.Call()
	return int64(t)
}
