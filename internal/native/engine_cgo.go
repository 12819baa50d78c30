//go:build cgo

package native

/*
#cgo LDFLAGS: -luiohook
#cgo linux LDFLAGS: -lX11 -lXtst
#cgo darwin LDFLAGS: -framework ApplicationServices -framework IOKit -framework Carbon

#include <stdarg.h>
#include <stdbool.h>
#include <stdio.h>
#include <stdlib.h>
#include <uiohook.h>

extern void goDispatchProc(uiohook_event *event);
extern void goLoggerProc(unsigned int level, char *message);

static void bridge_set_dispatch_proc(void) {
	hook_set_dispatch_proc((dispatcher_t)goDispatchProc);
}

// The native logger is variadic, which Go cannot implement directly.
// Format here and hand the finished line across.
static bool bridge_logger(unsigned int level, const char *format, ...) {
	char buffer[512];
	va_list args;
	va_start(args, format);
	vsnprintf(buffer, sizeof(buffer), format, args);
	va_end(args);
	goLoggerProc(level, buffer);
	return true;
}

static void bridge_set_logger_proc(void) {
	hook_set_logger_proc((logger_t)bridge_logger);
}

// Union accessors: cgo exposes C unions as byte arrays, so the payload
// is read and written through these helpers instead.
static keyboard_event_data *evt_keyboard(uiohook_event *e) { return &e->data.keyboard; }
static mouse_event_data *evt_mouse(uiohook_event *e) { return &e->data.mouse; }
static mouse_wheel_event_data *evt_wheel(uiohook_event *e) { return &e->data.wheel; }
*/
import "C"

import (
	"log/slog"
	"sync"
	"unsafe"
)

// libuiohookEngine drives the real native hook library.
type libuiohookEngine struct{}

func defaultEngine() Engine {
	return &libuiohookEngine{}
}

var (
	dispatchMu sync.RWMutex
	dispatchFn func(*RawEvent)
)

//export goDispatchProc
func goDispatchProc(ev *C.uiohook_event) {
	// Copy everything out of the C record before returning; the native
	// engine reuses it as soon as this callback unwinds.
	raw := RawEvent{
		Kind: EventKind(ev._type),
		When: uint64(ev.time),
		Mask: uint16(ev.mask),
	}
	switch raw.Kind {
	case KindKeyPressed, KindKeyReleased, KindKeyTyped:
		kb := C.evt_keyboard(ev)
		raw.Keyboard = KeyboardData{
			KeyCode: uint16(kb.keycode),
			RawCode: uint16(kb.rawcode),
			KeyChar: uint16(kb.keychar),
		}
	case KindMouseClicked, KindMousePressed, KindMouseReleased, KindMouseMoved, KindMouseDragged:
		m := C.evt_mouse(ev)
		raw.Mouse = MouseData{
			Button: uint16(m.button),
			Clicks: uint16(m.clicks),
			X:      int16(m.x),
			Y:      int16(m.y),
		}
	case KindMouseWheel:
		w := C.evt_wheel(ev)
		raw.Wheel = WheelData{
			Clicks:    uint16(w.clicks),
			X:         int16(w.x),
			Y:         int16(w.y),
			Type:      uint8(w._type),
			Amount:    uint16(w.amount),
			Rotation:  int16(w.rotation),
			Direction: uint8(w.direction),
		}
	}

	dispatchMu.RLock()
	fn := dispatchFn
	dispatchMu.RUnlock()
	if fn != nil {
		fn(&raw)
	}
}

//export goLoggerProc
func goLoggerProc(level C.uint, message *C.char) {
	slog.Debug("uiohook", "level", uint(level), "msg", C.GoString(message))
}

func (e *libuiohookEngine) Run() int32 {
	C.bridge_set_logger_proc()
	return int32(C.hook_run())
}

func (e *libuiohookEngine) Stop() int32 {
	return int32(C.hook_stop())
}

func (e *libuiohookEngine) SetDispatcher(fn func(*RawEvent)) {
	dispatchMu.Lock()
	dispatchFn = fn
	dispatchMu.Unlock()
	C.bridge_set_dispatch_proc()
}

func (e *libuiohookEngine) PostEvent(ev *RawEvent) {
	var cev C.uiohook_event
	cev._type = C.event_type(ev.Kind)
	cev.time = C.uint64_t(ev.When)
	cev.mask = C.uint16_t(ev.Mask)

	switch ev.Kind {
	case KindKeyPressed, KindKeyReleased, KindKeyTyped:
		kb := C.evt_keyboard(&cev)
		kb.keycode = C.uint16_t(ev.Keyboard.KeyCode)
		kb.rawcode = C.uint16_t(ev.Keyboard.RawCode)
		kb.keychar = C.uint16_t(ev.Keyboard.KeyChar)
	case KindMouseClicked, KindMousePressed, KindMouseReleased, KindMouseMoved, KindMouseDragged:
		m := C.evt_mouse(&cev)
		m.button = C.uint16_t(ev.Mouse.Button)
		m.clicks = C.uint16_t(ev.Mouse.Clicks)
		m.x = C.int16_t(ev.Mouse.X)
		m.y = C.int16_t(ev.Mouse.Y)
	case KindMouseWheel:
		w := C.evt_wheel(&cev)
		w.clicks = C.uint16_t(ev.Wheel.Clicks)
		w.x = C.int16_t(ev.Wheel.X)
		w.y = C.int16_t(ev.Wheel.Y)
		w._type = C.uint8_t(ev.Wheel.Type)
		w.amount = C.uint16_t(ev.Wheel.Amount)
		w.rotation = C.int16_t(ev.Wheel.Rotation)
		w.direction = C.uint8_t(ev.Wheel.Direction)
	}

	C.hook_post_event(&cev)
}

func (e *libuiohookEngine) ScreenInfo() ([]Screen, int32) {
	var count C.uchar
	ptr := C.hook_create_screen_info(&count)
	if ptr == nil {
		return nil, ErrOutOfMemory
	}
	defer C.free(unsafe.Pointer(ptr))

	screens := make([]Screen, int(count))
	data := unsafe.Slice(ptr, int(count))
	for i, s := range data {
		screens[i] = Screen{
			Number: uint8(s.number),
			X:      int16(s.x),
			Y:      int16(s.y),
			Width:  uint16(s.width),
			Height: uint16(s.height),
		}
	}
	return screens, Success
}

func (e *libuiohookEngine) AutoRepeatRate() int64  { return int64(C.hook_get_auto_repeat_rate()) }
func (e *libuiohookEngine) AutoRepeatDelay() int64 { return int64(C.hook_get_auto_repeat_delay()) }

func (e *libuiohookEngine) PointerAccelerationMultiplier() int64 {
	return int64(C.hook_get_pointer_acceleration_multiplier())
}

func (e *libuiohookEngine) PointerAccelerationThreshold() int64 {
	return int64(C.hook_get_pointer_acceleration_threshold())
}

func (e *libuiohookEngine) PointerSensitivity() int64 {
	return int64(C.hook_get_pointer_sensitivity())
}

func (e *libuiohookEngine) MultiClickTime() int64 {
	return int64(C.hook_get_multi_click_time())
}
