package hook

import (
	"fmt"

	"uiohook/internal/native"
)

// ErrorKind classifies every failure the hook can report: native engine
// status codes, protocol misuse (AlreadyRunning, NotRunning,
// NotInitialized), and data-mapping failures (UnknownMouseButton).
//
// ErrorKind implements error, so callers can match with
// errors.Is(err, hook.ErrAlreadyRunning) regardless of whether the
// value in hand is a bare kind or an *Error carrying a native code.
type ErrorKind int

// The closed set of error kinds.
const (
	ErrFailure ErrorKind = iota + 1
	ErrOutOfMemory
	ErrXOpenDisplay
	ErrXRecordNotFound
	ErrXRecordAllocRange
	ErrXRecordCreateContext
	ErrXRecordEnableContext
	ErrXRecordGetContext
	ErrSetWindowsHookEx
	ErrGetModuleHandle
	ErrCreateEventPort
	ErrCreateRunLoopSource
	ErrGetRunLoop
	ErrCreateObserver
	ErrAlreadyRunning
	ErrNotRunning
	ErrNotInitialized
	ErrUnknownMouseButton
	ErrUnknown
)

// Error implements error.
func (k ErrorKind) Error() string {
	switch k {
	case ErrFailure:
		return "operation failed"
	case ErrOutOfMemory:
		return "out of memory"
	case ErrXOpenDisplay:
		return "X11 failed to open display"
	case ErrXRecordNotFound:
		return "X11 failed to find the XRecord extension"
	case ErrXRecordAllocRange:
		return "X11 failed to allocate XRecord range"
	case ErrXRecordCreateContext:
		return "X11 failed to create XRecord context"
	case ErrXRecordEnableContext:
		return "X11 failed to enable XRecord context"
	case ErrXRecordGetContext:
		return "X11 failed to get XRecord context"
	case ErrSetWindowsHookEx:
		return "Windows failed to set hook"
	case ErrGetModuleHandle:
		return "Windows failed to get module handle"
	case ErrCreateEventPort:
		return "macOS failed to create event port"
	case ErrCreateRunLoopSource:
		return "macOS failed to create run loop source"
	case ErrGetRunLoop:
		return "macOS failed to get run loop"
	case ErrCreateObserver:
		return "macOS failed to create observer"
	case ErrAlreadyRunning:
		return "the hook is already running"
	case ErrNotRunning:
		return "the hook is not running"
	case ErrNotInitialized:
		return "the hook is not initialized"
	case ErrUnknownMouseButton:
		return "unknown mouse button"
	case ErrUnknown:
		return "unknown error"
	}
	return fmt.Sprintf("invalid error kind %d", int(k))
}

// Error is a classified hook failure. Code carries the native status
// code or, for data-mapping failures, the offending value.
type Error struct {
	Kind ErrorKind
	Code uint32
}

// Error implements error.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownMouseButton:
		return fmt.Sprintf("unknown mouse button: %d", e.Code)
	case ErrUnknown:
		return fmt.Sprintf("unknown error: %#x", e.Code)
	}
	return e.Kind.Error()
}

// Unwrap exposes the kind for errors.Is matching.
func (e *Error) Unwrap() error {
	return e.Kind
}

// errorFromStatus converts a native status code into an error. The
// mapping is total: codes outside the known set become ErrUnknown with
// the code attached, never a panic.
func errorFromStatus(status int32) error {
	kind := ErrUnknown
	switch status {
	case native.Failure:
		kind = ErrFailure
	case native.ErrOutOfMemory:
		kind = ErrOutOfMemory
	case native.ErrXOpenDisplay:
		kind = ErrXOpenDisplay
	case native.ErrXRecordNotFound:
		kind = ErrXRecordNotFound
	case native.ErrXRecordAllocRange:
		kind = ErrXRecordAllocRange
	case native.ErrXRecordCreateContext:
		kind = ErrXRecordCreateContext
	case native.ErrXRecordEnableContext:
		kind = ErrXRecordEnableContext
	case native.ErrXRecordGetContext:
		kind = ErrXRecordGetContext
	case native.ErrSetWindowsHookEx:
		kind = ErrSetWindowsHookEx
	case native.ErrGetModuleHandle:
		kind = ErrGetModuleHandle
	case native.ErrCreateEventPort:
		kind = ErrCreateEventPort
	case native.ErrCreateRunLoopSource:
		kind = ErrCreateRunLoopSource
	case native.ErrGetRunLoop:
		kind = ErrGetRunLoop
	case native.ErrCreateObserver:
		kind = ErrCreateObserver
	}
	return &Error{Kind: kind, Code: uint32(status)}
}
