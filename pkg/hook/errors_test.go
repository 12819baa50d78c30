package hook

import (
	"errors"
	"testing"

	"uiohook/internal/native"
)

func TestErrorKindMatching(t *testing.T) {
	err := &Error{Kind: ErrAlreadyRunning}

	if !errors.Is(err, ErrAlreadyRunning) {
		t.Error("errors.Is does not match the wrapped kind")
	}
	if errors.Is(err, ErrNotRunning) {
		t.Error("errors.Is matches a different kind")
	}

	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrAlreadyRunning {
		t.Errorf("errors.As extracted kind %v", kind)
	}
}

func TestErrorFromStatus(t *testing.T) {
	cases := []struct {
		status int32
		want   ErrorKind
	}{
		{native.Failure, ErrFailure},
		{native.ErrOutOfMemory, ErrOutOfMemory},
		{native.ErrXOpenDisplay, ErrXOpenDisplay},
		{native.ErrXRecordEnableContext, ErrXRecordEnableContext},
		{native.ErrSetWindowsHookEx, ErrSetWindowsHookEx},
		{native.ErrGetModuleHandle, ErrGetModuleHandle},
		{native.ErrCreateEventPort, ErrCreateEventPort},
		{native.ErrCreateObserver, ErrCreateObserver},
	}
	for _, tc := range cases {
		err := errorFromStatus(tc.status)
		if !errors.Is(err, tc.want) {
			t.Errorf("status %#x mapped to %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestErrorFromStatusUnknown(t *testing.T) {
	err := errorFromStatus(0x7F)

	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("unexpected mapping for unknown status: %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Code != 0x7F {
		t.Errorf("unknown status code not preserved: %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	if got := ErrAlreadyRunning.Error(); got != "the hook is already running" {
		t.Errorf("ErrAlreadyRunning message = %q", got)
	}

	err := &Error{Kind: ErrUnknownMouseButton, Code: 99}
	if got := err.Error(); got != "unknown mouse button: 99" {
		t.Errorf("unknown mouse button message = %q", got)
	}
}
