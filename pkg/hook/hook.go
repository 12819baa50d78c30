// Package hook exposes global keyboard, mouse and wheel events and
// synthetic input injection on top of the native input hook engine.
//
// A Hook couples an EventHandler to the engine. Run installs the hook
// and starts delivery on a background goroutine; Stop removes it. The
// underlying engine admits one hook per process, so at most one Hook
// can be running at a time and a second Run fails with
// ErrAlreadyRunning.
//
// Handlers are invoked from the delivery goroutine. Events passed to a
// handler are owned by the handler and stay valid after it returns.
package hook

import (
	"sync"

	"uiohook/internal/logging"
	"uiohook/internal/native"
)

// EventHandler receives decoded hook events.
type EventHandler interface {
	HandleEvent(Event)
}

// EventHandlerFunc adapts a plain function to an EventHandler.
type EventHandlerFunc func(Event)

// HandleEvent implements EventHandler.
func (f EventHandlerFunc) HandleEvent(ev Event) { f(ev) }

// Hook is a controller for the process-wide input hook.
type Hook struct {
	handler EventHandler
	slot    *slot
	log     *logging.Logger

	mu   sync.Mutex
	done chan struct{}
}

// New returns a Hook that will deliver events to handler. The hook is
// not installed until Run is called.
func New(handler EventHandler) *Hook {
	return newHook(handler, sharedSlot())
}

func newHook(handler EventHandler, s *slot) *Hook {
	return &Hook{handler: handler, slot: s, log: s.log}
}

// Run installs the hook and starts event delivery on a background
// goroutine, then returns. It fails with ErrNotInitialized when the
// Hook has no handler and ErrAlreadyRunning when another Hook on the
// same engine is active. A later failure of the native loop is logged,
// and the hook returns to the stopped state.
func (h *Hook) Run() error {
	if h.handler == nil {
		return &Error{Kind: ErrNotInitialized}
	}
	if !h.slot.acquire() {
		return &Error{Kind: ErrAlreadyRunning}
	}

	h.slot.bind(h.handler)

	done := make(chan struct{})
	h.mu.Lock()
	h.done = done
	h.mu.Unlock()

	go h.loop(done)
	return nil
}

// loop drives the blocking native event loop until the running token is
// released. A clean engine return while the token is still held means
// the hook was torn down behind our back, so the loop reinstalls it.
func (h *Hook) loop(done chan struct{}) {
	defer close(done)

	for h.slot.active() {
		status := h.slot.engine.Run()
		if status == native.Success {
			continue
		}
		if h.slot.active() {
			h.slot.release()
			h.log.Error("native hook loop failed", "error", errorFromStatus(status))
		}
		return
	}
}

// Stop removes the hook and waits for the delivery goroutine started by
// this Hook's Run to finish. It fails with ErrNotRunning when no hook
// is active. The hook is considered stopped even when the native
// teardown reports a failure; that failure is returned.
func (h *Hook) Stop() error {
	if !h.slot.tryRelease() {
		return &Error{Kind: ErrNotRunning}
	}

	if status := h.slot.engine.Stop(); status != native.Success {
		// The delivery goroutine is left to drain on its own; it exits
		// as soon as the native loop lets go.
		return errorFromStatus(status)
	}

	h.mu.Lock()
	done := h.done
	h.done = nil
	h.mu.Unlock()
	if done != nil {
		<-done
	}
	return nil
}

// IsRunning reports whether a hook is active on this Hook's engine.
func (h *Hook) IsRunning() bool { return h.slot.active() }

// PostEvent submits a synthetic event to the OS input queue. Posting
// does not require the hook to be running.
func (h *Hook) PostEvent(ev Event) error {
	raw, err := toRaw(ev)
	if err != nil {
		return err
	}
	h.slot.engine.PostEvent(&raw)
	return nil
}
