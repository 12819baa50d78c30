package hook

import (
	"sync"
	"sync/atomic"

	"uiohook/internal/logging"
	"uiohook/internal/native"
)

// slot owns the single dispatcher registration an engine supports. The
// native callback is installed exactly once per slot; after that, Run
// only swaps which handler the callback forwards to. The running flag
// is the mutual-exclusion token shared by every Hook built on the same
// slot.
type slot struct {
	engine native.Engine
	log    *logging.Logger

	registerOnce sync.Once
	running      atomic.Bool

	mu     sync.RWMutex
	target EventHandler
}

func newSlot(engine native.Engine, log *logging.Logger) *slot {
	return &slot{engine: engine, log: log}
}

// The process-wide slot in front of the real engine, created on first
// use.
var (
	processSlot *slot
	processOnce sync.Once
)

func sharedSlot() *slot {
	processOnce.Do(func() {
		processSlot = newSlot(native.Default(), logging.Default().WithComponent("hook"))
	})
	return processSlot
}

// acquire claims the running token. It fails if another Hook on this
// slot already holds it.
func (s *slot) acquire() bool { return s.running.CompareAndSwap(false, true) }

// release returns the token unconditionally.
func (s *slot) release() { s.running.Store(false) }

// tryRelease returns the token only if it is currently held. It fails
// when no hook is active on this slot.
func (s *slot) tryRelease() bool { return s.running.CompareAndSwap(true, false) }

// active reports whether the token is held.
func (s *slot) active() bool { return s.running.Load() }

// bind installs the native callback on first use and points it at h.
// Rebinding on every Run keeps the callback wired to the Hook that
// currently holds the running token.
func (s *slot) bind(h EventHandler) {
	s.registerOnce.Do(func() {
		s.engine.SetDispatcher(s.dispatch)
	})
	s.mu.Lock()
	s.target = h
	s.mu.Unlock()
}

// dispatch is the process-wide native callback. The raw record is only
// valid for the duration of the call, so it is decoded into an owning
// Event before the handler sees it. A record that cannot be decoded is
// dropped with a log line; a panicking handler is contained here so it
// cannot unwind into the native stack.
func (s *slot) dispatch(raw *native.RawEvent) {
	ev, err := fromRaw(raw)
	if err != nil {
		s.log.Warn("dropping undecodable event",
			"kind", uint32(raw.Kind),
			"error", err)
		return
	}

	s.mu.RLock()
	target := s.target
	s.mu.RUnlock()
	if target == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("event handler panicked", "panic", r)
		}
	}()
	target.HandleEvent(ev)
}
