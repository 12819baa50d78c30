package native

import (
	"sync"
)

// FakeEngine is an in-memory engine for tests. It never touches the OS:
// Run blocks until Stop, and PostEvent loops posted events straight back
// into the registered dispatcher in submission order.
//
// Like the real engine, the record passed to the dispatcher is a reused
// scratch buffer that is overwritten by the next delivery, so handlers
// that retain pointers instead of copying will observe corruption.
type FakeEngine struct {
	mu          sync.Mutex
	dispatcher  func(*RawEvent)
	posted      []RawEvent
	running     bool
	pendingStop bool
	stopCh      chan struct{}

	// deliverMu serializes deliveries; scratch is only touched while it
	// is held.
	deliverMu sync.Mutex
	scratch   RawEvent

	// FailRunWith and FailStopWith, when non-zero, are returned by the
	// next Run / Stop call instead of Success.
	FailRunWith  int32
	FailStopWith int32

	// Canned query results.
	Screens         []Screen
	RepeatRate      int64
	RepeatDelay     int64
	AccelMultiplier int64
	AccelThreshold  int64
	Sensitivity     int64
	ClickTime       int64
}

// NewFakeEngine returns a FakeEngine with plausible query defaults.
func NewFakeEngine() *FakeEngine {
	return &FakeEngine{
		Screens:         []Screen{{Number: 0, X: 0, Y: 0, Width: 1920, Height: 1080}},
		RepeatRate:      30,
		RepeatDelay:     500,
		AccelMultiplier: 4,
		AccelThreshold:  4,
		Sensitivity:     10,
		ClickTime:       500,
	}
}

// Run blocks until Stop is called. Delivers a hook-enabled event on
// entry and a hook-disabled event on the way out, as the real engine
// does.
func (f *FakeEngine) Run() int32 {
	f.mu.Lock()
	if f.FailRunWith != Success {
		status := f.FailRunWith
		f.mu.Unlock()
		return status
	}
	if f.running {
		f.mu.Unlock()
		return Failure
	}
	if f.pendingStop {
		f.pendingStop = false
		f.mu.Unlock()
		return Success
	}
	f.running = true
	stopCh := make(chan struct{})
	f.stopCh = stopCh
	f.mu.Unlock()

	f.deliver(&RawEvent{Kind: KindHookEnabled})
	<-stopCh
	f.deliver(&RawEvent{Kind: KindHookDisabled})
	return Success
}

// Stop unblocks a concurrent Run.
func (f *FakeEngine) Stop() int32 {
	f.mu.Lock()
	if f.FailStopWith != Success {
		status := f.FailStopWith
		f.mu.Unlock()
		return status
	}
	if f.running {
		f.running = false
		close(f.stopCh)
	} else {
		// Stop raced ahead of Run; make the next Run return at once.
		f.pendingStop = true
	}
	f.mu.Unlock()
	return Success
}

// SetDispatcher registers the event callback.
func (f *FakeEngine) SetDispatcher(fn func(*RawEvent)) {
	f.mu.Lock()
	f.dispatcher = fn
	f.mu.Unlock()
}

// PostEvent records the event and, while the engine is running, loops
// it back into the dispatcher synchronously.
func (f *FakeEngine) PostEvent(ev *RawEvent) {
	f.mu.Lock()
	f.posted = append(f.posted, *ev)
	loopback := f.running && f.dispatcher != nil
	f.mu.Unlock()

	if loopback {
		f.deliver(ev)
	}
}

// deliver invokes the dispatcher with the reused scratch record.
// deliverMu is held across the callback, so concurrent deliveries (the
// Run goroutine's lifecycle events against a PostEvent loopback) are
// serialized the way the real engine's single delivery thread
// serializes them, and the record stays intact for the duration of the
// call.
func (f *FakeEngine) deliver(ev *RawEvent) {
	f.mu.Lock()
	fn := f.dispatcher
	f.mu.Unlock()
	if fn == nil {
		return
	}

	f.deliverMu.Lock()
	defer f.deliverMu.Unlock()
	f.scratch = *ev
	fn(&f.scratch)
}

// Posted returns a copy of every event submitted via PostEvent.
func (f *FakeEngine) Posted() []RawEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RawEvent, len(f.posted))
	copy(out, f.posted)
	return out
}

// Running reports whether Run is currently blocked in its event loop.
func (f *FakeEngine) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

// ScreenInfo returns the canned screen list.
func (f *FakeEngine) ScreenInfo() ([]Screen, int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Screen, len(f.Screens))
	copy(out, f.Screens)
	return out, Success
}

func (f *FakeEngine) AutoRepeatRate() int64                { return f.RepeatRate }
func (f *FakeEngine) AutoRepeatDelay() int64               { return f.RepeatDelay }
func (f *FakeEngine) PointerAccelerationMultiplier() int64 { return f.AccelMultiplier }
func (f *FakeEngine) PointerAccelerationThreshold() int64  { return f.AccelThreshold }
func (f *FakeEngine) PointerSensitivity() int64            { return f.Sensitivity }
func (f *FakeEngine) MultiClickTime() int64                { return f.ClickTime }
