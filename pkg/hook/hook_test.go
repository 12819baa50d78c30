package hook

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"uiohook/internal/logging"
	"uiohook/internal/native"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	l, err := logging.New(&logging.Config{
		Level:     logging.LevelError,
		Format:    logging.FormatText,
		Output:    "stderr",
		Component: "hook-test",
	})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

// collector is an EventHandler that copies every event it sees.
type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) HandleEvent(ev Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

func (c *collector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached within 1s")
}

func TestRunStop(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(&collector{}, newSlot(engine, testLogger(t)))

	require.NoError(t, h.Run())
	waitFor(t, engine.Running)
	require.True(t, h.IsRunning())

	require.NoError(t, h.Stop())
	require.False(t, h.IsRunning())
	require.False(t, engine.Running())
}

func TestRunWhileRunning(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(&collector{}, newSlot(engine, testLogger(t)))

	require.NoError(t, h.Run())
	defer h.Stop()
	waitFor(t, engine.Running)

	err := h.Run()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAlreadyRunning))
}

func TestStopWhileIdle(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(&collector{}, newSlot(engine, testLogger(t)))

	err := h.Stop()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotRunning))
}

func TestRunWithoutHandler(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(nil, newSlot(engine, testLogger(t)))

	err := h.Run()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotInitialized))
	require.False(t, h.IsRunning())
}

func TestRunStopRun(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(&collector{}, newSlot(engine, testLogger(t)))

	require.NoError(t, h.Run())
	waitFor(t, engine.Running)
	require.NoError(t, h.Stop())

	require.NoError(t, h.Run())
	waitFor(t, engine.Running)
	require.NoError(t, h.Stop())
}

func TestSecondControllerRejected(t *testing.T) {
	engine := native.NewFakeEngine()
	s := newSlot(engine, testLogger(t))
	a := newHook(&collector{}, s)
	b := newHook(&collector{}, s)

	require.NoError(t, a.Run())
	waitFor(t, engine.Running)

	err := b.Run()
	require.True(t, errors.Is(err, ErrAlreadyRunning))

	// The running token is shared, so either controller may stop the
	// hook.
	require.NoError(t, b.Stop())
	require.False(t, a.IsRunning())
}

func TestEventsDeliveredInOrder(t *testing.T) {
	engine := native.NewFakeEngine()
	c := &collector{}
	h := newHook(c, newSlot(engine, testLogger(t)))

	require.NoError(t, h.Run())
	defer h.Stop()
	waitFor(t, func() bool { return c.count() >= 1 })

	const n = 8
	for i := 0; i < n; i++ {
		require.NoError(t, h.PostEvent(&MouseEvent{Phase: MouseMoved, X: int16(i), Y: int16(i)}))
	}

	events := c.snapshot()
	require.Len(t, events, n+1)
	require.IsType(t, &HookEnabledEvent{}, events[0])
	for i := 0; i < n; i++ {
		me, ok := events[i+1].(*MouseEvent)
		require.True(t, ok, "event %d is %T", i+1, events[i+1])
		require.Equal(t, int16(i), me.X, "event %d out of order", i)
	}
}

func TestEventsAreOwnedCopies(t *testing.T) {
	engine := native.NewFakeEngine()
	c := &collector{}
	h := newHook(c, newSlot(engine, testLogger(t)))

	require.NoError(t, h.Run())
	defer h.Stop()
	waitFor(t, func() bool { return c.count() >= 1 })

	// The fake reuses one scratch record across deliveries, so retained
	// events only stay intact if the bridge copied them out.
	require.NoError(t, h.PostEvent(&KeyboardEvent{Phase: KeyPressed, Key: KeyA, RawCode: 1}))
	require.NoError(t, h.PostEvent(&KeyboardEvent{Phase: KeyPressed, Key: KeyB, RawCode: 2}))

	events := c.snapshot()
	require.Len(t, events, 3)
	first := events[1].(*KeyboardEvent)
	require.Equal(t, KeyA, first.Key)
	require.Equal(t, uint16(1), first.RawCode)
}

func TestNativeRunFailure(t *testing.T) {
	engine := native.NewFakeEngine()
	engine.FailRunWith = native.ErrXOpenDisplay
	h := newHook(&collector{}, newSlot(engine, testLogger(t)))

	// Run itself only starts the loop; the native failure surfaces as a
	// rollback to the stopped state.
	require.NoError(t, h.Run())
	waitFor(t, func() bool { return !h.IsRunning() })

	err := h.Stop()
	require.True(t, errors.Is(err, ErrNotRunning))
}

func TestStopFailureStillTransitions(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(&collector{}, newSlot(engine, testLogger(t)))

	require.NoError(t, h.Run())
	waitFor(t, engine.Running)

	engine.FailStopWith = native.Failure
	err := h.Stop()
	require.True(t, errors.Is(err, ErrFailure))
	require.False(t, h.IsRunning(), "hook must count as stopped despite the native failure")

	// Unblock the delivery goroutine.
	engine.FailStopWith = native.Success
	engine.Stop()
}

func TestHandlerPanicContained(t *testing.T) {
	engine := native.NewFakeEngine()
	s := newSlot(engine, testLogger(t))

	var after atomic.Int32
	boom := EventHandlerFunc(func(ev Event) {
		if ke, ok := ev.(*KeyboardEvent); ok && ke.Key == KeyA {
			panic("handler exploded")
		}
		after.Add(1)
	})
	h := newHook(boom, s)

	require.NoError(t, h.Run())
	defer h.Stop()
	waitFor(t, engine.Running)

	require.NoError(t, h.PostEvent(&KeyboardEvent{Phase: KeyPressed, Key: KeyA}))
	require.NoError(t, h.PostEvent(&KeyboardEvent{Phase: KeyPressed, Key: KeyB}))

	if after.Load() < 1 {
		t.Error("delivery did not survive the handler panic")
	}
}

func TestUndecodableEventDropped(t *testing.T) {
	engine := native.NewFakeEngine()
	c := &collector{}
	h := newHook(c, newSlot(engine, testLogger(t)))

	require.NoError(t, h.Run())
	defer h.Stop()
	waitFor(t, func() bool { return c.count() >= 1 })

	engine.PostEvent(&native.RawEvent{Kind: native.EventKind(42)})
	engine.PostEvent(&native.RawEvent{Kind: native.KindKeyPressed,
		Keyboard: native.KeyboardData{KeyCode: uint16(KeyC), KeyChar: native.CharUndefined}})

	events := c.snapshot()
	require.Len(t, events, 2, "the bad record must be dropped, not delivered or fatal")
	require.Equal(t, KeyC, events[1].(*KeyboardEvent).Key)
}

func TestPostWithoutRunning(t *testing.T) {
	engine := native.NewFakeEngine()
	h := newHook(&collector{}, newSlot(engine, testLogger(t)))

	require.NoError(t, h.PostEvent(&KeyboardEvent{Phase: KeyPressed, Key: KeyZ}))
	require.Len(t, engine.Posted(), 1)
}

func TestRebindOnRun(t *testing.T) {
	engine := native.NewFakeEngine()
	s := newSlot(engine, testLogger(t))

	first := &collector{}
	second := &collector{}

	a := newHook(first, s)
	require.NoError(t, a.Run())
	waitFor(t, func() bool { return first.count() >= 1 })
	require.NoError(t, a.Stop())

	b := newHook(second, s)
	require.NoError(t, b.Run())
	defer b.Stop()
	waitFor(t, func() bool { return second.count() >= 1 })

	before := first.count()
	require.NoError(t, b.PostEvent(&KeyboardEvent{Phase: KeyPressed, Key: KeyQ}))

	require.Equal(t, before, first.count(), "retired handler still receiving events")
	waitFor(t, func() bool { return second.count() >= 2 })
}
