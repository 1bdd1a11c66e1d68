package multicast_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/multicast"
)

// recorder collects failures reported by a dispatcher.
type recorder struct {
	mu     sync.Mutex
	names  []string
	faults []error
}

func (r *recorder) ReportFailure(dispatcher string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, dispatcher)
	r.faults = append(r.faults, err)
}

func (r *recorder) collected() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.faults...)
}

// trace records the order in which subscribers ran.
type trace struct {
	mu    sync.Mutex
	calls []string
}

func (tr *trace) handler(name string) multicast.Handler[string] {
	return multicast.HandlerFunc[string](func(string) error {
		tr.mu.Lock()
		defer tr.mu.Unlock()
		tr.calls = append(tr.calls, name)
		return nil
	})
}

func (tr *trace) take() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	out := tr.calls
	tr.calls = nil
	return out
}

func TestDispatcher_Scenario(t *testing.T) {
	d := multicast.New[string]("scenario", multicast.WithReporter(multicast.NopReporter{}))
	tr := &trace{}

	a := multicast.NewToken()
	d.Resubscribe(a, tr.handler("A"), multicast.PriorityLow)
	d.Subscribe(tr.handler("B"), multicast.PriorityHigh)
	d.Subscribe(tr.handler("C"), multicast.PriorityLow)

	d.Invoke("")
	assert.Equal(t, []string{"B", "A", "C"}, tr.take())

	assert.True(t, d.Unsubscribe(a))
	d.Invoke("")
	assert.Equal(t, []string{"B", "C"}, tr.take())

	d.Resubscribe(a, tr.handler("A"), multicast.PriorityHigh)
	d.Invoke("")
	assert.Equal(t, []string{"B", "A", "C"}, tr.take())
}

func TestDispatcher_Subscribe(t *testing.T) {
	t.Run("returns distinct tokens for the same handler", func(t *testing.T) {
		d := multicast.New[string]("identity")
		tr := &trace{}
		h := tr.handler("same")

		t1 := d.Subscribe(h, multicast.PriorityNormal)
		t2 := d.Subscribe(h, multicast.PriorityNormal)

		assert.NotEqual(t, t1, t2)
		assert.Equal(t, 2, d.Len())

		d.Invoke("")
		assert.Equal(t, []string{"same", "same"}, tr.take())
	})

	t.Run("nil handler is ignored", func(t *testing.T) {
		d := multicast.New[string]("nil")
		assert.True(t, d.Subscribe(nil, multicast.PriorityNormal).IsZero())
		assert.True(t, d.SubscribeFunc(nil, multicast.PriorityNormal).IsZero())
		assert.False(t, d.HasSubscribers())
	})

	t.Run("subscribe func", func(t *testing.T) {
		d := multicast.New[int]("func")
		var got int
		d.SubscribeFunc(func(v int) error { got = v; return nil }, multicast.PriorityNormal)
		d.Invoke(7)
		assert.Equal(t, 7, got)
	})
}

func TestDispatcher_Resubscribe(t *testing.T) {
	t.Run("replaces handler and priority without growing", func(t *testing.T) {
		d := multicast.New[string]("replace")
		tr := &trace{}

		tok := d.Subscribe(tr.handler("old"), multicast.PriorityLow)
		d.Subscribe(tr.handler("other"), multicast.PriorityNormal)
		d.Resubscribe(tok, tr.handler("new"), multicast.PriorityHigh)

		assert.Equal(t, 2, d.Len())
		p, ok := d.Priority(tok)
		require.True(t, ok)
		assert.Equal(t, multicast.PriorityHigh, p)

		d.Invoke("")
		assert.Equal(t, []string{"new", "other"}, tr.take())
	})

	t.Run("zero token and nil handler are ignored", func(t *testing.T) {
		d := multicast.New[string]("ignored")
		tr := &trace{}

		d.Resubscribe(multicast.Token{}, tr.handler("x"), multicast.PriorityNormal)
		d.Resubscribe(multicast.NewToken(), nil, multicast.PriorityNormal)
		assert.False(t, d.HasSubscribers())
	})
}

func TestDispatcher_Reprioritize(t *testing.T) {
	d := multicast.New[string]("reprioritize")
	tr := &trace{}

	a := d.Subscribe(tr.handler("A"), multicast.PriorityNormal)
	d.Subscribe(tr.handler("B"), multicast.PriorityHigh)

	assert.True(t, d.Reprioritize(a, multicast.PriorityHighest))
	d.Invoke("")
	assert.Equal(t, []string{"A", "B"}, tr.take())

	assert.False(t, d.Reprioritize(multicast.NewToken(), multicast.PriorityLow))
	assert.Equal(t, 2, d.Len())
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := multicast.New[string]("unsubscribe")
	tr := &trace{}

	a := d.Subscribe(tr.handler("A"), multicast.PriorityNormal)
	d.Subscribe(tr.handler("B"), multicast.PriorityNormal)

	assert.False(t, d.Unsubscribe(multicast.NewToken()))
	assert.False(t, d.Unsubscribe(multicast.Token{}))
	assert.Equal(t, 2, d.Len())

	assert.True(t, d.Unsubscribe(a))
	assert.False(t, d.Unsubscribe(a))

	d.Invoke("")
	assert.Equal(t, []string{"B"}, tr.take())
}

func TestDispatcher_FaultIsolation(t *testing.T) {
	t.Run("returned error", func(t *testing.T) {
		rec := &recorder{}
		d := multicast.New[string]("isolation", multicast.WithReporter(rec))
		tr := &trace{}
		boom := errors.New("boom")

		d.Subscribe(tr.handler("A"), multicast.Priority(2))
		b := d.SubscribeFunc(func(string) error { return boom }, multicast.Priority(1))
		d.Subscribe(tr.handler("C"), multicast.Priority(0))

		assert.NotPanics(t, func() { d.Invoke("") })
		assert.Equal(t, []string{"A", "C"}, tr.take())

		faults := rec.collected()
		require.Len(t, faults, 1)
		assert.Equal(t, []string{"isolation"}, rec.names)
		assert.ErrorIs(t, faults[0], boom)
		assert.ErrorIs(t, faults[0], multicast.ErrSubscriberFailed)
		assert.NotErrorIs(t, faults[0], multicast.ErrSubscriberPanic)

		var f *multicast.Fault
		require.ErrorAs(t, faults[0], &f)
		assert.Equal(t, "isolation", f.Dispatcher)
		assert.Equal(t, b, f.Token)
		assert.Equal(t, multicast.Priority(1), f.Priority)
		assert.False(t, f.Panicked)
	})

	t.Run("panic", func(t *testing.T) {
		rec := &recorder{}
		d := multicast.New[string]("panics", multicast.WithReporter(rec))
		tr := &trace{}

		d.Subscribe(tr.handler("A"), multicast.PriorityHigh)
		d.SubscribeFunc(func(string) error { panic("kaboom") }, multicast.PriorityNormal)
		d.Subscribe(tr.handler("C"), multicast.PriorityLow)

		assert.NotPanics(t, func() { d.Invoke("") })
		assert.Equal(t, []string{"A", "C"}, tr.take())

		faults := rec.collected()
		require.Len(t, faults, 1)
		assert.ErrorIs(t, faults[0], multicast.ErrSubscriberPanic)
		assert.ErrorIs(t, faults[0], multicast.ErrSubscriberFailed)

		var f *multicast.Fault
		require.ErrorAs(t, faults[0], &f)
		assert.True(t, f.Panicked)
		assert.Equal(t, "kaboom", f.Value)
		assert.NotEmpty(t, f.Stack)
		assert.Contains(t, f.Error(), `"panics"`)
	})

	t.Run("panic with error value keeps the chain", func(t *testing.T) {
		rec := &recorder{}
		d := multicast.New[string]("panic-error", multicast.WithReporter(rec))
		cause := errors.New("cause")
		d.SubscribeFunc(func(string) error { panic(cause) }, multicast.PriorityNormal)

		d.Invoke("")

		faults := rec.collected()
		require.Len(t, faults, 1)
		assert.ErrorIs(t, faults[0], cause)
		assert.ErrorIs(t, faults[0], multicast.ErrSubscriberPanic)
	})

	t.Run("fault records how long the subscriber ran", func(t *testing.T) {
		rec := &recorder{}
		d := multicast.New[string]("slow", multicast.WithReporter(rec))
		d.SubscribeFunc(func(string) error {
			time.Sleep(5 * time.Millisecond)
			return errors.New("timeout")
		}, multicast.PriorityNormal)

		d.Invoke("")

		faults := rec.collected()
		require.Len(t, faults, 1)
		var f *multicast.Fault
		require.ErrorAs(t, faults[0], &f)
		assert.GreaterOrEqual(t, f.Elapsed, 5*time.Millisecond)
	})

	t.Run("panicking reporter does not stop dispatch", func(t *testing.T) {
		reporter := multicast.ReporterFunc(func(string, error) { panic("sink down") })
		d := multicast.New[string]("bad-sink", multicast.WithReporter(reporter))
		tr := &trace{}

		d.SubscribeFunc(func(string) error { return errors.New("fail") }, multicast.PriorityHigh)
		d.Subscribe(tr.handler("after"), multicast.PriorityLow)

		assert.NotPanics(t, func() { d.Invoke("") })
		assert.Equal(t, []string{"after"}, tr.take())
	})
}

func TestDispatcher_HasSubscribers(t *testing.T) {
	d := multicast.New[string]("quiescence")
	assert.False(t, d.HasSubscribers())

	tok := d.SubscribeFunc(func(string) error { return nil }, multicast.PriorityNormal)
	assert.True(t, d.HasSubscribers())

	d.Unsubscribe(tok)
	assert.False(t, d.HasSubscribers())
}

func TestDispatcher_Reentrancy(t *testing.T) {
	d := multicast.New[string]("reentrant")
	tr := &trace{}

	var self multicast.Token
	self = d.SubscribeFunc(func(string) error {
		d.Unsubscribe(self)
		d.Subscribe(tr.handler("late"), multicast.PriorityHighest)
		return nil
	}, multicast.PriorityHigh)
	d.Subscribe(tr.handler("regular"), multicast.PriorityLow)

	d.Invoke("")
	assert.Equal(t, []string{"regular"}, tr.take(), "changes made during Invoke apply to the next one")

	d.Invoke("")
	assert.Equal(t, []string{"late", "regular"}, tr.take())
}

func TestDispatcher_Close(t *testing.T) {
	d := multicast.New[string]("close")
	tr := &trace{}
	d.Subscribe(tr.handler("A"), multicast.PriorityNormal)
	d.Subscribe(tr.handler("B"), multicast.PriorityNormal)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	assert.False(t, d.HasSubscribers())
	d.Invoke("")
	assert.Empty(t, tr.take())

	d.Subscribe(tr.handler("C"), multicast.PriorityNormal)
	d.Invoke("")
	assert.Equal(t, []string{"C"}, tr.take())
}

func TestDispatcher_Name(t *testing.T) {
	assert.Equal(t, "document.saved", multicast.New[int]("document.saved").Name())
}
