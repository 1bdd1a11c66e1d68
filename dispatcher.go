package multicast

import (
	"runtime/debug"
	"time"
)

// Dispatcher invokes subscribers of one event in priority order.
// The argument tuple type A fixes the callback signature of the event.
// All methods are safe for concurrent use.
type Dispatcher[A any] struct {
	name     string
	reporter Reporter
	subs     *Guarded[Token, Handler[A]]
}

// New creates a dispatcher. The name is used only to tag reported failures.
func New[A any](name string, opts ...Option) *Dispatcher[A] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Dispatcher[A]{
		name:     name,
		reporter: o.reporter,
		subs:     NewGuarded[Token, Handler[A]](),
	}
}

// Name returns the diagnostic name of the dispatcher.
func (d *Dispatcher[A]) Name() string {
	return d.name
}

// Subscribe registers h under a fresh identity and returns its token.
// A nil handler is not registered and yields the zero token.
func (d *Dispatcher[A]) Subscribe(h Handler[A], p Priority) Token {
	if h == nil {
		return Token{}
	}
	tok := NewToken()
	d.subs.Upsert(tok, p, h)
	return tok
}

// SubscribeFunc is Subscribe for a plain function.
func (d *Dispatcher[A]) SubscribeFunc(fn func(A) error, p Priority) Token {
	if fn == nil {
		return Token{}
	}
	return d.Subscribe(HandlerFunc[A](fn), p)
}

// Resubscribe registers h under a caller-held identity.
// If tok is already subscribed its handler and priority are replaced and it
// moves behind the subscribers already registered at priority p.
// Zero tokens and nil handlers are ignored.
func (d *Dispatcher[A]) Resubscribe(tok Token, h Handler[A], p Priority) {
	if tok.IsZero() || h == nil {
		return
	}
	d.subs.Upsert(tok, p, h)
}

// Reprioritize moves an existing subscriber to priority p, keeping its handler.
// Returns false if tok is not subscribed.
func (d *Dispatcher[A]) Reprioritize(tok Token, p Priority) bool {
	return d.subs.Update(tok, func(e Entry[Token, Handler[A]]) Entry[Token, Handler[A]] {
		e.Priority = p
		return e
	})
}

// Unsubscribe removes the subscriber identified by tok.
// Unknown tokens are ignored; the return value reports whether anything was removed.
func (d *Dispatcher[A]) Unsubscribe(tok Token) bool {
	return d.subs.Remove(tok)
}

// Priority returns the priority tok is subscribed under.
func (d *Dispatcher[A]) Priority(tok Token) (Priority, bool) {
	e, ok := d.subs.Get(tok)
	return e.Priority, ok
}

// HasSubscribers reports whether anyone is listening.
// Producers can use it to skip building expensive arguments.
func (d *Dispatcher[A]) HasSubscribers() bool {
	return !d.subs.IsEmpty()
}

// Len returns the number of subscribers.
func (d *Dispatcher[A]) Len() int {
	return d.subs.Len()
}

// Invoke calls every subscriber with args, highest priority first.
//
// Subscribers run on the calling goroutine against a snapshot taken when
// Invoke starts, so they may subscribe or unsubscribe on this dispatcher;
// such changes apply from the next Invoke. A failing subscriber is reported
// and skipped. Invoke never panics because of a subscriber.
func (d *Dispatcher[A]) Invoke(args A) {
	for _, e := range d.subs.Snapshot() {
		start := time.Now()
		if f := d.call(e.Value, args); f != nil {
			f.Elapsed = time.Since(start)
			f.Dispatcher = d.name
			f.Token = e.Key
			f.Priority = e.Priority
			safeReport(d.reporter, d.name, f)
		}
	}
}

// Close drops all subscribers without notifying them.
// It is idempotent and the dispatcher remains usable afterwards.
func (d *Dispatcher[A]) Close() error {
	d.subs.Clear()
	return nil
}

func (d *Dispatcher[A]) call(h Handler[A], args A) (fault *Fault) {
	defer func() {
		if r := recover(); r != nil {
			fault = panicFault(r, debug.Stack())
		}
	}()

	if err := h.Handle(args); err != nil {
		return &Fault{Err: err}
	}
	return nil
}
