package multicast

// Event0 through Event6 are typed front-ends over Dispatcher for callbacks taking
// zero to six positional arguments. Subscribe, Resubscribe and Invoke are
// shadowed with plain-argument signatures; everything else is promoted from
// the embedded Dispatcher.

// Event0 is an event whose callbacks take no arguments.
type Event0 struct {
	*Dispatcher[Args0]
}

func NewEvent0(name string, opts ...Option) *Event0 {
	return &Event0{Dispatcher: New[Args0](name, opts...)}
}

func (e *Event0) Subscribe(fn func() error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt0(fn), p)
}

func (e *Event0) Resubscribe(tok Token, fn func() error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt0(fn), p)
}

func (e *Event0) Invoke() {
	e.Dispatcher.Invoke(Args0{})
}

func adapt0(fn func() error) Handler[Args0] {
	if fn == nil {
		return nil
	}
	return HandlerFunc[Args0](func(Args0) error { return fn() })
}

// Event1 is an event whose callbacks take one argument.
type Event1[T1 any] struct {
	*Dispatcher[Args1[T1]]
}

func NewEvent1[T1 any](name string, opts ...Option) *Event1[T1] {
	return &Event1[T1]{Dispatcher: New[Args1[T1]](name, opts...)}
}

func (e *Event1[T1]) Subscribe(fn func(T1) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt1(fn), p)
}

func (e *Event1[T1]) Resubscribe(tok Token, fn func(T1) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt1(fn), p)
}

func (e *Event1[T1]) Invoke(v1 T1) {
	e.Dispatcher.Invoke(Args1[T1]{V1: v1})
}

func adapt1[T1 any](fn func(T1) error) Handler[Args1[T1]] {
	if fn == nil {
		return nil
	}
	return HandlerFunc[Args1[T1]](func(a Args1[T1]) error { return fn(a.V1) })
}

// Event2 is an event whose callbacks take two arguments.
type Event2[T1, T2 any] struct {
	*Dispatcher[Args2[T1, T2]]
}

func NewEvent2[T1, T2 any](name string, opts ...Option) *Event2[T1, T2] {
	return &Event2[T1, T2]{Dispatcher: New[Args2[T1, T2]](name, opts...)}
}

func (e *Event2[T1, T2]) Subscribe(fn func(T1, T2) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt2(fn), p)
}

func (e *Event2[T1, T2]) Resubscribe(tok Token, fn func(T1, T2) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt2(fn), p)
}

func (e *Event2[T1, T2]) Invoke(v1 T1, v2 T2) {
	e.Dispatcher.Invoke(Args2[T1, T2]{V1: v1, V2: v2})
}

func adapt2[T1, T2 any](fn func(T1, T2) error) Handler[Args2[T1, T2]] {
	if fn == nil {
		return nil
	}
	return HandlerFunc[Args2[T1, T2]](func(a Args2[T1, T2]) error { return fn(a.V1, a.V2) })
}

// Event3 is an event whose callbacks take three arguments.
type Event3[T1, T2, T3 any] struct {
	*Dispatcher[Args3[T1, T2, T3]]
}

func NewEvent3[T1, T2, T3 any](name string, opts ...Option) *Event3[T1, T2, T3] {
	return &Event3[T1, T2, T3]{Dispatcher: New[Args3[T1, T2, T3]](name, opts...)}
}

func (e *Event3[T1, T2, T3]) Subscribe(fn func(T1, T2, T3) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt3(fn), p)
}

func (e *Event3[T1, T2, T3]) Resubscribe(tok Token, fn func(T1, T2, T3) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt3(fn), p)
}

func (e *Event3[T1, T2, T3]) Invoke(v1 T1, v2 T2, v3 T3) {
	e.Dispatcher.Invoke(Args3[T1, T2, T3]{V1: v1, V2: v2, V3: v3})
}

func adapt3[T1, T2, T3 any](fn func(T1, T2, T3) error) Handler[Args3[T1, T2, T3]] {
	if fn == nil {
		return nil
	}
	return HandlerFunc[Args3[T1, T2, T3]](func(a Args3[T1, T2, T3]) error {
		return fn(a.V1, a.V2, a.V3)
	})
}

// Event4 is an event whose callbacks take four arguments.
type Event4[T1, T2, T3, T4 any] struct {
	*Dispatcher[Args4[T1, T2, T3, T4]]
}

func NewEvent4[T1, T2, T3, T4 any](name string, opts ...Option) *Event4[T1, T2, T3, T4] {
	return &Event4[T1, T2, T3, T4]{Dispatcher: New[Args4[T1, T2, T3, T4]](name, opts...)}
}

func (e *Event4[T1, T2, T3, T4]) Subscribe(fn func(T1, T2, T3, T4) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt4(fn), p)
}

func (e *Event4[T1, T2, T3, T4]) Resubscribe(tok Token, fn func(T1, T2, T3, T4) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt4(fn), p)
}

func (e *Event4[T1, T2, T3, T4]) Invoke(v1 T1, v2 T2, v3 T3, v4 T4) {
	e.Dispatcher.Invoke(Args4[T1, T2, T3, T4]{V1: v1, V2: v2, V3: v3, V4: v4})
}

func adapt4[T1, T2, T3, T4 any](fn func(T1, T2, T3, T4) error) Handler[Args4[T1, T2, T3, T4]] {
	if fn == nil {
		return nil
	}
	return HandlerFunc[Args4[T1, T2, T3, T4]](func(a Args4[T1, T2, T3, T4]) error {
		return fn(a.V1, a.V2, a.V3, a.V4)
	})
}

// Event5 is an event whose callbacks take five arguments.
type Event5[T1, T2, T3, T4, T5 any] struct {
	*Dispatcher[Args5[T1, T2, T3, T4, T5]]
}

func NewEvent5[T1, T2, T3, T4, T5 any](name string, opts ...Option) *Event5[T1, T2, T3, T4, T5] {
	return &Event5[T1, T2, T3, T4, T5]{Dispatcher: New[Args5[T1, T2, T3, T4, T5]](name, opts...)}
}

func (e *Event5[T1, T2, T3, T4, T5]) Subscribe(fn func(T1, T2, T3, T4, T5) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt5(fn), p)
}

func (e *Event5[T1, T2, T3, T4, T5]) Resubscribe(tok Token, fn func(T1, T2, T3, T4, T5) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt5(fn), p)
}

func (e *Event5[T1, T2, T3, T4, T5]) Invoke(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) {
	e.Dispatcher.Invoke(Args5[T1, T2, T3, T4, T5]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5})
}

func adapt5[T1, T2, T3, T4, T5 any](fn func(T1, T2, T3, T4, T5) error) Handler[Args5[T1, T2, T3, T4, T5]] {
	if fn == nil {
		return nil
	}
	return HandlerFunc[Args5[T1, T2, T3, T4, T5]](func(a Args5[T1, T2, T3, T4, T5]) error {
		return fn(a.V1, a.V2, a.V3, a.V4, a.V5)
	})
}

// Event6 is an event whose callbacks take six arguments.
type Event6[T1, T2, T3, T4, T5, T6 any] struct {
	*Dispatcher[Args6[T1, T2, T3, T4, T5, T6]]
}

func NewEvent6[T1, T2, T3, T4, T5, T6 any](name string, opts ...Option) *Event6[T1, T2, T3, T4, T5, T6] {
	return &Event6[T1, T2, T3, T4, T5, T6]{Dispatcher: New[Args6[T1, T2, T3, T4, T5, T6]](name, opts...)}
}

func (e *Event6[T1, T2, T3, T4, T5, T6]) Subscribe(fn func(T1, T2, T3, T4, T5, T6) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt6(fn), p)
}

func (e *Event6[T1, T2, T3, T4, T5, T6]) Resubscribe(tok Token, fn func(T1, T2, T3, T4, T5, T6) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt6(fn), p)
}

func (e *Event6[T1, T2, T3, T4, T5, T6]) Invoke(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) {
	e.Dispatcher.Invoke(Args6[T1, T2, T3, T4, T5, T6]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6})
}

func adapt6[T1, T2, T3, T4, T5, T6 any](fn func(T1, T2, T3, T4, T5, T6) error) Handler[Args6[T1, T2, T3, T4, T5, T6]] {
	if fn == nil {
		return nil
	}
	return HandlerFunc[Args6[T1, T2, T3, T4, T5, T6]](func(a Args6[T1, T2, T3, T4, T5, T6]) error {
		return fn(a.V1, a.V2, a.V3, a.V4, a.V5, a.V6)
	})
}
