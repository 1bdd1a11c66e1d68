package multicast

import "fmt"

// View is a borrowed, read-only reference to a value owned by the producer,
// typically a fixed-layout struct living in memory the dispatcher must not
// take over. A View is only valid for the duration of the callback receiving
// it; subscribers that need the value later must keep the copy from Load.
type View[T any] struct {
	ptr *T
}

// ViewOf wraps a producer-owned pointer. A nil pointer yields a nil view.
func ViewOf[T any](p *T) View[T] {
	return View[T]{ptr: p}
}

// Load returns a copy of the referenced value, or the zero value for a nil view.
func (v View[T]) Load() T {
	if v.ptr == nil {
		var zero T
		return zero
	}
	return *v.ptr
}

// IsNil reports whether the view references nothing.
func (v View[T]) IsNil() bool {
	return v.ptr == nil
}

func (v View[T]) String() string {
	if v.ptr == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", *v.ptr)
}

// ViewEvent1 is an event whose producers pass one externally owned value by address.
type ViewEvent1[T1 any] struct {
	*Dispatcher[Args1[View[T1]]]
}

func NewViewEvent1[T1 any](name string, opts ...Option) *ViewEvent1[T1] {
	return &ViewEvent1[T1]{Dispatcher: New[Args1[View[T1]]](name, opts...)}
}

func (e *ViewEvent1[T1]) Subscribe(fn func(View[T1]) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt1(fn), p)
}

func (e *ViewEvent1[T1]) Resubscribe(tok Token, fn func(View[T1]) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt1(fn), p)
}

func (e *ViewEvent1[T1]) Invoke(p1 *T1) {
	e.Dispatcher.Invoke(Args1[View[T1]]{V1: ViewOf(p1)})
}

// ViewEvent2 is an event whose producers pass two externally owned values by address.
type ViewEvent2[T1, T2 any] struct {
	*Dispatcher[Args2[View[T1], View[T2]]]
}

func NewViewEvent2[T1, T2 any](name string, opts ...Option) *ViewEvent2[T1, T2] {
	return &ViewEvent2[T1, T2]{Dispatcher: New[Args2[View[T1], View[T2]]](name, opts...)}
}

func (e *ViewEvent2[T1, T2]) Subscribe(fn func(View[T1], View[T2]) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt2(fn), p)
}

func (e *ViewEvent2[T1, T2]) Resubscribe(tok Token, fn func(View[T1], View[T2]) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt2(fn), p)
}

func (e *ViewEvent2[T1, T2]) Invoke(p1 *T1, p2 *T2) {
	e.Dispatcher.Invoke(Args2[View[T1], View[T2]]{V1: ViewOf(p1), V2: ViewOf(p2)})
}

// ViewEvent3 is an event whose producers pass three externally owned values by address.
type ViewEvent3[T1, T2, T3 any] struct {
	*Dispatcher[Args3[View[T1], View[T2], View[T3]]]
}

func NewViewEvent3[T1, T2, T3 any](name string, opts ...Option) *ViewEvent3[T1, T2, T3] {
	return &ViewEvent3[T1, T2, T3]{Dispatcher: New[Args3[View[T1], View[T2], View[T3]]](name, opts...)}
}

func (e *ViewEvent3[T1, T2, T3]) Subscribe(fn func(View[T1], View[T2], View[T3]) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt3(fn), p)
}

func (e *ViewEvent3[T1, T2, T3]) Resubscribe(tok Token, fn func(View[T1], View[T2], View[T3]) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt3(fn), p)
}

func (e *ViewEvent3[T1, T2, T3]) Invoke(p1 *T1, p2 *T2, p3 *T3) {
	e.Dispatcher.Invoke(Args3[View[T1], View[T2], View[T3]]{V1: ViewOf(p1), V2: ViewOf(p2), V3: ViewOf(p3)})
}

// ViewEvent1x3 is an event whose producers pass one plain value followed by
// three externally owned values by address.
type ViewEvent1x3[T1, T2, T3, T4 any] struct {
	*Dispatcher[Args4[T1, View[T2], View[T3], View[T4]]]
}

func NewViewEvent1x3[T1, T2, T3, T4 any](name string, opts ...Option) *ViewEvent1x3[T1, T2, T3, T4] {
	return &ViewEvent1x3[T1, T2, T3, T4]{Dispatcher: New[Args4[T1, View[T2], View[T3], View[T4]]](name, opts...)}
}

func (e *ViewEvent1x3[T1, T2, T3, T4]) Subscribe(fn func(T1, View[T2], View[T3], View[T4]) error, p Priority) Token {
	return e.Dispatcher.Subscribe(adapt4(fn), p)
}

func (e *ViewEvent1x3[T1, T2, T3, T4]) Resubscribe(tok Token, fn func(T1, View[T2], View[T3], View[T4]) error, p Priority) {
	e.Dispatcher.Resubscribe(tok, adapt4(fn), p)
}

func (e *ViewEvent1x3[T1, T2, T3, T4]) Invoke(v1 T1, p2 *T2, p3 *T3, p4 *T4) {
	e.Dispatcher.Invoke(Args4[T1, View[T2], View[T3], View[T4]]{V1: v1, V2: ViewOf(p2), V3: ViewOf(p3), V4: ViewOf(p4)})
}
