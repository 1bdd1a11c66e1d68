package multicast

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSubscriberFailed matches every Fault reported by a dispatcher.
	ErrSubscriberFailed = errors.New("multicast: subscriber failed")

	// ErrSubscriberPanic matches faults caused by a panicking subscriber.
	ErrSubscriberPanic = errors.New("multicast: subscriber panicked")
)

// Fault describes a single subscriber failure during Invoke.
// It is handed to the Reporter and never returned to the caller of Invoke.
type Fault struct {
	// Dispatcher is the name of the dispatcher that invoked the subscriber.
	Dispatcher string

	// Token identifies the failing subscription.
	Token Token

	// Priority is the priority the subscriber was invoked under.
	Priority Priority

	// Err is the error returned by the subscriber, or an error wrapping
	// ErrSubscriberPanic if it panicked.
	Err error

	// Panicked is true if the subscriber panicked.
	Panicked bool

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at the point of panic.
	Stack []byte

	// Elapsed is how long the subscriber ran before failing.
	Elapsed time.Duration
}

func (f *Fault) Error() string {
	return fmt.Sprintf("multicast: subscriber %s of %q failed: %v", f.Token, f.Dispatcher, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Is allows errors.Is to match any Fault with ErrSubscriberFailed.
func (f *Fault) Is(target error) bool {
	return target == ErrSubscriberFailed
}

func panicFault(value any, stack []byte) *Fault {
	var err error
	if e, ok := value.(error); ok {
		err = fmt.Errorf("%w: %w", ErrSubscriberPanic, e)
	} else {
		err = fmt.Errorf("%w: %v", ErrSubscriberPanic, value)
	}
	return &Fault{
		Err:      err,
		Panicked: true,
		Value:    value,
		Stack:    stack,
	}
}
