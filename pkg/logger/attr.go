package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Dispatcher records the dispatcher name under the key "dispatcher".
func Dispatcher(name string) slog.Attr {
	return slog.String("dispatcher", name)
}

// Subscription records the subscription token under the key "subscription".
// If id is empty, it returns an empty Attr.
func Subscription(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("subscription", id)
}

// Priority records a subscriber priority under the key "priority".
func Priority(p string) slog.Attr {
	return slog.String("priority", p)
}

// Panic records a recovered panic value under the key "panic".
// If v is nil, it returns an empty Attr.
func Panic(v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("panic", v)
}

// Stack records a captured stack trace under the key "stack".
// If the trace is empty, it returns an empty Attr.
func Stack(stack []byte) slog.Attr {
	if len(stack) == 0 {
		return slog.Attr{}
	}
	return slog.String("stack", string(stack))
}

// Duration records how long an operation ran under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
