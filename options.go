package multicast

import "log/slog"

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	reporter Reporter
}

// defaultOptions reports through slog.Default().
func defaultOptions() options {
	return options{reporter: NewLogReporter(nil)}
}

// WithReporter sets the failure sink. Nil reporters are ignored.
// Passing the same reporter to many dispatchers gives them one shared sink.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithLogger reports failures to the given logger through a LogReporter.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.reporter = NewLogReporter(l)
		}
	}
}
