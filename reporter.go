package multicast

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/multicast/pkg/logger"
)

// Reporter receives subscriber failures from Invoke.
// It is called synchronously from the invoking goroutine, so implementations
// should return quickly. A panicking reporter is recovered and ignored.
type Reporter interface {
	ReportFailure(dispatcher string, err error)
}

// ReporterFunc is a function adapter for Reporter.
type ReporterFunc func(dispatcher string, err error)

// ReportFailure implements the Reporter interface.
func (f ReporterFunc) ReportFailure(dispatcher string, err error) {
	f(dispatcher, err)
}

// NopReporter discards all failures.
type NopReporter struct{}

func (NopReporter) ReportFailure(string, error) {}

// MultiReporter fans out failures to multiple reporters.
// A panicking reporter does not prevent the remaining ones from being called.
type MultiReporter struct {
	reporters []Reporter
}

// NewMultiReporter creates a MultiReporter that forwards to all non-nil reporters.
func NewMultiReporter(reporters ...Reporter) *MultiReporter {
	filtered := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			filtered = append(filtered, r)
		}
	}
	return &MultiReporter{reporters: filtered}
}

func (m *MultiReporter) ReportFailure(dispatcher string, err error) {
	for _, r := range m.reporters {
		safeReport(r, dispatcher, err)
	}
}

// LogReporter writes failures to a structured logger at error level.
type LogReporter struct {
	logger *slog.Logger
	ctx    context.Context
}

// NewLogReporter creates a LogReporter.
// A nil logger means slog.Default(), resolved on every report so that a
// default set later via logger.SetAsDefault is honoured.
func NewLogReporter(l *slog.Logger) *LogReporter {
	return &LogReporter{logger: l, ctx: context.Background()}
}

// WithContext returns a copy that logs with ctx, so context extractors of the
// logger see the values of the owning component (a session or worker id).
func (r *LogReporter) WithContext(ctx context.Context) *LogReporter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &LogReporter{logger: r.logger, ctx: ctx}
}

func (r *LogReporter) ReportFailure(dispatcher string, err error) {
	l := r.logger
	if l == nil {
		l = slog.Default()
	}

	attrs := []slog.Attr{logger.Dispatcher(dispatcher), logger.Error(err)}

	var f *Fault
	if errors.As(err, &f) {
		attrs = append(attrs,
			logger.Subscription(f.Token.String()),
			logger.Priority(f.Priority.String()),
			logger.Duration(f.Elapsed),
		)
		if f.Panicked {
			attrs = append(attrs, logger.Panic(f.Value), logger.Stack(f.Stack))
		}
	}

	ctx := r.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	l.LogAttrs(ctx, slog.LevelError, "subscriber failed", attrs...)
}

// safeReport shields the dispatch loop from a misbehaving reporter.
func safeReport(r Reporter, dispatcher string, err error) {
	defer func() {
		_ = recover()
	}()
	r.ReportFailure(dispatcher, err)
}
