// Package multicast provides a thread-safe, priority-ordered multicast callback dispatcher.
//
// A Dispatcher is bound to a single event and a single callback signature.
// Independent components subscribe callbacks under a Priority; Invoke calls
// them synchronously, highest priority first, with equal priorities in the
// order they were subscribed. A subscriber that returns an error or panics is
// reported to a Reporter and skipped; the rest still run and Invoke itself
// never fails.
//
// Basic usage:
//
//	saved := multicast.NewEvent1[Document]("document.saved",
//		multicast.WithLogger(log),
//	)
//	defer saved.Close()
//
//	tok := saved.Subscribe(func(doc Document) error {
//		return index.Update(doc)
//	}, multicast.PriorityHigh)
//	defer saved.Unsubscribe(tok)
//
//	if saved.HasSubscribers() {
//		saved.Invoke(doc)
//	}
//
// # Identity
//
// Every subscription is identified by a Token returned from Subscribe.
// Unsubscribe takes the token, not the callback, so two behaviourally
// identical closures are always distinct subscribers. Callers that need a
// stable identity across unsubscribe/subscribe cycles create one with
// NewToken and use Resubscribe, which replaces the handler and priority of an
// existing subscription instead of adding a second one.
//
// # Arities
//
// The generic core is Dispatcher[A] over an argument tuple A. Event0 through
// Event6 are thin wrappers over the tuples Args0 through Args6 that accept
// plain functions and positional arguments. ViewEvent1 through ViewEvent3 pass
// producer-owned values by address and hand subscribers read-only View values
// instead of raw pointers.
//
// # Failure reporting
//
// The failure sink is injected per dispatcher with WithReporter or WithLogger.
// Without options failures are logged to slog.Default() by a LogReporter.
// MultiReporter fans out to several sinks and pkg/faultfeed streams faults to
// channel subscribers. Reporters run on the invoking goroutine; a panicking
// reporter is recovered.
//
// # Concurrency
//
// Subscribe, Unsubscribe and Invoke may be called from any goroutine. Invoke
// works on a snapshot copied under a read lock, so subscribers may modify the
// dispatcher from inside a callback. There is no timeout: a subscriber that
// blocks, blocks Invoke.
package multicast
