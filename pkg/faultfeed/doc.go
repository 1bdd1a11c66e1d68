// Package faultfeed streams dispatcher failures to channel subscribers.
//
// A Feed implements multicast.Reporter, so it can be passed to a dispatcher
// directly or next to a LogReporter through multicast.NewMultiReporter:
//
//	feed := faultfeed.New(64)
//	defer feed.Close()
//
//	saved := multicast.NewEvent1[Document]("document.saved",
//		multicast.WithReporter(multicast.NewMultiReporter(
//			multicast.NewLogReporter(log),
//			feed,
//		)),
//	)
//
//	sub := feed.Subscribe(ctx)
//	go func() {
//		for r := range sub.Receive() {
//			alerts.Notify(r.Dispatcher, r.Err)
//		}
//	}()
//
// Reporting happens on the invoking goroutine, so the feed never blocks: when
// a subscriber's buffer is full the report is dropped for that subscriber and
// counted by Dropped. Subscriptions end when their context is cancelled, when
// the subscriber is closed, or when the feed is closed.
package faultfeed
