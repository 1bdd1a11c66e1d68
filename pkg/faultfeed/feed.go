package faultfeed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Report is one subscriber failure as seen by the feed.
type Report struct {
	Dispatcher string
	Err        error
	Time       time.Time
}

// Subscriber receives reports from a Feed.
type Subscriber interface {
	// Receive returns the channel reports are delivered on.
	// It is closed when the subscriber or the feed is closed.
	Receive() <-chan Report

	// Close stops delivery and closes the receive channel.
	// Close is idempotent.
	Close() error
}

// Feed streams dispatcher failures to any number of subscribers.
// It satisfies multicast.Reporter. Delivery never blocks the reporting
// goroutine: a report that does not fit a subscriber's buffer is dropped for
// that subscriber and counted. All methods are safe for concurrent use.
type Feed struct {
	subscribers map[*subscriber]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
	dropped     atomic.Uint64
	now         func() time.Time
}

// New creates a feed whose subscribers buffer up to bufferSize reports.
// A minimum buffer size of 1 is enforced.
func New(bufferSize int) *Feed {
	return &Feed{
		subscribers: make(map[*subscriber]struct{}),
		bufferSize:  max(bufferSize, 1),
		now:         time.Now,
	}
}

// Subscribe registers a new subscriber. It is removed when ctx is cancelled.
// Subscribing to a closed feed returns an already closed subscriber.
func (f *Feed) Subscribe(ctx context.Context) Subscriber {
	sub := newSubscriber(f.bufferSize)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		_ = sub.Close()
		return sub
	}

	f.subscribers[sub] = struct{}{}

	// A nil Done channel never fires, leaving Close as the only way out.
	f.cleanupWg.Add(1)
	go func() {
		defer f.cleanupWg.Done()
		select {
		case <-ctx.Done():
		case <-sub.done:
		}
		f.remove(sub)
	}()

	return sub
}

// ReportFailure publishes a failure to every subscriber without blocking.
func (f *Feed) ReportFailure(dispatcher string, err error) {
	r := Report{Dispatcher: dispatcher, Err: err, Time: f.now()}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return
	}
	for sub := range f.subscribers {
		if sub.deliver(r) == deliveryDropped {
			f.dropped.Add(1)
		}
	}
}

// Dropped returns how many deliveries were skipped because a subscriber's buffer was full.
func (f *Feed) Dropped() uint64 {
	return f.dropped.Load()
}

// Len returns the number of active subscribers.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers)
}

// Close closes all subscribers. Later reports are discarded.
// It is safe to call Close multiple times.
func (f *Feed) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	for sub := range f.subscribers {
		_ = sub.Close()
	}
	clear(f.subscribers)
	f.mu.Unlock()

	// Cleanup goroutines exit once their subscriber is closed.
	f.cleanupWg.Wait()
	return nil
}

func (f *Feed) remove(sub *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subscribers, sub)
	_ = sub.Close()
}

type delivery int

const (
	deliveryOK delivery = iota
	deliveryDropped
	deliveryClosed
)

type subscriber struct {
	ch     chan Report
	done   chan struct{}
	closed bool
	mu     sync.RWMutex
}

func newSubscriber(bufferSize int) *subscriber {
	return &subscriber{
		ch:   make(chan Report, bufferSize),
		done: make(chan struct{}),
	}
}

func (s *subscriber) Receive() <-chan Report {
	return s.ch
}

func (s *subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
		close(s.done)
	}
	return nil
}

func (s *subscriber) deliver(r Report) delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return deliveryClosed
	}
	select {
	case s.ch <- r:
		return deliveryOK
	default:
		return deliveryDropped
	}
}
