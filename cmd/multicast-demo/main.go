package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/multicast"
	"github.com/dmitrymomot/multicast/pkg/config"
	"github.com/dmitrymomot/multicast/pkg/faultfeed"
	"github.com/dmitrymomot/multicast/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var loadOpts []config.Option
	if _, err := os.Stat(".env"); err == nil {
		loadOpts = append(loadOpts, config.WithFiles(".env"))
	}

	log, err := logger.FromEnv(loadOpts, logger.WithAttr(logger.Component("multicast-demo")))
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	logger.SetAsDefault(log)

	feed := faultfeed.New(16)
	defer feed.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	faults := feed.Subscribe(ctx)

	reporter := multicast.NewMultiReporter(multicast.NewLogReporter(log).WithContext(ctx), feed)
	saved := multicast.NewEvent2[string, int]("document.saved", multicast.WithReporter(reporter))

	var order []string
	visit := func(name string) func(string, int) error {
		return func(string, int) error {
			order = append(order, name)
			return nil
		}
	}

	saved.Subscribe(visit("audit"), multicast.PriorityLowest)
	saved.Subscribe(visit("index"), multicast.PriorityHigh)
	saved.Subscribe(func(path string, size int) error {
		order = append(order, "quota")
		if size > 1024 {
			return fmt.Errorf("%s exceeds quota: %d bytes", path, size)
		}
		return nil
	}, multicast.PriorityNormal)
	saved.Subscribe(func(string, int) error {
		order = append(order, "preview")
		panic("renderer unavailable")
	}, multicast.PriorityNormal)
	saved.Subscribe(visit("state"), multicast.PriorityHighest)

	slog.InfoContext(ctx, "invoking", logger.Dispatcher(saved.Name()), slog.Int("subscribers", saved.Len()))
	saved.Invoke("report.pdf", 4096)

	fmt.Println("order:", strings.Join(order, " -> "))

	for {
		select {
		case r := <-faults.Receive():
			var f *multicast.Fault
			if errors.As(r.Err, &f) {
				fmt.Printf("fault: %s priority=%s panicked=%t: %v\n", r.Dispatcher, f.Priority, f.Panicked, f.Err)
			}
		default:
			return saved.Close()
		}
	}
}
