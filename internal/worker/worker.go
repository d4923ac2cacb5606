// Package worker pumps asynchronous radio signals into the scan executor.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"wifiscan/pkg/logger"
	"wifiscan/pkg/radio"
)

// EventPump forwards radio events to a Sink from a single goroutine, so
// completion signals reach the executor in the order the radio emitted them.
type EventPump struct {
	radio radio.Radio
	sink  Sink

	cancel    context.CancelFunc
	done      chan struct{}
	stopOnce  sync.Once
	processed atomic.Uint64
}

// Start launches the pump. It runs until ctx is canceled or Stop is called.
func Start(ctx context.Context, r radio.Radio, sink Sink) (*EventPump, error) {
	events := r.Events()
	if events == nil {
		return nil, errors.New("could not start event pump: radio has no event channel")
	}

	ctx, cancel := context.WithCancel(logger.Named(ctx, "radio-events"))
	p := &EventPump{
		radio:  r,
		sink:   sink,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go p.run(ctx, events)

	return p, nil
}

func (p *EventPump) run(ctx context.Context, events <-chan radio.Event) {
	defer close(p.done)

	for {
		select {
		case <-ctx.Done():
			logger.Debug(ctx, "event pump stopped", zap.Uint64("processed", p.processed.Load()))

			return
		case ev, ok := <-events:
			if !ok {
				logger.Warn(ctx, "radio event channel closed")

				return
			}
			p.dispatch(ctx, ev)
		}
	}
}

func (p *EventPump) dispatch(ctx context.Context, ev radio.Event) {
	ctx = logger.WithFields(ctx, zap.Stringer("event", ev.Type))

	switch ev.Type {
	case radio.EventResultsReady:
		p.sink.OnScanResultsReady(ctx)
	case radio.EventScanFailed:
		p.sink.OnScanFailed(ctx)
	default:
		logger.Warn(ctx, "unknown radio event")

		return
	}
	p.processed.Add(1)
}

// Processed returns the number of events forwarded so far.
func (p *EventPump) Processed() uint64 { return p.processed.Load() }

// Stop stops the pump and waits for it to exit or for ctx to expire.
func (p *EventPump) Stop(ctx context.Context) error {
	p.stopOnce.Do(p.cancel)

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("could not stop event pump: %w", ctx.Err())
	}
}
