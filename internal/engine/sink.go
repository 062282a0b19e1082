package engine

import (
	"context"
	"sync"

	"github.com/dm/f5mon/internal/model"
)

// CycleEvent is what one completed poll cycle delivers to the interactive
// surface: the ordered transitions detected in that cycle (possibly none)
// and the connection status after the cycle committed or failed.
type CycleEvent struct {
	Transitions []model.Transition
	Status      model.ConnectionStatus
}

// Sink decouples the poll loop from the interactive surface. Publish never
// blocks, so a console busy rendering a command cannot stall the poller;
// events queue unbounded and are drained in publish order, so no transition
// is ever dropped or reordered.
type Sink struct {
	mu    sync.Mutex
	queue []CycleEvent
	wake  chan struct{}
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{wake: make(chan struct{}, 1)}
}

// Publish appends an event to the queue and wakes any waiting consumer.
// It never blocks.
func (s *Sink) Publish(ev CycleEvent) {
	s.mu.Lock()
	s.queue = append(s.queue, ev)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Await blocks until at least one event is queued or ctx is done, then
// drains and returns every queued event in publish order. The consumer
// calls Await at its own safe points; anything published in between is
// delivered on the next call.
func (s *Sink) Await(ctx context.Context) ([]CycleEvent, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			evs := s.queue
			s.queue = nil
			s.mu.Unlock()
			return evs, nil
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.wake:
		}
	}
}
