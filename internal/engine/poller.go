package engine

import (
	"context"
	"log"
	"time"

	"github.com/dm/f5mon/internal/client"
)

// DefaultInterval is the poll period used when none is configured.
const DefaultInterval = 30 * time.Second

// Poller drives the fetch -> diff -> commit -> publish cycle on a fixed
// interval until its context is cancelled. A failed fetch records the error
// in the store and waits for the next cycle; it never stops the loop — the
// fixed interval is the retry mechanism.
type Poller struct {
	client   client.F5Client
	store    *Store
	sink     *Sink
	interval time.Duration
}

// NewPoller creates a Poller. interval <= 0 falls back to DefaultInterval.
func NewPoller(c client.F5Client, store *Store, sink *Sink, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		client:   c,
		store:    store,
		sink:     sink,
		interval: interval,
	}
}

// Run polls immediately, then repeats after a fixed inter-cycle delay
// measured from the end of each cycle (slow fetches stretch the wall-clock
// period rather than stacking up). Returns ctx.Err() once cancelled;
// cancellation is only observed between cycles, never mid-commit.
func (p *Poller) Run(ctx context.Context) error {
	for {
		p.cycle(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}
}

// cycle performs one poll: fetch a snapshot, diff it against the previous
// committed one, commit, and publish the result to the sink.
func (p *Poller) cycle(ctx context.Context) {
	fctx, cancel := context.WithTimeout(ctx, fetchTimeout(p.interval))
	defer cancel()

	snap, err := FetchAll(fctx, p.client)
	if err != nil {
		if ctx.Err() != nil {
			// Shutdown mid-fetch; not a connectivity failure.
			return
		}
		log.Printf("poll: fetch failed: %v", err)
		p.store.Fail(err)
		_, status := p.store.Read()
		p.sink.Publish(CycleEvent{Status: status})
		return
	}

	prev, prevStatus := p.store.Read()
	if !prevStatus.Connected && !prevStatus.LastUpdated.IsZero() {
		log.Printf("poll: connection restored")
	}

	transitions := Diff(prev, *snap, snap.CapturedAt)
	p.store.Commit(*snap)
	_, status := p.store.Read()
	p.sink.Publish(CycleEvent{Transitions: transitions, Status: status})
}

// fetchTimeout derives the per-cycle fetch deadline from the poll interval:
// interval minus 500ms headroom, floored at 500ms, so one slow fetch cannot
// bleed into the next cycle.
func fetchTimeout(interval time.Duration) time.Duration {
	timeout := interval - 500*time.Millisecond
	if timeout < 500*time.Millisecond {
		timeout = 500 * time.Millisecond
	}
	return timeout
}
