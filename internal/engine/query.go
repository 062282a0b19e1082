package engine

import (
	"errors"
	"fmt"

	"github.com/dm/f5mon/internal/model"
)

// ErrPoolNotFound is returned by PoolDetail for a pool name that does not
// exist in the current snapshot.
var ErrPoolNotFound = errors.New("pool not found")

// Queries serves the console's read operations. Every operation performs
// exactly one store read, so all fields in one result come from the same
// snapshot — never a blend of two commits. Queries never block on the
// poller.
type Queries struct {
	store *Store
}

// NewQueries creates a Queries reading from the given store.
func NewQueries(store *Store) *Queries {
	return &Queries{store: store}
}

// Status reports connectivity and overall member counts.
func (q *Queries) Status() model.StatusReport {
	snap, status := q.store.Read()

	report := model.StatusReport{Connection: status}
	for _, p := range snap.Pools {
		for _, m := range p.Members {
			report.MembersTotal++
			switch m.State {
			case model.StateUp:
				report.MembersUp++
			case model.StateDown:
				report.MembersDown++
			}
		}
	}
	return report
}

// Pools returns every pool in the current snapshot, in appliance order.
func (q *Queries) Pools() []model.Pool {
	snap, _ := q.store.Read()
	return snap.Pools
}

// PoolDetail returns the named pool, or an error wrapping ErrPoolNotFound
// when the snapshot has no such pool.
func (q *Queries) PoolDetail(name string) (model.Pool, error) {
	snap, _ := q.store.Read()
	p, ok := snap.Pool(name)
	if !ok {
		return model.Pool{}, fmt.Errorf("%w: %q", ErrPoolNotFound, name)
	}
	return p, nil
}

// Virtuals returns every virtual server in the current snapshot.
func (q *Queries) Virtuals() []model.VirtualServer {
	snap, _ := q.store.Read()
	return snap.Virtuals
}

// Logs returns the system log entry names captured with the snapshot.
func (q *Queries) Logs() []string {
	snap, _ := q.store.Read()
	return snap.LogEntries
}

// Summary computes the health summary: up/total percentage (0 when there
// are no members, not an error), the down-member list, and enabled virtual
// server counts.
func (q *Queries) Summary() model.HealthSummary {
	snap, status := q.store.Read()

	sum := model.HealthSummary{LastChecked: status.LastUpdated}
	for _, p := range snap.Pools {
		for _, m := range p.Members {
			sum.MembersTotal++
			switch m.State {
			case model.StateUp:
				sum.MembersUp++
			case model.StateDown:
				sum.Down = append(sum.Down, model.DownMember{
					Pool:    p.Name,
					Member:  m.Name,
					Address: m.Address,
				})
			}
		}
	}
	if sum.MembersTotal > 0 {
		sum.HealthPercent = float64(sum.MembersUp) / float64(sum.MembersTotal) * 100
	}

	sum.VirtualsTotal = len(snap.Virtuals)
	for _, v := range snap.Virtuals {
		if v.Enabled {
			sum.VirtualsEnabled++
		}
	}
	return sum
}
