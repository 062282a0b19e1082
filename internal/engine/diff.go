package engine

import (
	"time"

	"github.com/dm/f5mon/internal/model"
)

// Diff computes the ordered member state transitions between two
// consecutive snapshots. It is a pure function of its inputs.
//
// Rules:
//   - A previous snapshot with no pools is the first-ever snapshot; it has
//     no baseline and produces no transitions.
//   - A member absent from the previous snapshot gets an "unknown"
//     baseline, so a new member only surfaces when it arrives up or down.
//   - A transition is emitted iff the old and new states differ.
//   - State-change transitions follow pool order then member order of the
//     new snapshot; members missing from the new snapshot append afterwards
//     as KindRemoved, in the previous snapshot's order.
func Diff(prev, next model.Snapshot, at time.Time) []model.Transition {
	if len(prev.Pools) == 0 {
		return nil
	}

	prevStates := prev.MemberStates()
	seen := make(map[model.MemberKey]struct{}, next.MemberTotal())

	var out []model.Transition
	for _, p := range next.Pools {
		for _, m := range p.Members {
			key := model.MemberKey{Pool: p.Name, Member: m.Name}
			seen[key] = struct{}{}

			old, ok := prevStates[key]
			if !ok {
				old = model.StateUnknown
			}
			if old == m.State {
				continue
			}
			out = append(out, model.Transition{
				Pool:       p.Name,
				Member:     m.Name,
				From:       old,
				To:         m.State,
				Kind:       model.KindStateChange,
				DetectedAt: at,
			})
		}
	}

	for _, p := range prev.Pools {
		for _, m := range p.Members {
			key := model.MemberKey{Pool: p.Name, Member: m.Name}
			if _, ok := seen[key]; ok {
				continue
			}
			out = append(out, model.Transition{
				Pool:       p.Name,
				Member:     m.Name,
				From:       m.State,
				Kind:       model.KindRemoved,
				DetectedAt: at,
			})
		}
	}

	return out
}
