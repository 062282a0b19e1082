package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/f5mon/internal/model"
)

// snapFromStates builds a snapshot with one or more pools from an ordered
// list of (pool, member, state) triples.
func snapFromStates(entries ...[3]string) model.Snapshot {
	var snap model.Snapshot
	idx := map[string]int{}
	for _, e := range entries {
		pool, member, state := e[0], e[1], e[2]
		i, ok := idx[pool]
		if !ok {
			i = len(snap.Pools)
			idx[pool] = i
			snap.Pools = append(snap.Pools, model.Pool{Name: pool})
		}
		snap.Pools[i].Members = append(snap.Pools[i].Members, model.Member{
			Name:  member,
			State: model.MemberState(state),
		})
	}
	return snap
}

func TestDiffFirstSnapshotProducesNothing(t *testing.T) {
	next := snapFromStates([3]string{"web_pool", "web1:80", "down"})
	assert.Nil(t, Diff(model.Snapshot{}, next, time.Now()))
}

func TestDiffIdenticalSnapshots(t *testing.T) {
	snap := snapFromStates(
		[3]string{"web_pool", "web1:80", "up"},
		[3]string{"web_pool", "web2:80", "down"},
		[3]string{"api_pool", "api1:8080", "unknown"},
	)
	assert.Empty(t, Diff(snap, snap, time.Now()))
}

func TestDiffSingleStateChange(t *testing.T) {
	prev := snapFromStates(
		[3]string{"web_pool", "web1:80", "up"},
		[3]string{"web_pool", "web2:80", "up"},
		[3]string{"web_pool", "web3:80", "up"},
		[3]string{"web_pool", "web4:80", "down"},
	)
	next := snapFromStates(
		[3]string{"web_pool", "web1:80", "up"},
		[3]string{"web_pool", "web2:80", "up"},
		[3]string{"web_pool", "web3:80", "up"},
		[3]string{"web_pool", "web4:80", "up"},
	)

	at := time.Now()
	got := Diff(prev, next, at)
	require.Len(t, got, 1)
	assert.Equal(t, model.Transition{
		Pool:       "web_pool",
		Member:     "web4:80",
		From:       model.StateDown,
		To:         model.StateUp,
		Kind:       model.KindStateChange,
		DetectedAt: at,
	}, got[0])
}

func TestDiffNewMemberUnknownBaseline(t *testing.T) {
	prev := snapFromStates([3]string{"web_pool", "web1:80", "up"})

	// A member arriving in state unknown matches its baseline: no transition.
	next := snapFromStates(
		[3]string{"web_pool", "web1:80", "up"},
		[3]string{"web_pool", "web2:80", "unknown"},
	)
	assert.Empty(t, Diff(prev, next, time.Now()))

	// Arriving up differs from the unknown baseline: one transition.
	next = snapFromStates(
		[3]string{"web_pool", "web1:80", "up"},
		[3]string{"web_pool", "web2:80", "up"},
	)
	got := Diff(prev, next, time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, model.StateUnknown, got[0].From)
	assert.Equal(t, model.StateUp, got[0].To)
}

func TestDiffRemovedMember(t *testing.T) {
	prev := snapFromStates(
		[3]string{"web_pool", "web1:80", "up"},
		[3]string{"web_pool", "web2:80", "down"},
	)
	next := snapFromStates([3]string{"web_pool", "web1:80", "up"})

	got := Diff(prev, next, time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, model.KindRemoved, got[0].Kind)
	assert.Equal(t, "web2:80", got[0].Member)
	assert.Equal(t, model.StateDown, got[0].From)
}

func TestDiffOrderFollowsNewSnapshot(t *testing.T) {
	prev := snapFromStates(
		[3]string{"api_pool", "api1:8080", "down"},
		[3]string{"api_pool", "gone:8080", "up"},
		[3]string{"web_pool", "web1:80", "down"},
		[3]string{"web_pool", "web2:80", "down"},
	)
	// New snapshot lists web_pool first; its changes must come first, and
	// the removal of api_pool/gone goes last.
	next := snapFromStates(
		[3]string{"web_pool", "web1:80", "up"},
		[3]string{"web_pool", "web2:80", "up"},
		[3]string{"api_pool", "api1:8080", "up"},
	)

	got := Diff(prev, next, time.Now())
	require.Len(t, got, 4)
	assert.Equal(t, "web1:80", got[0].Member)
	assert.Equal(t, "web2:80", got[1].Member)
	assert.Equal(t, "api1:8080", got[2].Member)
	assert.Equal(t, "gone:8080", got[3].Member)
	assert.Equal(t, model.KindRemoved, got[3].Kind)
}

// TestDiffRoundTrip checks that applying diff(A,B) to A's member-state map
// reproduces B's member-state map: state changes overwrite, new members
// insert, removals delete.
func TestDiffRoundTrip(t *testing.T) {
	a := snapFromStates(
		[3]string{"web_pool", "web1:80", "up"},
		[3]string{"web_pool", "web2:80", "down"},
		[3]string{"web_pool", "web3:80", "unknown"},
		[3]string{"api_pool", "api1:8080", "up"},
	)
	b := snapFromStates(
		[3]string{"web_pool", "web1:80", "down"},
		[3]string{"web_pool", "web2:80", "down"},
		[3]string{"web_pool", "new1:80", "up"},
		[3]string{"api_pool", "api1:8080", "unknown"},
	)

	applied := a.MemberStates()
	for _, tr := range Diff(a, b, time.Now()) {
		key := model.MemberKey{Pool: tr.Pool, Member: tr.Member}
		if tr.Kind == model.KindRemoved {
			delete(applied, key)
			continue
		}
		applied[key] = tr.To
	}

	assert.Equal(t, b.MemberStates(), applied)
}
