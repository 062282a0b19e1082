package model

import (
	"fmt"
	"time"
)

// TransitionKind distinguishes an in-place state change from a member that
// disappeared between two snapshots.
type TransitionKind int

const (
	// KindStateChange: the member exists in both snapshots with different states.
	KindStateChange TransitionKind = iota
	// KindRemoved: the member was present in the previous snapshot only.
	KindRemoved
)

// Transition is one detected member state change between two consecutive
// snapshots. Transitions are transient: the diff detector produces them,
// the alert sink delivers them once, and the store never retains them.
type Transition struct {
	Pool       string
	Member     string
	From       MemberState
	To         MemberState // meaningless when Kind is KindRemoved
	Kind       TransitionKind
	DetectedAt time.Time
}

// String renders a transition in the "pool/member old -> new" form used for
// alert lines.
func (t Transition) String() string {
	if t.Kind == KindRemoved {
		return fmt.Sprintf("%s/%s %s -> removed", t.Pool, t.Member, t.From)
	}
	return fmt.Sprintf("%s/%s %s -> %s", t.Pool, t.Member, t.From, t.To)
}
