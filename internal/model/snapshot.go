package model

import "time"

// MemberState is the health state of a pool member. The set is closed:
// anything the appliance reports outside of it normalizes to StateUnknown.
type MemberState string

const (
	StateUp      MemberState = "up"
	StateDown    MemberState = "down"
	StateUnknown MemberState = "unknown"
)

// ParseMemberState maps a raw iControl REST state string onto the closed
// MemberState set. An unrecognized value maps to StateUnknown rather than
// failing the snapshot it arrived in.
func ParseMemberState(raw string) MemberState {
	switch raw {
	case "up":
		return StateUp
	case "down":
		return StateDown
	default:
		return StateUnknown
	}
}

// Member is one backend node within a pool. Identity within a snapshot is
// (pool name, member name).
type Member struct {
	Name            string
	Address         string
	State           MemberState
	SessionEnabled  bool
	ConnectionLimit int64 // 0 = unlimited
}

// Pool is a named group of members. Name is unique within a snapshot and
// member names are unique within a pool.
type Pool struct {
	Name    string
	Members []Member
}

// UpCount returns the number of members currently in StateUp.
func (p Pool) UpCount() int {
	n := 0
	for _, m := range p.Members {
		if m.State == StateUp {
			n++
		}
	}
	return n
}

// VirtualServer is a published service endpoint on the appliance.
type VirtualServer struct {
	Name        string
	Destination string
	Enabled     bool
	Pool        string      // attached pool name, "" if none
	State       MemberState // availability state, normalized like member states
}

// Snapshot captures the full pool/member/virtual state of the appliance at
// one instant. A Snapshot is immutable once constructed: committing a new
// one to the store is the only state transition, and no caller may mutate a
// snapshot after it has been committed. The zero value is the well-defined
// "not yet connected" state.
type Snapshot struct {
	Pools      []Pool
	Virtuals   []VirtualServer
	LogEntries []string // recent system log entry names; best-effort
	CapturedAt time.Time
}

// MemberKey is the globally-unique member identity within a snapshot.
type MemberKey struct {
	Pool   string
	Member string
}

// MemberStates builds a lookup from member identity to state. Used by the
// diff detector and by health summaries.
func (s Snapshot) MemberStates() map[MemberKey]MemberState {
	states := make(map[MemberKey]MemberState, s.MemberTotal())
	for _, p := range s.Pools {
		for _, m := range p.Members {
			states[MemberKey{Pool: p.Name, Member: m.Name}] = m.State
		}
	}
	return states
}

// Pool returns the named pool and whether it exists in the snapshot.
func (s Snapshot) Pool(name string) (Pool, bool) {
	for _, p := range s.Pools {
		if p.Name == name {
			return p, true
		}
	}
	return Pool{}, false
}

// MemberTotal returns the total member count across all pools.
func (s Snapshot) MemberTotal() int {
	n := 0
	for _, p := range s.Pools {
		n += len(p.Members)
	}
	return n
}

// ConnectionStatus is the process-wide connectivity summary maintained by
// the store alongside the snapshot.
type ConnectionStatus struct {
	Connected   bool
	LastUpdated time.Time // last successful fetch; zero before first success
	LastError   error     // nil while connected
}
