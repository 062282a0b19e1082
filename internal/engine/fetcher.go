package engine

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/f5mon/internal/client"
	"github.com/dm/f5mon/internal/model"
)

// maxMemberFetches bounds concurrent per-pool member requests so a box with
// many pools does not open dozens of management-plane connections at once.
const maxMemberFetches = 4

// FetchAll retrieves pools, per-pool members, and virtual servers from the
// appliance and assembles a complete snapshot. The pool and virtual list
// requests run concurrently; member lists are then fetched concurrently
// with bounded parallelism, preserving pool order. Any failure among these
// fails the whole fetch — a snapshot is all-or-nothing.
//
// The system log fetch is non-fatal and runs outside the errgroup on the
// parent ctx so a slow /mgmt/tm/sys/log call cannot delay or fail the core
// state. The buffered channel prevents a goroutine leak regardless of
// whether the result is consumed.
func FetchAll(ctx context.Context, c client.F5Client) (*model.Snapshot, error) {
	var (
		pools    []client.PoolInfo
		virtuals []client.VirtualInfo
	)

	logCh := make(chan []string, 1)
	go func() {
		logs, err := c.GetSystemLogs(ctx)
		if err != nil {
			logCh <- nil
			return
		}
		logCh <- logs
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		pools, err = c.GetPools(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		virtuals, err = c.GetVirtualServers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Indexed result slice keeps member lists aligned with pool order no
	// matter which fetch finishes first.
	members := make([][]client.MemberInfo, len(pools))
	mg, mctx := errgroup.WithContext(ctx)
	mg.SetLimit(maxMemberFetches)
	for i, p := range pools {
		i, p := i, p
		mg.Go(func() error {
			items, err := c.GetPoolMembers(mctx, p.Name)
			if err != nil {
				return err
			}
			members[i] = items
			return nil
		})
	}
	if err := mg.Wait(); err != nil {
		return nil, err
	}

	var logs []string
	select {
	case logs = <-logCh:
	case <-ctx.Done():
	}

	snap := &model.Snapshot{
		Pools:      make([]model.Pool, len(pools)),
		Virtuals:   make([]model.VirtualServer, len(virtuals)),
		LogEntries: logs,
		CapturedAt: time.Now(),
	}
	for i, p := range pools {
		snap.Pools[i] = model.Pool{
			Name:    p.Name,
			Members: convertMembers(members[i]),
		}
	}
	for i, v := range virtuals {
		snap.Virtuals[i] = model.VirtualServer{
			Name:        v.Name,
			Destination: v.Destination,
			Enabled:     v.Enabled,
			Pool:        trimPartition(v.Pool),
			State:       model.ParseMemberState(v.State),
		}
	}
	return snap, nil
}

func convertMembers(items []client.MemberInfo) []model.Member {
	out := make([]model.Member, len(items))
	for i, m := range items {
		out[i] = model.Member{
			Name:            m.Name,
			Address:         m.Address,
			State:           model.ParseMemberState(m.State),
			SessionEnabled:  sessionEnabled(m.Session),
			ConnectionLimit: m.ConnectionLimit,
		}
	}
	return out
}

// sessionEnabled reports whether a raw session string ("monitor-enabled",
// "user-enabled", "user-disabled", ...) means the member accepts sessions.
func sessionEnabled(session string) bool {
	return session == "enabled" || strings.HasSuffix(session, "-enabled")
}

// trimPartition strips the iControl partition prefix from an object
// reference, e.g. "/Common/web_pool" -> "web_pool".
func trimPartition(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
