package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/f5mon/internal/engine"
)

// cycleEventsMsg delivers drained poll-cycle events to the console.
type cycleEventsMsg []engine.CycleEvent

// awaitCmd blocks on the alert sink and delivers everything queued since
// the last drain. Re-issued after each delivery; returns nil on shutdown.
func awaitCmd(ctx context.Context, sink *engine.Sink) tea.Cmd {
	return func() tea.Msg {
		evs, err := sink.Await(ctx)
		if err != nil {
			return nil
		}
		return cycleEventsMsg(evs)
	}
}
