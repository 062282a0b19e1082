package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/f5mon/internal/engine"
	"github.com/dm/f5mon/internal/model"
)

func newTestApp(t *testing.T) (*App, *engine.Store, *engine.Sink) {
	t.Helper()
	store := engine.NewStore()
	sink := engine.NewSink()
	app := NewApp(context.Background(), engine.NewQueries(store), sink, "bigip.example.com", 30*time.Second)
	return app, store, sink
}

func commitTestSnapshot(store *engine.Store) {
	store.Commit(model.Snapshot{
		Pools: []model.Pool{
			{Name: "web_pool", Members: []model.Member{
				{Name: "web1:80", Address: "10.0.0.1", State: model.StateUp},
				{Name: "web2:80", Address: "10.0.0.2", State: model.StateDown},
			}},
		},
		Virtuals: []model.VirtualServer{
			{Name: "vs_web", Destination: "10.0.0.100:443", Enabled: true, Pool: "web_pool"},
		},
		LogEntries: []string{"log/ltm"},
		CapturedAt: time.Now(),
	})
}

func TestRunCommandDispatch(t *testing.T) {
	app, store, _ := newTestApp(t)
	commitTestSnapshot(store)

	tests := []struct {
		name string
		line string
		want string
	}{
		{"help", "help", "Available commands"},
		{"status", "status", "Status for bigip.example.com"},
		{"pools", "pools", "web_pool: 1/2 members up"},
		{"pool detail", "pool web_pool", `Pool "web_pool" details`},
		{"pool missing arg", "pool", "usage: pool <name>"},
		{"pool not found", "pool nope", `Pool "nope" not found.`},
		{"virtuals", "virtuals", "vs_web"},
		{"virtual alias", "virtual", "vs_web"},
		{"logs", "logs", "log/ltm"},
		{"summary", "summary", "Overall health"},
		{"alerts", "alerts", "No state transitions"},
		{"unknown", "bogus", "Unknown command"},
		{"case insensitive", "POOLS", "web_pool"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, cmd := app.runCommand(tc.line)
			assert.Nil(t, cmd)
			assert.Contains(t, strings.Join(out, "\n"), tc.want)
		})
	}
}

func TestRunCommandQuit(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, line := range []string{"quit", "exit"} {
		out, cmd := app.runCommand(line)
		assert.Contains(t, strings.Join(out, "\n"), "Goodbye!")
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestRunCommandClear(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.lines = []string{"old output"}

	out, cmd := app.runCommand("clear")
	assert.Nil(t, out)
	assert.Nil(t, cmd)
	assert.Empty(t, app.lines)
}

func TestUpdateWindowSize(t *testing.T) {
	app, _, _ := newTestApp(t)
	assert.False(t, app.ready)
	assert.Contains(t, app.View(), "Starting...")

	m, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app = m.(*App)
	assert.True(t, app.ready)

	view := app.View()
	assert.Contains(t, view, "bigip.example.com")
	assert.Contains(t, view, "interactive LTM console")
}

func TestUpdateCycleEvents(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	at := time.Date(2024, 5, 1, 13, 4, 5, 0, time.UTC)
	ev := engine.CycleEvent{
		Transitions: []model.Transition{
			{Pool: "web_pool", Member: "web4:80", From: model.StateUp, To: model.StateDown, Kind: model.KindStateChange, DetectedAt: at},
		},
		Status: model.ConnectionStatus{Connected: true, LastUpdated: at},
	}

	m, cmd := app.Update(cycleEventsMsg{ev})
	app = m.(*App)

	assert.NotNil(t, cmd, "must resubscribe to the sink")
	assert.True(t, app.status.Connected)
	assert.Equal(t, 1, app.history.Len())
	assert.Contains(t, strings.Join(app.lines, "\n"), "STATE CHANGE: web_pool/web4:80 up -> down")
}

func TestUpdateEnterRunsCommand(t *testing.T) {
	app, store, _ := newTestApp(t)
	commitTestSnapshot(store)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	app.input.SetValue("pools")
	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = m.(*App)

	out := strings.Join(app.lines, "\n")
	assert.Contains(t, out, "> pools", "command line is echoed")
	assert.Contains(t, out, "web_pool: 1/2 members up")
	assert.Empty(t, app.input.Value(), "prompt resets after enter")
}

func TestUpdateEnterIgnoresBlankLine(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	before := len(app.lines)

	app.input.SetValue("   ")
	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = m.(*App)

	assert.Len(t, app.lines, before)
}

func TestUpdateQuitKeys(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdateClearKey(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app.lines = []string{"stale"}

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	app = m.(*App)
	assert.Empty(t, app.lines)
}

func TestAwaitCmdDeliversEvents(t *testing.T) {
	sink := engine.NewSink()
	sink.Publish(engine.CycleEvent{Status: model.ConnectionStatus{Connected: true}})

	msg := awaitCmd(context.Background(), sink)()
	events, ok := msg.(cycleEventsMsg)
	require.True(t, ok, "awaitCmd must return cycleEventsMsg, got %T", msg)
	require.Len(t, events, 1)
	assert.True(t, events[0].Status.Connected)
}

func TestAwaitCmdNilOnCancel(t *testing.T) {
	sink := engine.NewSink()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Nil(t, awaitCmd(ctx, sink)())
}
