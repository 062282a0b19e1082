package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/f5mon/internal/engine"
	"github.com/dm/f5mon/internal/model"
)

// App is the root Bubble Tea model for the console: a one-line header, a
// scrollback viewport, and a command prompt. Alerts from the poller arrive
// through the sink and are appended to the scrollback between commands —
// never inside a command's output block.
type App struct {
	ctx      context.Context
	queries  *engine.Queries
	sink     *engine.Sink
	host     string
	interval time.Duration

	input    textinput.Model
	viewport viewport.Model
	ready    bool

	lines   []string
	history *model.TransitionHistory
	status  model.ConnectionStatus

	width, height int
}

// NewApp creates the console model. ctx bounds the sink subscription and is
// cancelled by main on shutdown.
func NewApp(ctx context.Context, queries *engine.Queries, sink *engine.Sink, host string, interval time.Duration) *App {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = StylePrompt
	ti.Placeholder = "type 'help' for commands"
	ti.CharLimit = 256
	ti.Focus()

	return &App{
		ctx:      ctx,
		queries:  queries,
		sink:     sink,
		host:     host,
		interval: interval,
		input:    ti,
		history:  model.NewTransitionHistory(0),
		lines: []string{
			StyleTitle.Render("f5mon — interactive LTM console"),
			"Target: " + host,
			StyleDim.Render("Type 'help' for commands or 'quit' to exit."),
		},
	}
}

// Init implements tea.Model. Starts the prompt cursor and the sink
// subscription.
func (app *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, awaitCmd(app.ctx, app.sink))
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

		vpHeight := msg.Height - 2 // header + prompt
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !app.ready {
			app.viewport = viewport.New(msg.Width, vpHeight)
			// Restrict scrolling to pgup/pgdn so plain letters reach the
			// prompt instead of the viewport.
			app.viewport.KeyMap = viewport.KeyMap{
				PageUp:   key.NewBinding(key.WithKeys("pgup")),
				PageDown: key.NewBinding(key.WithKeys("pgdown")),
			}
			app.ready = true
		} else {
			app.viewport.Width = msg.Width
			app.viewport.Height = vpHeight
		}
		app.input.Width = msg.Width - 4
		app.refreshViewport()

	case cycleEventsMsg:
		// Safe point: flush everything the poller queued since the last
		// drain, in order, then resubscribe.
		for _, ev := range msg {
			app.status = ev.Status
			for _, t := range ev.Transitions {
				app.history.Push(t)
				app.lines = append(app.lines, alertLine(t))
			}
		}
		app.refreshViewport()
		return app, awaitCmd(app.ctx, app.sink)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Clear):
			app.lines = nil
			app.refreshViewport()
			return app, nil
		}

		if msg.Type == tea.KeyEnter {
			line := strings.TrimSpace(app.input.Value())
			app.input.Reset()
			if line == "" {
				return app, nil
			}
			app.lines = append(app.lines, StylePrompt.Render("> ")+line)
			out, cmd := app.runCommand(line)
			app.lines = append(app.lines, out...)
			app.refreshViewport()
			return app, cmd
		}

		var tiCmd, vpCmd tea.Cmd
		app.input, tiCmd = app.input.Update(msg)
		app.viewport, vpCmd = app.viewport.Update(msg)
		return app, tea.Batch(tiCmd, vpCmd)
	}

	return app, nil
}

// View implements tea.Model.
func (app *App) View() string {
	if !app.ready {
		return "\n  Starting..."
	}
	return renderHeader(app) + "\n" + app.viewport.View() + "\n" + app.input.View()
}

// runCommand dispatches one console command line against the query engine.
// Every query serves from a single consistent snapshot read.
func (app *App) runCommand(line string) ([]string, tea.Cmd) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "help":
		return helpLines, nil
	case "status":
		return renderStatus(app.host, app.queries.Status()), nil
	case "pools":
		return renderPools(app.queries.Pools()), nil
	case "pool":
		if len(fields) < 2 {
			return []string{StyleError.Render("usage: pool <name>")}, nil
		}
		name := fields[1]
		p, err := app.queries.PoolDetail(name)
		if err != nil {
			if errors.Is(err, engine.ErrPoolNotFound) {
				return []string{StyleError.Render(fmt.Sprintf("Pool %q not found.", name))}, nil
			}
			return []string{StyleError.Render(err.Error())}, nil
		}
		return renderPoolDetail(p), nil
	case "virtual", "virtuals":
		return renderVirtuals(app.queries.Virtuals()), nil
	case "logs":
		return renderLogs(app.queries.Logs()), nil
	case "summary":
		return renderSummary(app.host, app.queries.Summary()), nil
	case "alerts":
		return renderAlerts(app.history), nil
	case "clear":
		app.lines = nil
		return nil, nil
	case "quit", "exit":
		return []string{"Goodbye!"}, tea.Quit
	default:
		return []string{StyleDim.Render("Unknown command. Type 'help' for available commands.")}, nil
	}
}

// refreshViewport re-renders the scrollback and follows the tail.
func (app *App) refreshViewport() {
	if !app.ready {
		return
	}
	app.viewport.SetContent(strings.Join(app.lines, "\n"))
	app.viewport.GotoBottom()
}
