package tui

import (
	"fmt"

	"github.com/dm/f5mon/internal/format"
	"github.com/dm/f5mon/internal/model"
)

// helpLines lists the available console commands.
var helpLines = []string{
	StyleTitle.Render("Available commands:"),
	"  help         - show this help",
	"  status       - show overall appliance status",
	"  pools        - list all pools and member states",
	"  pool <name>  - show detailed info for one pool",
	"  virtuals     - show virtual servers",
	"  logs         - show recent system log entries",
	"  summary      - show health summary",
	"  alerts       - show recent state transitions",
	"  clear        - clear the scrollback",
	"  quit         - exit the console",
}

// renderStatus renders the `status` result.
func renderStatus(host string, r model.StatusReport) []string {
	lines := []string{StyleTitle.Render(fmt.Sprintf("Status for %s:", host))}

	if r.Connection.Connected {
		lines = append(lines, "  Connected:    yes")
	} else if r.Connection.LastError != nil {
		lines = append(lines, StyleError.Render(
			fmt.Sprintf("  Connected:    no (%v)", r.Connection.LastError)))
	} else {
		lines = append(lines, StyleDim.Render("  Connected:    not yet"))
	}

	lines = append(lines,
		"  Last updated: "+format.FormatTime(r.Connection.LastUpdated),
		fmt.Sprintf("  Pool members: %d total, %d up, %d down",
			r.MembersTotal, r.MembersUp, r.MembersDown),
	)
	return lines
}

// renderPools renders the `pools` result: every pool with its member list.
func renderPools(pools []model.Pool) []string {
	if len(pools) == 0 {
		return []string{StyleDim.Render("No pool data available.")}
	}

	lines := []string{StyleTitle.Render("Pool Status:")}
	for _, p := range pools {
		lines = append(lines, fmt.Sprintf("  %s: %d/%d members up", p.Name, p.UpCount(), len(p.Members)))
		for _, m := range p.Members {
			icon := StateStyle(m.State).Render(format.StateIcon(m.State))
			lines = append(lines, fmt.Sprintf("    %s %s (%s) - %s", icon, m.Name, m.Address, m.State))
		}
	}
	return lines
}

// renderPoolDetail renders the `pool <name>` result.
func renderPoolDetail(p model.Pool) []string {
	lines := []string{StyleTitle.Render(fmt.Sprintf("Pool %q details:", p.Name))}
	if len(p.Members) == 0 {
		return append(lines, StyleDim.Render("  (no members)"))
	}
	for _, m := range p.Members {
		lines = append(lines,
			"  Member: "+m.Name,
			"    Address:          "+m.Address,
			"    State:            "+StateStyle(m.State).Render(string(m.State)),
			"    Session enabled:  "+format.YesNo(m.SessionEnabled),
			"    Connection limit: "+format.FormatConnLimit(m.ConnectionLimit),
		)
	}
	return lines
}

// renderVirtuals renders the `virtuals` result.
func renderVirtuals(virtuals []model.VirtualServer) []string {
	if len(virtuals) == 0 {
		return []string{StyleDim.Render("No virtual servers found.")}
	}

	lines := []string{StyleTitle.Render("Virtual Servers:")}
	for _, v := range virtuals {
		var icon string
		if v.Enabled {
			icon = StyleGreen.Render(format.EnabledIcon(true))
		} else {
			icon = StyleRed.Render(format.EnabledIcon(false))
		}
		pool := v.Pool
		if pool == "" {
			pool = "none"
		}
		lines = append(lines,
			fmt.Sprintf("  %s %s", icon, v.Name),
			"    Destination: "+v.Destination,
			"    Pool:        "+pool,
			"    Enabled:     "+format.YesNo(v.Enabled),
		)
	}
	return lines
}

// renderLogs renders the `logs` result.
func renderLogs(entries []string) []string {
	if len(entries) == 0 {
		return []string{StyleDim.Render("No log data available.")}
	}

	lines := []string{StyleTitle.Render(fmt.Sprintf("Recent system logs (%d entries):", len(entries)))}
	for _, e := range entries {
		lines = append(lines, "  "+e)
	}
	return lines
}

// renderSummary renders the `summary` result.
func renderSummary(host string, s model.HealthSummary) []string {
	lines := []string{
		StyleTitle.Render(fmt.Sprintf("Health Summary for %s:", host)),
		"  Overall health:  " + format.FormatPercent(s.HealthPercent),
		fmt.Sprintf("  Pool members:    %d/%d operational", s.MembersUp, s.MembersTotal),
	}

	if len(s.Down) > 0 {
		lines = append(lines, StyleRed.Render("  Members DOWN:"))
		for _, d := range s.Down {
			lines = append(lines, StyleRed.Render(
				fmt.Sprintf("    ✗ %s/%s (%s)", d.Pool, d.Member, d.Address)))
		}
	}

	lines = append(lines,
		fmt.Sprintf("  Virtual servers: %d/%d enabled", s.VirtualsEnabled, s.VirtualsTotal),
		"  Last check:      "+format.FormatTime(s.LastChecked),
	)
	return lines
}

// renderAlerts renders the `alerts` result from the delivered-transition
// history.
func renderAlerts(history *model.TransitionHistory) []string {
	if history.Len() == 0 {
		return []string{StyleDim.Render("No state transitions observed yet.")}
	}

	lines := []string{StyleTitle.Render("Recent state transitions:")}
	for _, t := range history.Recent(0) {
		lines = append(lines, "  "+alertLine(t))
	}
	return lines
}

// alertLine renders one transition as a timestamped alert.
func alertLine(t model.Transition) string {
	return StyleAlert.Render(
		fmt.Sprintf("[%s] STATE CHANGE: %s", format.FormatTime(t.DetectedAt), t))
}
