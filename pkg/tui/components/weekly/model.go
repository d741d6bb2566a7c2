// Package weekly renders the read-only seven day overview.
package weekly

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appsvc "tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/tui/theme"
)

// Model is the Bubble Tea model for the weekly tab. It is a projection
// of the schedule and task stores and takes no input of its own.
type Model struct {
	svc *appsvc.Service

	events  []planner.ScheduleEvent
	pending int
	width   int
}

func New(svc *appsvc.Service) Model {
	m := Model{svc: svc}
	m.Refresh()
	return m
}

func (m *Model) Refresh() {
	m.events = m.svc.Events.Snapshot()
	m.pending = len(m.svc.Tasks.FilterByCompletion(false))
}

func (m Model) Editing() bool { return false }

func (m *Model) SetWidth(w int) { m.width = w }

func (m Model) Update(tea.Msg) (Model, tea.Cmd) { return m, nil }

func (m Model) View(s theme.Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("The Week Ahead"))
	b.WriteString("\n\n")

	now := time.Now()
	// Week starts on Monday.
	start := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))

	cols := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		cols = append(cols, m.viewDay(s, day, sameDay(day, now)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	return b.String()
}

func (m Model) viewDay(s theme.Styles, day time.Time, today bool) string {
	var b strings.Builder
	b.WriteString(s.Muted.Render(day.Format("Mon")))
	b.WriteString("\n")
	b.WriteString(s.Stat.Render(fmt.Sprintf("%d", day.Day())))
	b.WriteString("\n")

	if today {
		for i, e := range m.events {
			if i == 3 {
				b.WriteString(s.Muted.Render(fmt.Sprintf("+%d more", len(m.events)-3)))
				break
			}
			b.WriteString(s.Clock.Render(e.Time))
			b.WriteString(" ")
			b.WriteString(s.Item.Render(truncate(e.Title, 10)))
			b.WriteString("\n")
		}
		if m.pending > 0 {
			b.WriteString(s.Accent.Render(fmt.Sprintf("+%d items", m.pending)))
		}
		return s.Today.Render(b.String())
	}
	b.WriteString(s.Muted.Render("—"))
	return s.Card.Render(b.String())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
