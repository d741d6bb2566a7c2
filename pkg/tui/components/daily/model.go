// Package daily renders the Daily tab: the day's schedule plus top goals.
package daily

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appsvc "tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/tui/theme"
)

const topGoalCount = 3

// Model is the Bubble Tea model for the daily tab.
type Model struct {
	svc *appsvc.Service

	events []planner.ScheduleEvent
	cursor int
	adding bool
	focus  int // 0 = time field, 1 = title field
	timeIn textinput.Model
	title  textinput.Model
	width  int
}

func New(svc *appsvc.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "09:00"
	ti.CharLimit = 5
	ti.Width = 7

	title := textinput.New()
	title.Placeholder = "What's happening?"
	title.CharLimit = 80

	m := Model{svc: svc, timeIn: ti, title: title}
	m.Refresh()
	return m
}

// Refresh re-reads the event snapshot; the store keeps it clock-ordered.
func (m *Model) Refresh() {
	m.events = m.svc.Events.Snapshot()
	if m.cursor >= len(m.events) {
		m.cursor = max(0, len(m.events)-1)
	}
}

func (m Model) Editing() bool { return m.adding }

func (m *Model) SetWidth(w int) {
	m.width = w
	m.title.Width = max(20, w/2)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		switch key.String() {
		case "enter":
			draft := planner.EventDraft{
				Time:  m.timeIn.Value(),
				Title: m.title.Value(),
			}
			m.svc.Events.Add(draft)
			m.resetForm()
			m.Refresh()
			return m, nil
		case "esc":
			m.resetForm()
			return m, nil
		case "tab", "shift+tab":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.title.Blur()
				return m, m.timeIn.Focus()
			}
			m.timeIn.Blur()
			return m, m.title.Focus()
		}
		var cmd tea.Cmd
		if m.focus == 0 {
			m.timeIn, cmd = m.timeIn.Update(msg)
		} else {
			m.title, cmd = m.title.Update(msg)
		}
		return m, cmd
	}

	switch key.String() {
	case "a":
		m.adding = true
		m.focus = 0
		return m, m.timeIn.Focus()
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(len(m.events)-1, m.cursor+1)
	case "d":
		if m.cursor < len(m.events) {
			m.svc.Events.Remove(m.events[m.cursor].ID)
			m.Refresh()
		}
	}
	return m, nil
}

func (m *Model) resetForm() {
	m.timeIn.SetValue("")
	m.title.SetValue("")
	m.timeIn.Blur()
	m.title.Blur()
	m.adding = false
	m.focus = 0
}

func (m Model) View(s theme.Styles) string {
	left := m.viewSchedule(s)
	right := m.viewSidebar(s)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

func (m Model) viewSchedule(s theme.Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Today's Rhythm"))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(m.timeIn.View())
		b.WriteString("  ")
		b.WriteString(m.title.View())
		b.WriteString("\n")
		b.WriteString(s.Help.Render("tab switch field · enter save · esc cancel"))
		b.WriteString("\n\n")
	}

	if len(m.events) == 0 {
		b.WriteString(s.Tagline.Render("A blank day. Plant something."))
		b.WriteString("\n")
	}
	for i, e := range m.events {
		line := fmt.Sprintf("%s  %s %s",
			s.Clock.Render(e.Time), e.Title,
			s.Badge.Render(string(e.Type)))
		if i == m.cursor && !m.adding {
			line = s.Selected.Render(line)
		} else {
			line = s.Item.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !m.adding {
		b.WriteString("\n")
		b.WriteString(s.Help.Render("a add · d delete"))
	}
	return s.Panel.Render(b.String())
}

func (m Model) viewSidebar(s theme.Styles) string {
	var b strings.Builder
	b.WriteString(s.Accent.Render(time.Now().Format("Monday, January 2")))
	b.WriteString("\n\n")
	b.WriteString(s.Title.Render("Top Goals"))
	b.WriteString("\n")

	pending := m.svc.Tasks.FilterByCompletion(false)
	if len(pending) == 0 {
		b.WriteString(s.Muted.Render("Nothing pending. Enjoy the sun."))
	}
	for i, t := range pending {
		if i == topGoalCount {
			break
		}
		b.WriteString(s.Item.Render("○ " + t.Text))
		b.WriteString("\n")
	}
	return s.Panel.Render(b.String())
}
