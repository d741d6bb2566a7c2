// Package todo renders the Goal Garden tab: the categorized to-do list.
package todo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appsvc "tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/tui/theme"
)

// Model is the Bubble Tea model for the to-do tab.
type Model struct {
	svc *appsvc.Service

	tasks      []planner.Task
	categories []string
	category   int // index into categories, 0 is "All"
	priority   int // index into planner.Priorities() for new tasks
	cursor     int
	adding     bool
	input      textinput.Model
	width      int
}

// New builds the tab against the shared service.
func New(svc *appsvc.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Sow a new goal..."
	ti.CharLimit = 120

	m := Model{
		svc:        svc,
		categories: append([]string{"All"}, planner.Categories()...),
		priority:   1, // Medium
		input:      ti,
	}
	m.Refresh()
	return m
}

// Refresh re-reads the store snapshot through the active category filter.
func (m *Model) Refresh() {
	m.tasks = m.svc.Tasks.FilterByCategory(m.categories[m.category])
	if m.cursor >= len(m.tasks) {
		m.cursor = max(0, len(m.tasks)-1)
	}
}

// Editing reports whether the tab is capturing raw key input.
func (m Model) Editing() bool { return m.adding }

// SetWidth updates layout bounds.
func (m *Model) SetWidth(w int) {
	m.width = w
	m.input.Width = max(20, w-8)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		switch key.String() {
		case "enter":
			draft := planner.TaskDraft{
				Text:     m.input.Value(),
				Priority: planner.Priorities()[m.priority],
				Category: m.draftCategory(),
			}
			m.svc.Tasks.Add(draft)
			m.input.SetValue("")
			m.input.Blur()
			m.adding = false
			m.Refresh()
			return m, nil
		case "esc":
			m.input.SetValue("")
			m.input.Blur()
			m.adding = false
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "a":
		m.adding = true
		return m, m.input.Focus()
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(len(m.tasks)-1, m.cursor+1)
	case "c":
		m.category = (m.category + 1) % len(m.categories)
		m.cursor = 0
		m.Refresh()
	case "p":
		m.priority = (m.priority + 1) % len(planner.Priorities())
	case " ", "x", "enter":
		if m.cursor < len(m.tasks) {
			m.svc.Tasks.ToggleCompleted(m.tasks[m.cursor].ID)
			m.Refresh()
		}
	case "d":
		if m.cursor < len(m.tasks) {
			m.svc.Tasks.Remove(m.tasks[m.cursor].ID)
			m.Refresh()
		}
	}
	return m, nil
}

// draftCategory maps the "All" filter to the default category, matching
// the category the new task would be filed under.
func (m Model) draftCategory() string {
	if m.category == 0 {
		return ""
	}
	return m.categories[m.category]
}

func (m Model) View(s theme.Styles) string {
	var b strings.Builder

	b.WriteString(s.Title.Render("Goal Garden"))
	b.WriteString("  ")
	b.WriteString(m.viewCategories(s))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(s.Accent.Render(fmt.Sprintf("priority: %s", planner.Priorities()[m.priority])))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(s.Help.Render("enter save · esc cancel"))
		b.WriteString("\n\n")
	}

	if len(m.tasks) == 0 {
		b.WriteString(s.Tagline.Render("Your garden is waiting for seeds."))
		b.WriteString("\n")
	}
	for i, t := range m.tasks {
		b.WriteString(m.viewTask(s, i, t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewStats(s))
	if !m.adding {
		b.WriteString("\n")
		b.WriteString(s.Help.Render("a add · space toggle · d delete · c category · p priority"))
	}
	return b.String()
}

func (m Model) viewCategories(s theme.Styles) string {
	pills := make([]string, 0, len(m.categories))
	for i, cat := range m.categories {
		if i == m.category {
			pills = append(pills, s.Accent.Render("["+cat+"]"))
		} else {
			pills = append(pills, s.Muted.Render(cat))
		}
	}
	return strings.Join(pills, " ")
}

func (m Model) viewTask(s theme.Styles, i int, t planner.Task) string {
	mark := "○"
	style := s.Item
	if t.Completed {
		mark = "●"
		style = s.Done
	}
	line := fmt.Sprintf("%s %s %s", mark, t.Text,
		s.Badge.Render(fmt.Sprintf("[%s] %s", t.Priority, t.Category)))
	if i == m.cursor {
		return s.Selected.Render(line)
	}
	return style.Render(line)
}

func (m Model) viewStats(s theme.Styles) string {
	all := m.svc.Tasks.Snapshot()
	done := len(m.svc.Tasks.FilterByCompletion(true))
	active := len(all) - done
	momentum := 0
	if len(all) > 0 {
		momentum = done * 100 / len(all)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Stat.Render(fmt.Sprintf("%d", active))+s.Muted.Render(" active  "),
		s.Stat.Render(fmt.Sprintf("%d", done))+s.Muted.Render(" harvested  "),
		s.Stat.Render(fmt.Sprintf("%d%%", momentum))+s.Muted.Render(" momentum"),
	)
}
