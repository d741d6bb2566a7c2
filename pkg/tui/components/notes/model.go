// Package notes renders the sticky-note board and its capture form.
package notes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	appsvc "tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/tui/theme"
)

// formBindings lives on the heap so the form's Value pointers stay
// valid while the surrounding Model is copied between updates.
type formBindings struct {
	title   string
	content string
	color   string
}

// Model is the Bubble Tea model for the notes tab.
type Model struct {
	svc *appsvc.Service

	notes  []planner.Note
	cursor int
	form   *huh.Form
	fb     *formBindings
	width  int
}

func New(svc *appsvc.Service) Model {
	m := Model{svc: svc, fb: &formBindings{}}
	m.Refresh()
	return m
}

func (m *Model) Refresh() {
	m.notes = m.svc.Notes.Snapshot()
	if m.cursor >= len(m.notes) {
		m.cursor = max(0, len(m.notes)-1)
	}
}

func (m Model) Editing() bool { return m.form != nil }

func (m *Model) SetWidth(w int) { m.width = w }

// startForm builds a fresh capture form. The palette follows the
// active theme so dark mode offers dark paper.
func (m *Model) startForm() tea.Cmd {
	colors := planner.NoteColors(m.svc.Theme())
	*m.fb = formBindings{color: colors[0]}

	opts := make([]huh.Option[string], 0, len(colors))
	for i, c := range colors {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Paper %d  %s", i+1, theme.Swatch(c)), c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Topic").
				Placeholder("Fresh Thought").
				Value(&m.fb.title),
			huh.NewText().
				Title("Thought").
				Placeholder("Let it flow...").
				Value(&m.fb.content),
			huh.NewSelect[string]().
				Title("Paper").
				Options(opts...).
				Value(&m.fb.color),
		),
	).WithShowHelp(true)
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form != nil {
		next, cmd := m.form.Update(msg)
		if f, ok := next.(*huh.Form); ok {
			m.form = f
		}
		switch m.form.State {
		case huh.StateCompleted:
			m.svc.Notes.Add(planner.NoteDraft{
				Title:   m.fb.title,
				Content: m.fb.content,
				Color:   m.fb.color,
			})
			m.form = nil
			m.Refresh()
			return m, nil
		case huh.StateAborted:
			m.form = nil
			return m, nil
		}
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "n", "a":
		return m, m.startForm()
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(len(m.notes)-1, m.cursor+1)
	case "d":
		if m.cursor < len(m.notes) {
			m.svc.Notes.Remove(m.notes[m.cursor].ID)
			m.Refresh()
		}
	}
	return m, nil
}

func (m Model) View(s theme.Styles) string {
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Seeds of Thought"))
	b.WriteString("\n\n")

	if len(m.notes) == 0 {
		b.WriteString(s.Tagline.Render("No notes yet. Press n to plant one."))
		return b.String()
	}

	cards := make([]string, 0, len(m.notes))
	for i, n := range m.notes {
		cards = append(cards, m.viewCard(s, i, n))
	}
	b.WriteString(strings.Join(cards, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Help.Render("n new · d delete"))
	return b.String()
}

func (m Model) viewCard(s theme.Styles, i int, n planner.Note) string {
	var b strings.Builder
	b.WriteString(theme.Swatch(n.Color))
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(n.Title))
	b.WriteString("  ")
	b.WriteString(s.Muted.Render(n.Date))
	if n.Content != "" {
		b.WriteString("\n")
		b.WriteString(s.Item.Render(n.Content))
	}
	card := s.Card.Render(b.String())
	if i == m.cursor {
		return s.Today.Render(b.String())
	}
	return card
}
