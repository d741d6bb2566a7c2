// Package app hosts the root Bubble Tea program for the planner UI.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appsvc "tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
	"tableflip.dev/melon/pkg/tui/components/daily"
	"tableflip.dev/melon/pkg/tui/components/notes"
	"tableflip.dev/melon/pkg/tui/components/todo"
	"tableflip.dev/melon/pkg/tui/components/weekly"
	"tableflip.dev/melon/pkg/tui/theme"
)

// Tab identifies one of the four planner views.
type Tab int

const (
	TabDaily Tab = iota
	TabWeekly
	TabTodo
	TabNotes
)

var tabNames = [...]string{"Daily", "Weekly", "To-Do", "Notes"}

// refreshMsg asks every tab to re-read its store snapshot. It is sent
// by store subscriptions after a mutation lands.
type refreshMsg struct{}

// externalChangeMsg reports that another process rewrote a key on
// disk, observed through the storage watch.
type externalChangeMsg struct {
	key store.Key
}

// Model is the root program model: the tab bar plus the four tabs.
type Model struct {
	svc    *appsvc.Service
	styles theme.Styles

	active Tab
	daily  daily.Model
	weekly weekly.Model
	todo   todo.Model
	notes  notes.Model

	width  int
	height int
}

// NewModel builds the root model over an initialized service.
func NewModel(svc *appsvc.Service) Model {
	return Model{
		svc:    svc,
		styles: theme.New(svc.Theme()),
		daily:  daily.New(svc),
		weekly: weekly.New(svc),
		todo:   todo.New(svc),
		notes:  notes.New(svc),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.daily.SetWidth(msg.Width)
		m.weekly.SetWidth(msg.Width)
		m.todo.SetWidth(msg.Width)
		m.notes.SetWidth(msg.Width)
		return m, nil

	case refreshMsg:
		m.refreshAll()
		return m, nil

	case externalChangeMsg:
		m.applyExternal(msg.key)
		return m, nil

	case tea.KeyMsg:
		// A focused input or open form owns the keyboard.
		if m.editing() {
			return m.route(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right":
			m.active = (m.active + 1) % Tab(len(tabNames))
			return m, nil
		case "shift+tab", "left":
			m.active = (m.active + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		case "1", "2", "3", "4":
			m.active = Tab(msg.String()[0] - '1')
			return m, nil
		case "t":
			m.svc.ToggleTheme()
			m.styles = theme.New(m.svc.Theme())
			return m, nil
		}
		return m.route(msg)
	}
	return m.route(msg)
}

func (m Model) editing() bool {
	switch m.active {
	case TabDaily:
		return m.daily.Editing()
	case TabTodo:
		return m.todo.Editing()
	case TabNotes:
		return m.notes.Editing()
	}
	return false
}

// route hands a message to the active tab only.
func (m Model) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case TabDaily:
		m.daily, cmd = m.daily.Update(msg)
	case TabWeekly:
		m.weekly, cmd = m.weekly.Update(msg)
	case TabTodo:
		m.todo, cmd = m.todo.Update(msg)
	case TabNotes:
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

func (m *Model) refreshAll() {
	m.daily.Refresh()
	m.weekly.Refresh()
	m.todo.Refresh()
	m.notes.Refresh()
}

// applyExternal reloads whatever another writer touched. Collections
// are re-read from disk wholesale; the in-memory copy is stale by
// definition once the watch fires. Reads only: writing here would be
// picked up by the watch again and loop forever.
func (m *Model) applyExternal(key store.Key) {
	switch key {
	case store.KeyTasks:
		m.svc.Tasks.Reload()
	case store.KeyNotes:
		m.svc.Notes.Reload()
	case store.KeyEvents:
		m.svc.Events.Reload()
	case store.KeyTheme:
		m.styles = theme.New(m.svc.ReloadTheme())
	}
	m.refreshAll()
}

func (m Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("🍉 Watermelon Planner"),
		m.styles.Tagline.Render(time.Now().Format("Monday, January 2, 2006")+"  ·  stay juicy"),
	)

	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.active {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}

	var body string
	switch m.active {
	case TabDaily:
		body = m.daily.View(m.styles)
	case TabWeekly:
		body = m.weekly.View(m.styles)
	case TabTodo:
		body = m.todo.View(m.styles)
	case TabNotes:
		body = m.notes.View(m.styles)
	}

	help := ""
	if !m.editing() {
		help = m.styles.Help.Render("tab/1-4 switch · t theme · q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		body,
		"",
		help,
	)
}

// Run starts the program and bridges store notifications and the
// storage watch into Bubble Tea messages.
func Run(svc *appsvc.Service) error {
	p := tea.NewProgram(NewModel(svc), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store notifications fire synchronously inside Update, so hop to
	// a fresh goroutine before calling Send or the loop deadlocks.
	cancels := []func(){
		svc.Tasks.Subscribe(func([]planner.Task) { go p.Send(refreshMsg{}) }),
		svc.Notes.Subscribe(func([]planner.Note) { go p.Send(refreshMsg{}) }),
		svc.Events.Subscribe(func([]planner.ScheduleEvent) { go p.Send(refreshMsg{}) }),
	}
	defer func() {
		for _, c := range cancels {
			c()
		}
	}()

	if events, err := svc.Watch(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "melon: storage watch unavailable: %v\n", err)
	} else {
		go func() {
			for ev := range events {
				p.Send(externalChangeMsg{key: ev.Key})
			}
		}()
	}

	_, err := p.Run()
	return err
}
