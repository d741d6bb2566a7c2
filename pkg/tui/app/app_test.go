package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	appsvc "tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
)

type memGateway struct {
	values map[store.Key][]byte
	theme  planner.Theme
	writes int
}

func newMemGateway() *memGateway {
	return &memGateway{values: map[store.Key][]byte{}, theme: planner.ThemeLight}
}

func (m *memGateway) Load(key store.Key) ([]byte, bool, error) {
	data, ok := m.values[key]
	return data, ok, nil
}

func (m *memGateway) Save(key store.Key, data []byte) error {
	m.writes++
	m.values[key] = data
	return nil
}

func (m *memGateway) LoadTheme() planner.Theme { return m.theme }

func (m *memGateway) SaveTheme(t planner.Theme) error {
	m.writes++
	m.theme = t
	return nil
}

func (m *memGateway) Watch(context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestModel(t *testing.T) (Model, *appsvc.Service, *memGateway) {
	t.Helper()
	gw := newMemGateway()
	svc, err := appsvc.New(gw)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.Initialize()
	return NewModel(svc), svc, gw
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("update returned %T", next)
	}
	return got
}

func TestTabNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, keyMsg("tab"))
	if m.active != TabWeekly {
		t.Fatalf("expected weekly, got %v", m.active)
	}
	m = update(t, m, keyMsg("shift+tab"))
	if m.active != TabDaily {
		t.Fatalf("expected daily, got %v", m.active)
	}
	// Wraps backwards.
	m = update(t, m, keyMsg("shift+tab"))
	if m.active != TabNotes {
		t.Fatalf("expected notes, got %v", m.active)
	}

	m = update(t, m, keyMsg("3"))
	if m.active != TabTodo {
		t.Fatalf("expected to-do, got %v", m.active)
	}
}

func TestThemeToggleKey(t *testing.T) {
	m, svc, gw := newTestModel(t)

	m = update(t, m, keyMsg("t"))
	if svc.Theme() != planner.ThemeDark {
		t.Fatalf("expected dark theme, got %q", svc.Theme())
	}
	if gw.theme != planner.ThemeDark {
		t.Fatal("expected theme persisted through the gateway")
	}

	m = update(t, m, keyMsg("t"))
	if svc.Theme() != planner.ThemeLight {
		t.Fatalf("expected light theme, got %q", svc.Theme())
	}
}

func TestEditingCapturesGlobalKeys(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m = update(t, m, keyMsg("3")) // to-do tab
	m = update(t, m, keyMsg("a")) // open the input
	m = update(t, m, keyMsg("t")) // must type, not toggle theme

	if svc.Theme() != planner.ThemeLight {
		t.Fatalf("theme toggled while typing, got %q", svc.Theme())
	}
	if m.active != TabTodo {
		t.Fatalf("tab changed while typing, got %v", m.active)
	}
}

func TestExternalThemeChange(t *testing.T) {
	m, svc, gw := newTestModel(t)

	gw.theme = planner.ThemeDark
	m = update(t, m, externalChangeMsg{key: store.KeyTheme})

	if svc.Theme() != planner.ThemeDark {
		t.Fatalf("expected dark after external change, got %q", svc.Theme())
	}
	_ = m
}

func TestExternalCollectionChange(t *testing.T) {
	m, svc, gw := newTestModel(t)

	// Another process rewrites the tasks key behind our back.
	gw.values[store.KeyTasks] = []byte(`[{"id":"7","text":"outside edit","completed":false,"priority":"High","category":"Work"}]`)
	m = update(t, m, externalChangeMsg{key: store.KeyTasks})

	got := svc.Tasks.Snapshot()
	if len(got) != 1 || got[0].Text != "outside edit" {
		t.Fatalf("expected reloaded tasks, got %+v", got)
	}
	_ = m
}

func TestExternalChangeNeverWritesBack(t *testing.T) {
	m, svc, gw := newTestModel(t)

	gw.values[store.KeyTasks] = []byte(`[{"id":"9","text":"outside edit","completed":false,"priority":"Low","category":"Personal"}]`)
	gw.theme = planner.ThemeDark
	writes := gw.writes

	// Feed the handler the same events a watch burst would deliver.
	// It must stay read-only: any write here shows up as a new watch
	// event and the session spins forever.
	for i := 0; i < 4; i++ {
		m = update(t, m, externalChangeMsg{key: store.KeyTasks})
	}
	m = update(t, m, externalChangeMsg{key: store.KeyTheme})

	if gw.writes != writes {
		t.Fatalf("external change handler wrote %d times", gw.writes-writes)
	}
	if got := svc.Tasks.Snapshot(); len(got) != 1 || got[0].Text != "outside edit" {
		t.Fatalf("expected reloaded tasks, got %+v", got)
	}
	if svc.Theme() != planner.ThemeDark {
		t.Fatalf("expected dark after external change, got %q", svc.Theme())
	}
}

func TestViewRendersTabsAndBody(t *testing.T) {
	m, svc, _ := newTestModel(t)
	svc.Events.Add(planner.EventDraft{Time: "07:30", Title: "Stretch"})
	m = update(t, m, refreshMsg{})

	view := m.View()
	for _, want := range []string{"Watermelon Planner", "Daily", "Weekly", "To-Do", "Notes", "Stretch"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
