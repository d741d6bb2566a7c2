package todo

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	appsvc "tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
	"tableflip.dev/melon/pkg/tui/theme"
)

type memGateway struct {
	values map[store.Key][]byte
	theme  planner.Theme
}

func newMemGateway() *memGateway {
	return &memGateway{values: map[store.Key][]byte{}, theme: planner.ThemeLight}
}

func (m *memGateway) Load(key store.Key) ([]byte, bool, error) {
	data, ok := m.values[key]
	return data, ok, nil
}

func (m *memGateway) Save(key store.Key, data []byte) error {
	m.values[key] = data
	return nil
}

func (m *memGateway) LoadTheme() planner.Theme { return m.theme }

func (m *memGateway) SaveTheme(t planner.Theme) error {
	m.theme = t
	return nil
}

func (m *memGateway) Watch(context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestModel(t *testing.T) (Model, *appsvc.Service) {
	t.Helper()
	svc, err := appsvc.New(newMemGateway())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.Initialize()
	return New(svc), svc
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestAddTaskThroughInput(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(m, "a")
	if !m.Editing() {
		t.Fatal("expected input focus after a")
	}
	m = typeText(m, "Water the plants")
	m = press(m, "enter")

	if m.Editing() {
		t.Fatal("expected input to close after enter")
	}
	got := svc.Tasks.Snapshot()
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got[0].Text != "Water the plants" {
		t.Errorf("unexpected text %q", got[0].Text)
	}
	if got[0].Priority != planner.PriorityMedium {
		t.Errorf("expected default priority, got %q", got[0].Priority)
	}
}

func TestEscCancelsAdd(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(m, "a")
	m = typeText(m, "never saved")
	m = press(m, "esc")

	if m.Editing() {
		t.Fatal("expected input to close after esc")
	}
	if svc.Tasks.Len() != 0 {
		t.Fatalf("expected no tasks, got %d", svc.Tasks.Len())
	}
}

func TestBlankSubmitIsNoOp(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(m, "a", "enter")

	if svc.Tasks.Len() != 0 {
		t.Fatalf("expected no tasks, got %d", svc.Tasks.Len())
	}
	_ = m
}

func TestSpaceTogglesSelected(t *testing.T) {
	m, svc := newTestModel(t)
	svc.Tasks.Add(planner.TaskDraft{Text: "Buy milk"})
	m.Refresh()

	m = press(m, " ")
	if got := svc.Tasks.Snapshot(); !got[0].Completed {
		t.Fatal("expected task completed after space")
	}
	m = press(m, " ")
	if got := svc.Tasks.Snapshot(); got[0].Completed {
		t.Fatal("expected task pending after second space")
	}
}

func TestDeleteSelected(t *testing.T) {
	m, svc := newTestModel(t)
	svc.Tasks.Add(planner.TaskDraft{Text: "old news"})
	m.Refresh()

	press(m, "d")
	if svc.Tasks.Len() != 0 {
		t.Fatalf("expected empty store, got %d", svc.Tasks.Len())
	}
}

func TestCategoryFilterCycle(t *testing.T) {
	m, svc := newTestModel(t)
	svc.Tasks.Add(planner.TaskDraft{Text: "ship release", Category: "Work"})
	svc.Tasks.Add(planner.TaskDraft{Text: "call mom", Category: "Personal"})
	m.Refresh()

	if len(m.tasks) != 2 {
		t.Fatalf("All filter: expected 2 tasks, got %d", len(m.tasks))
	}

	// First press lands on Personal.
	m = press(m, "c")
	if len(m.tasks) != 1 || m.tasks[0].Category != "Personal" {
		t.Fatalf("Personal filter: got %+v", m.tasks)
	}

	// Second press lands on Work.
	m = press(m, "c")
	if len(m.tasks) != 1 || m.tasks[0].Category != "Work" {
		t.Fatalf("Work filter: got %+v", m.tasks)
	}
}

func TestViewShowsStats(t *testing.T) {
	m, svc := newTestModel(t)
	svc.Tasks.Add(planner.TaskDraft{Text: "done thing"})
	done := svc.Tasks.Snapshot()[0].ID
	svc.Tasks.ToggleCompleted(done)
	svc.Tasks.Add(planner.TaskDraft{Text: "open thing"})
	m.Refresh()

	view := m.View(theme.New(planner.ThemeLight))
	for _, want := range []string{"Goal Garden", "open thing", "done thing", "50%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
