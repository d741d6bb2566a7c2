package daily

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
}

func (m *memGateway) Load(key store.Key) ([]byte, bool, error) {
	data, ok := m.values[key]
	return data, ok, nil
}

func (m *memGateway) Save(key store.Key, data []byte) error {
	m.values[key] = data
	return nil
}

func (m *memGateway) LoadTheme() planner.Theme { return planner.ThemeLight }

func (m *memGateway) SaveTheme(planner.Theme) error { return nil }

func (m *memGateway) Watch(context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestModel(t *testing.T) (Model, *appsvc.Service) {
	t.Helper()
	svc, err := appsvc.New(&memGateway{values: map[store.Key][]byte{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.Initialize()
	return New(svc), svc
}

func press(m Model, key tea.KeyMsg) Model {
	m, _ = m.Update(key)
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestAddEventKeepsScheduleSorted(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m = typeText(m, "07:00")
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "Sunrise walk")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Editing() {
		t.Fatal("expected form to close after enter")
	}
	got := svc.Events.Snapshot()
	if len(got) != 4 {
		t.Fatalf("expected 4 events (3 seeds + 1), got %d", len(got))
	}
	if got[0].Time != "07:00" || got[0].Title != "Sunrise walk" {
		t.Fatalf("expected new event first, got %+v", got[0])
	}
}

func TestBadTimeIsDroppedSilently(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m = typeText(m, "9:00") // not zero padded
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "Sloppy entry")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := svc.Events.Len(); got != 3 {
		t.Fatalf("expected only the 3 seeds, got %d", got)
	}
	_ = m
}

func TestDeleteSelectedEvent(t *testing.T) {
	m, svc := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	got := svc.Events.Snapshot()
	if len(got) != 2 {
		t.Fatalf("expected 2 events after delete, got %d", len(got))
	}
	if got[0].Time != "10:30" {
		t.Fatalf("expected the 08:00 seed gone, got %+v", got)
	}
	_ = m
}

func TestSidebarShowsAtMostThreeGoals(t *testing.T) {
	m, svc := newTestModel(t)
	for _, text := range []string{"one", "two", "three", "four"} {
		svc.Tasks.Add(planner.TaskDraft{Text: text})
	}
	m.Refresh()

	view := m.View(theme.New(planner.ThemeLight))
	if !strings.Contains(view, "Top Goals") {
		t.Fatal("view missing the Top Goals sidebar")
	}
	// Most recent three pending tasks; the oldest add overflows.
	for _, want := range []string{"four", "three", "two"} {
		if !strings.Contains(view, want) {
			t.Errorf("sidebar missing %q", want)
		}
	}
	if strings.Contains(view, "○ one") {
		t.Error("sidebar shows more than three goals")
	}
}
