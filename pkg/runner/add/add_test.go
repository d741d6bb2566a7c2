package add

import (
	"context"
	"testing"

	"tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
)

type memGateway struct {
	values map[store.Key][]byte
	theme  planner.Theme
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

func newTestService(t *testing.T, theme planner.Theme) *app.Service {
	t.Helper()
	svc, err := app.New(&memGateway{values: map[store.Key][]byte{}, theme: theme})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.Initialize()
	return svc
}

func TestAddNoteDefaultColorFollowsTheme(t *testing.T) {
	svc := newTestService(t, planner.ThemeDark)

	n := Note{Service: svc, Title: "Night thought"}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("add note: %v", err)
	}

	got := svc.Notes.Snapshot()
	if len(got) != 1 {
		t.Fatalf("expected 1 note, got %d", len(got))
	}
	if got[0].Color != planner.DarkNoteColors[0] {
		t.Errorf("expected dark palette default %q, got %q", planner.DarkNoteColors[0], got[0].Color)
	}
}

func TestAddNoteExplicitColorWins(t *testing.T) {
	svc := newTestService(t, planner.ThemeDark)

	n := Note{Service: svc, Title: "Pinned", Color: planner.LightNoteColors[2]}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("add note: %v", err)
	}

	if got := svc.Notes.Snapshot()[0].Color; got != planner.LightNoteColors[2] {
		t.Errorf("expected the chosen color kept, got %q", got)
	}
}

func TestAddTaskRejectsBlankText(t *testing.T) {
	svc := newTestService(t, planner.ThemeLight)

	s := Task{Service: svc, Text: "   "}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected an error for blank task text")
	}
	if svc.Tasks.Len() != 0 {
		t.Fatalf("expected no tasks, got %d", svc.Tasks.Len())
	}
}
