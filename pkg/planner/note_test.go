package planner

import "testing"

func TestNewNotePlaceholderTitle(t *testing.T) {
	n, ok := NewNote(NoteDraft{Content: "hello"})
	if !ok {
		t.Fatalf("expected draft with content to be accepted")
	}
	if n.Title != PlaceholderTitle {
		t.Fatalf("expected placeholder title %q, got %q", PlaceholderTitle, n.Title)
	}
	if n.Date == "" {
		t.Fatalf("expected a creation date")
	}
}

func TestNewNoteRejectsEmptyDraft(t *testing.T) {
	if _, ok := NewNote(NoteDraft{}); ok {
		t.Fatalf("expected draft without title or content to be rejected")
	}
}

func TestNewNoteTitleOnly(t *testing.T) {
	n, ok := NewNote(NoteDraft{Title: "Groceries"})
	if !ok {
		t.Fatalf("expected title-only draft to be accepted")
	}
	if n.Title != "Groceries" || n.Content != "" {
		t.Fatalf("unexpected note %+v", n)
	}
}

func TestNoteColorsPerTheme(t *testing.T) {
	if got := NoteColors(ThemeDark)[0]; got != DarkNoteColors[0] {
		t.Fatalf("dark palette expected, got %q", got)
	}
	if got := NoteColors(ThemeLight)[0]; got != LightNoteColors[0] {
		t.Fatalf("light palette expected, got %q", got)
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Fatalf("toggle must flip between light and dark")
	}
	if ParseTheme("DARK") != ThemeDark {
		t.Fatalf("parse should be case-insensitive")
	}
	if ParseTheme("sepia") != ThemeLight {
		t.Fatalf("unknown themes degrade to light")
	}
}
