package planner

import (
	"strings"
	"time"
)

// PlaceholderTitle replaces an empty note title at creation.
const PlaceholderTitle = "Fresh Thought"

const noteDateLayout = "January 2, 2006"

// Note palettes, one token set per theme. A note keeps the color it was
// created with even after the theme flips.
var (
	LightNoteColors = []string{"#F4F9F4", "#B5D6B2", "#F9E6E8", "#F2C1C6", "#D6F2D6"}
	DarkNoteColors  = []string{"#1B261B", "#2D3D2D", "#3D1B20", "#1A241A", "#0E140E"}
)

// NoteColors returns the palette for the given theme.
func NoteColors(theme Theme) []string {
	if theme == ThemeDark {
		return DarkNoteColors
	}
	return LightNoteColors
}

// Note is a freeform journal entry. All fields are immutable after creation.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Color   string `json:"color"`
}

// NoteDraft is user input destined to become a Note.
type NoteDraft struct {
	Title   string
	Content string
	Color   string
}

// NewNote validates a draft and mints the record. A note needs a title or
// content; drafts with neither are dropped (ok=false). An empty title
// falls back to PlaceholderTitle, an empty color to the first light token.
func NewNote(d NoteDraft) (Note, bool) {
	if d.Title == "" && d.Content == "" {
		return Note{}, false
	}
	n := Note{
		ID:      NewID(),
		Title:   d.Title,
		Content: d.Content,
		Date:    time.Now().Format(noteDateLayout),
		Color:   d.Color,
	}
	if n.Title == "" {
		n.Title = PlaceholderTitle
	}
	if strings.TrimSpace(n.Color) == "" {
		n.Color = LightNoteColors[0]
	}
	return n, true
}
