// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures flags for creating tasks.
type TaskOptions struct {
	Priority string
	Category string
}

// AddTaskArgs wires task-related flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "Medium",
		"Task priority: Low, Medium, or High.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Task category, defaults to Personal.")
}

// NoteOptions captures flags for creating notes.
type NoteOptions struct {
	Content string
	Color   string
}

// AddNoteArgs wires note-related flags on the provided command.
func AddNoteArgs(cmd *cobra.Command, o *NoteOptions) {
	cmd.Flags().StringVar(&o.Content, "content", "",
		"Note body text.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		"Note color token, defaults to the first palette entry.")
}

// EventOptions captures flags for creating schedule events.
type EventOptions struct {
	Time string
	Type string
}

// AddEventArgs wires event-related flags on the provided command.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Time, "time", "t", "09:00",
		`Event time of day in 24-hour HH:MM form, example: --time="14:30".`)
	cmd.Flags().StringVar(&o.Type, "type", "",
		"Event type: Work, Personal, Health, or Social.")
}

// FilterOptions captures read-side filter flags.
type FilterOptions struct {
	Category string
	Pending  bool
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Only show tasks in this category.")
	cmd.Flags().BoolVar(&o.Pending, "pending", false,
		"Only show tasks that are not completed.")
}

// IDOptions toggles record id display.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the id display flag on the provided command.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show record ids; needed for toggle and remove.")
}
