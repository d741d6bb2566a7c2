// Package printers renders planner collections for the terminal.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/melon/pkg/planner"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	switch count {
	case 1:
		_, _ = c.Println(" - 1 entry")
	default:
		_, _ = c.Printf(" - %d entries\n", count)
	}
}

// Tasks prints the to-do list, one row per task, completed ones struck.
func (pp *PrettyPrint) Tasks(tasks []planner.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	done := color.New(color.Faint, color.CrossedOut)
	open := color.New()

	for _, t := range tasks {
		mark := "○"
		style := open
		if t.Completed {
			mark = "●"
			style = done
		}
		row := []interface{}{mark, style.Sprint(t.Text), badge(string(t.Priority)), badge(t.Category)}
		if pp.ShowID {
			row = append([]interface{}{faint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Notes prints journal notes newest first.
func (pp *PrettyPrint) Notes(notes []planner.Note) {
	if len(notes) == 0 {
		pp.none()
		return
	}

	title := color.New(color.Bold)
	date := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, n := range notes {
		if pp.ShowID {
			_, _ = fmt.Fprintf(color.Output, "%s  ", faint(n.ID))
		}
		_, _ = fmt.Fprintf(color.Output, "%s %s\n", title.Sprint(n.Title), date.Sprint(n.Date))
		if n.Content != "" {
			_, _ = fmt.Fprintf(color.Output, "  %s\n", n.Content)
		}
	}
	_, _ = fmt.Fprintln(color.Output, "")
}

// Events prints the daily schedule in time order.
func (pp *PrettyPrint) Events(events []planner.ScheduleEvent) {
	if len(events) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	clock := color.New(color.Bold)
	for _, e := range events {
		row := []interface{}{clock.Sprint(e.Time), e.Title, badge(string(e.Type))}
		if pp.ShowID {
			row = append([]interface{}{faint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func badge(s string) string {
	return color.New(color.Faint).Sprintf("[%s]", s)
}

func faint(s string) string {
	return color.New(color.FgHiYellow, color.Faint).Sprint(s)
}
