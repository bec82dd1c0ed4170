package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/dhu/internal/portal"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func RenderAttendance(w io.Writer, list []portal.Attendance) {
	for _, a := range list {
		t := newTable(w, fmt.Sprintf("%s %s (%s)", strings.TrimSpace(a.Code), a.Title, a.Rate))
		t.AppendHeader(table.Row{"#", "Date", "Status"})
		for i, r := range a.Records {
			t.AppendRow(table.Row{i + 1, r.Date, r.Status})
		}
		t.Render()
	}
}

func RenderGPA(w io.Writer, g portal.GPA) {
	t := newTable(w, "GPA "+g.GPA)
	t.AppendHeader(table.Row{"Category", "Title", "Teacher", "Credit", "Grade", "Score", "Year"})
	for _, c := range g.Grades {
		t.AppendRow(table.Row{c.Category, c.Title, c.Teacher, c.Credit, c.Grade, c.Score, c.Year})
	}
	t.Render()
}

type TaskFilter struct {
	ShowDone  bool
	ShowEmpty bool
}

func RenderTasks(w io.Writer, courses []portal.CourseTasks, f TaskFilter) {
	for _, c := range courses {
		var rows []table.Row
		for _, task := range c.Tasks {
			if task.Done() && !f.ShowDone {
				continue
			}
			rows = append(rows, table.Row{task.Title, task.Kind, task.Status, task.Deadline})
		}
		if len(rows) == 0 && !f.ShowEmpty {
			continue
		}

		t := newTable(w, c.Course)
		t.AppendHeader(table.Row{"Task", "Kind", "Status", "Deadline"})
		t.AppendRows(rows)
		t.Render()
	}
}

func RenderMaterials(w io.Writer, courses []portal.CourseMaterials) {
	for _, c := range courses {
		t := newTable(w, c.Course)
		t.AppendHeader(table.Row{"Material", "Date", "Files"})
		for _, m := range c.Materials {
			names := make([]string, 0, len(m.Attachments))
			for _, a := range m.Attachments {
				names = append(names, a.Name)
			}
			t.AppendRow(table.Row{m.Title, m.Date, strings.Join(names, "\n")})
		}
		t.Render()
	}
}

// RenderJSON prints v indented, the output of `info`.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
