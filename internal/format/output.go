package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"inkwell-cli/internal/model"
)

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - table (human-readable; falls back to JSON for unknown shapes)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "table":
		return WriteTable(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands, one value per line
// unless pretty-printing is requested.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteTable(w io.Writer, v any, pretty bool) error {
	switch t := v.(type) {
	case []model.Note:
		return writeRows(w, []string{"ID", "TITLE", "PINNED", "CATEGORY", "TAGS"}, noteRows(t))
	case []model.Task:
		return writeRows(w, []string{"ID", "TITLE", "PRIORITY", "STATUS", "DUE"}, taskRows(t))
	case []model.Category:
		return writeRows(w, []string{"ID", "NAME", "DESCRIPTION"}, categoryRows(t))
	case model.User:
		return writeRows(w, []string{"ID", "USERNAME", "EMAIL"},
			[][]string{{t.UserID, t.Username, t.Email}})
	default:
		return WriteJSON(w, v, pretty)
	}
}

func writeRows(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

func noteRows(notes []model.Note) [][]string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		pinned := ""
		if n.IsPinned {
			pinned = "yes"
		}
		tags := make([]string, 0, len(n.Tags))
		for _, t := range n.Tags {
			tags = append(tags, t.Name)
		}
		rows = append(rows, []string{n.NoteID, n.Title, pinned, n.Category, strings.Join(tags, ",")})
	}
	return rows
}

func taskRows(tasks []model.Task) [][]string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{t.TaskID, t.Title, string(t.Priority), string(t.Status), due})
	}
	return rows
}

func categoryRows(cats []model.Category) [][]string {
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.CategoryID, c.Name, c.Description})
	}
	return rows
}
