package format

import (
	"bytes"
	"strings"
	"testing"

	"inkwell-cli/internal/model"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, model.User{UserID: "u1", Username: "alice"}, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	if got != `{"userId":"u1","username":"alice","email":""}` {
		t.Fatalf("json = %s", got)
	}
}

func TestWriteJSONPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, model.User{UserID: "u1"}, "", true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"userId\"") {
		t.Fatalf("expected indented output, got %q", buf.String())
	}
}

func TestWriteTableNotes(t *testing.T) {
	notes := []model.Note{
		{NoteID: "n1", Title: "groceries", IsPinned: true, Category: "Home", Tags: []model.Tag{{Name: "food"}, {Name: "weekly"}}},
		{NoteID: "n2", Title: "ideas"},
	}
	var buf bytes.Buffer
	if err := Write(&buf, notes, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"ID", "TITLE", "PINNED", "groceries", "yes", "Home", "food,weekly", "n2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTableTasks(t *testing.T) {
	tasks := []model.Task{
		{TaskID: "t1", Title: "ship it", Priority: model.PriorityHigh, Status: model.StatusInProgress},
	}
	var buf bytes.Buffer
	if err := Write(&buf, tasks, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"PRIORITY", "HIGH", "IN_PROGRESS"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTableUnknownShapeFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"count": 3}, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"count":3}` {
		t.Fatalf("fallback = %q", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, "yaml", false); err == nil {
		t.Fatal("expected unknown format error")
	}
}
