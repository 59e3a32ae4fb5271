package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// User is the server's user record. Immutable from the client's perspective
// after registration; the client only caches it (see internal/session).
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Tag struct {
	TagID string `json:"tagId,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Note struct {
	NoteID string `json:"noteId"`
	UserID string `json:"userId"`
	Title  string `json:"title"`
	// Body carries the editor's rich-text markup verbatim; the client never
	// parses it, only round-trips it.
	Body     string `json:"body,omitempty"`
	Color    string `json:"color,omitempty"`
	IsPinned bool   `json:"isPinned"`

	// Category and Tags are server-derived (auto-organize). Read-only here:
	// they are rendered but never sent back on save.
	Category string `json:"category,omitempty"`
	Tags     []Tag  `json:"tags,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Category struct {
	CategoryID  string     `json:"categoryId"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Color       string     `json:"color,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type Task struct {
	TaskID string `json:"taskId"`
	UserID string `json:"userId"`
	// NoteID is set when the task was generated from a note.
	NoteID      string     `json:"noteId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Active reports whether a task should appear in the sidebar summary.
func (t Task) Active() bool {
	return t.Status == StatusPending || t.Status == StatusInProgress
}

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
