package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"inkwell-cli/internal/apperr"
	"inkwell-cli/internal/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type TaskInput struct {
	UserID      string           `json:"userId"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Priority    model.Priority   `json:"priority"`
	Status      model.TaskStatus `json:"status"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
}

func (in TaskInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.UserID, validation.Required),
		validation.Field(&in.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&in.Priority, validation.Required, validation.In(
			model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent)),
		validation.Field(&in.Status, validation.Required, validation.In(
			model.StatusPending, model.StatusInProgress, model.StatusCompleted)),
	)
}

// ListTasks fetches the user's tasks, optionally narrowed to one status
// server-side. An empty status means all tasks.
func (c *Client) ListTasks(ctx context.Context, userID string, status model.TaskStatus) ([]model.Task, error) {
	if userID == "" {
		return nil, apperr.Validationf("not logged in")
	}
	path := "/todos"
	if status != "" {
		if !model.ValidStatus(status) {
			return nil, apperr.Validationf("invalid status: %s", status)
		}
		path = "/todos/status/" + url.PathEscape(string(status))
	}
	var tasks []model.Task
	err := c.do(ctx, call{
		op:     "tasks.list",
		kind:   "task",
		method: http.MethodGet,
		path:   path,
		query:  userQuery(userID),
	}, &tasks)
	return tasks, err
}

func (c *Client) GetTask(ctx context.Context, id string) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, call{
		op:     "tasks.get",
		kind:   "task",
		id:     id,
		method: http.MethodGet,
		path:   "/todos/" + url.PathEscape(id),
	}, &t)
	return t, err
}

func (c *Client) UpdateTask(ctx context.Context, id string, in TaskInput) (model.Task, error) {
	if err := in.Validate(); err != nil {
		return model.Task{}, apperr.Validation(err)
	}
	var t model.Task
	err := c.do(ctx, call{
		op:     "tasks.update",
		kind:   "task",
		id:     id,
		method: http.MethodPut,
		path:   "/todos/" + url.PathEscape(id),
		body:   in,
	}, &t)
	return t, err
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, call{
		op:     "tasks.delete",
		kind:   "task",
		id:     id,
		method: http.MethodDelete,
		path:   "/todos/" + url.PathEscape(id),
	}, nil)
}

// CompleteTask transitions a task to COMPLETED. Idempotent: completing an
// already-completed task succeeds and leaves it completed.
func (c *Client) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, call{
		op:     "tasks.complete",
		kind:   "task",
		id:     id,
		method: http.MethodPut,
		path:   "/todos/" + url.PathEscape(id) + "/complete",
	}, &t)
	return t, err
}

// GenerateTasksFromNote asks the server to derive tasks from a note's content.
// The derivation is opaque to the client; the response lists what was created.
func (c *Client) GenerateTasksFromNote(ctx context.Context, noteID, userID string) ([]model.Task, error) {
	if userID == "" {
		return nil, apperr.Validationf("not logged in")
	}
	var tasks []model.Task
	err := c.do(ctx, call{
		op:     "tasks.generate",
		kind:   "note",
		id:     noteID,
		method: http.MethodPost,
		path:   "/todos/generate/" + url.PathEscape(noteID),
		query:  userQuery(userID),
	}, &tasks)
	return tasks, err
}
