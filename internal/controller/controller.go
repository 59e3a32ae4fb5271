// Package controller owns the client's transient view state and orchestrates
// the refetch-after-mutation discipline against the gateway.
//
// Local data is always a cache of the server: every mutating call is followed
// in the same call chain by exactly one refetch of each view that could show
// stale data. Nothing is patched incrementally.
package controller

import (
	"context"
	"sync"

	"inkwell-cli/internal/api"
	"inkwell-cli/internal/apperr"
	"inkwell-cli/internal/model"
	"inkwell-cli/internal/session"
)

// SidebarLimit caps the sidebar task summary.
const SidebarLimit = 5

// DefaultNoteColor seeds the editor for a new note.
const DefaultNoteColor = "#FFFFFF"

// DefaultCategoryColor seeds the category form.
const DefaultCategoryColor = "#667eea"

type Controller struct {
	api *api.Client

	mu          sync.Mutex
	user        *model.User
	filter      Filter
	noteTarget  noteTarget
	taskTarget  string
	boardOpen   bool
	boardStatus model.TaskStatus
}

type noteTarget struct {
	editing bool
	id      string // empty while editing a new note
}

func New(client *api.Client) *Controller {
	return &Controller{api: client, filter: All()}
}

// Restore adopts a previously cached identity without a server round trip.
// A stale identity is only detected when a later call fails.
func (c *Controller) Restore(u model.User) {
	c.mu.Lock()
	c.user = &u
	c.mu.Unlock()
}

func (c *Controller) User() (model.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return model.User{}, false
	}
	return *c.user, true
}

func (c *Controller) Filter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *Controller) userID() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return "", apperr.Validationf("not logged in")
	}
	return c.user.UserID, nil
}

// Login resolves a username to its user record and makes it the active,
// persisted identity.
func (c *Controller) Login(ctx context.Context, username string) (model.User, error) {
	u, err := c.api.FindUserByUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	if err := session.Save(u); err != nil {
		return model.User{}, err
	}
	c.Restore(u)
	return u, nil
}

// Register creates an account and logs it in. On conflict the session is left
// untouched.
func (c *Controller) Register(ctx context.Context, username, email string) (model.User, error) {
	u, err := c.api.RegisterUser(ctx, api.RegisterInput{Username: username, Email: email})
	if err != nil {
		return model.User{}, err
	}
	if err := session.Save(u); err != nil {
		return model.User{}, err
	}
	c.Restore(u)
	return u, nil
}

// Logout clears the cached identity. No server call.
func (c *Controller) Logout() error {
	if err := session.Clear(); err != nil {
		return err
	}
	c.mu.Lock()
	c.user = nil
	c.filter = All()
	c.noteTarget = noteTarget{}
	c.taskTarget = ""
	c.boardOpen = false
	c.boardStatus = ""
	c.mu.Unlock()
	return nil
}

// Notes fetches the full list and applies the active filter client-side.
func (c *Controller) Notes(ctx context.Context) ([]model.Note, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	notes, err := c.api.ListNotes(ctx, uid)
	if err != nil {
		return nil, err
	}
	return c.Filter().Apply(notes), nil
}

// SetFilter replaces the active filter and refetches the board. The previous
// filter is fully superseded; kinds are mutually exclusive.
func (c *Controller) SetFilter(ctx context.Context, f Filter) ([]model.Note, error) {
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
	return c.Notes(ctx)
}

// Search resolves a settled query. An empty query falls back to the filtered
// board; a non-empty one renders the server's result directly, superseding
// the pin/category filter for that render.
func (c *Controller) Search(ctx context.Context, query string) ([]model.Note, error) {
	if query == "" {
		return c.Notes(ctx)
	}
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	return c.api.SearchNotes(ctx, uid, query)
}

// NoteDraft carries the editable fields of the note editor. Category and
// Tags are display-only; saving never sends them.
type NoteDraft struct {
	ID       string // empty while creating
	Title    string
	Body     string
	Color    string
	Pinned   bool
	Category string
	Tags     []model.Tag
}

// NewNote opens the editor on an empty draft.
func (c *Controller) NewNote() NoteDraft {
	c.mu.Lock()
	c.noteTarget = noteTarget{editing: true}
	c.mu.Unlock()
	return NoteDraft{Color: DefaultNoteColor}
}

// OpenNote fetches the full note and seeds the editor.
func (c *Controller) OpenNote(ctx context.Context, id string) (NoteDraft, error) {
	n, err := c.api.GetNote(ctx, id)
	if err != nil {
		return NoteDraft{}, err
	}
	c.mu.Lock()
	c.noteTarget = noteTarget{editing: true, id: id}
	c.mu.Unlock()
	d := NoteDraft{
		ID:       n.NoteID,
		Title:    n.Title,
		Body:     n.Body,
		Color:    n.Color,
		Pinned:   n.IsPinned,
		Category: n.Category,
		Tags:     n.Tags,
	}
	if d.Color == "" {
		d.Color = DefaultNoteColor
	}
	return d, nil
}

func (c *Controller) CloseNote() {
	c.mu.Lock()
	c.noteTarget = noteTarget{}
	c.mu.Unlock()
}

// EditingNote reports the open editor target: ("", true) means a new note.
func (c *Controller) EditingNote() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.noteTarget.id, c.noteTarget.editing
}

// SaveNote performs create-or-update based on the draft id, closes the
// editor, and refetches the board.
func (c *Controller) SaveNote(ctx context.Context, d NoteDraft) ([]model.Note, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	in := api.NoteInput{
		UserID:   uid,
		Title:    d.Title,
		Body:     d.Body,
		Color:    d.Color,
		IsPinned: d.Pinned,
	}
	if d.ID != "" {
		_, err = c.api.UpdateNote(ctx, d.ID, in)
	} else {
		_, err = c.api.CreateNote(ctx, in)
	}
	if err != nil {
		return nil, err
	}
	c.CloseNote()
	return c.Notes(ctx)
}

// DeleteNote deletes and refetches. Confirmation is the renderer's job.
func (c *Controller) DeleteNote(ctx context.Context, id string) ([]model.Note, error) {
	if err := c.api.DeleteNote(ctx, id); err != nil {
		return nil, err
	}
	c.CloseNote()
	return c.Notes(ctx)
}

// Organize triggers server-side tagging, then fetches the note (the
// operation's result is only visible via a follow-up get) and refetches the
// board.
func (c *Controller) Organize(ctx context.Context, id string) (model.Note, []model.Note, error) {
	if err := c.api.AutoOrganizeNote(ctx, id); err != nil {
		return model.Note{}, nil, err
	}
	n, err := c.api.GetNote(ctx, id)
	if err != nil {
		return model.Note{}, nil, err
	}
	notes, err := c.Notes(ctx)
	if err != nil {
		return model.Note{}, nil, err
	}
	return n, notes, nil
}

// TaskViews is the result of one task refetch pass: the sidebar summary
// always, the full board only while it is showing.
type TaskViews struct {
	Sidebar   []model.Task
	Board     []model.Task
	BoardOpen bool
}

// SidebarTasks returns the active-task summary, capped at SidebarLimit.
func (c *Controller) SidebarTasks(ctx context.Context) ([]model.Task, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	all, err := c.api.ListTasks(ctx, uid, "")
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, SidebarLimit)
	for _, t := range all {
		if !t.Active() {
			continue
		}
		out = append(out, t)
		if len(out) == SidebarLimit {
			break
		}
	}
	return out, nil
}

// OpenBoard marks the full tasks view as showing and fetches it. An empty
// status means all tasks; the narrowing happens server-side.
func (c *Controller) OpenBoard(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.boardOpen = true
	c.boardStatus = status
	c.mu.Unlock()
	return c.api.ListTasks(ctx, uid, status)
}

func (c *Controller) CloseBoard() {
	c.mu.Lock()
	c.boardOpen = false
	c.mu.Unlock()
}

func (c *Controller) refetchTasks(ctx context.Context) (TaskViews, error) {
	sidebar, err := c.SidebarTasks(ctx)
	if err != nil {
		return TaskViews{}, err
	}
	c.mu.Lock()
	open, status := c.boardOpen, c.boardStatus
	c.mu.Unlock()
	v := TaskViews{Sidebar: sidebar, BoardOpen: open}
	if !open {
		return v, nil
	}
	uid, err := c.userID()
	if err != nil {
		return TaskViews{}, err
	}
	v.Board, err = c.api.ListTasks(ctx, uid, status)
	if err != nil {
		return TaskViews{}, err
	}
	return v, nil
}

// CompleteTask marks a task COMPLETED (idempotent server-side) and refetches
// every task view that is showing.
func (c *Controller) CompleteTask(ctx context.Context, id string) (TaskViews, error) {
	if _, err := c.api.CompleteTask(ctx, id); err != nil {
		return TaskViews{}, err
	}
	return c.refetchTasks(ctx)
}

// GenerateTasks asks the server to derive tasks from a note and refetches the
// task views. Returns the created tasks so the caller can report a count.
func (c *Controller) GenerateTasks(ctx context.Context, noteID string) ([]model.Task, TaskViews, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, TaskViews{}, err
	}
	created, err := c.api.GenerateTasksFromNote(ctx, noteID, uid)
	if err != nil {
		return nil, TaskViews{}, err
	}
	views, err := c.refetchTasks(ctx)
	if err != nil {
		return nil, TaskViews{}, err
	}
	return created, views, nil
}

// TaskDraft carries the editable fields of the task editor. DueInput is the
// timezone-naive local representation; it is serialized back to an absolute
// instant on save.
type TaskDraft struct {
	ID       string
	Title    string
	Priority model.Priority
	Status   model.TaskStatus
	DueInput string
}

// OpenTask fetches the full task and seeds the editor.
func (c *Controller) OpenTask(ctx context.Context, id string) (TaskDraft, error) {
	t, err := c.api.GetTask(ctx, id)
	if err != nil {
		return TaskDraft{}, err
	}
	c.mu.Lock()
	c.taskTarget = id
	c.mu.Unlock()
	return TaskDraft{
		ID:       t.TaskID,
		Title:    t.Title,
		Priority: t.Priority,
		Status:   t.Status,
		DueInput: DueToInput(t.DueDate),
	}, nil
}

func (c *Controller) CloseTask() {
	c.mu.Lock()
	c.taskTarget = ""
	c.mu.Unlock()
}

func (c *Controller) EditingTask() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.taskTarget, c.taskTarget != ""
}

// SaveTask updates the task, closes the editor, and refetches the task views.
func (c *Controller) SaveTask(ctx context.Context, d TaskDraft) (TaskViews, error) {
	uid, err := c.userID()
	if err != nil {
		return TaskViews{}, err
	}
	due, err := DueFromInput(d.DueInput)
	if err != nil {
		return TaskViews{}, apperr.Validationf("invalid due date %q (want YYYY-MM-DDTHH:MM)", d.DueInput)
	}
	in := api.TaskInput{
		UserID:   uid,
		Title:    d.Title,
		Priority: d.Priority,
		Status:   d.Status,
		DueDate:  due,
	}
	if _, err := c.api.UpdateTask(ctx, d.ID, in); err != nil {
		return TaskViews{}, err
	}
	c.CloseTask()
	return c.refetchTasks(ctx)
}

// DeleteTask deletes and refetches the task views.
func (c *Controller) DeleteTask(ctx context.Context, id string) (TaskViews, error) {
	if err := c.api.DeleteTask(ctx, id); err != nil {
		return TaskViews{}, err
	}
	c.CloseTask()
	return c.refetchTasks(ctx)
}

// Categories fetches the category list (it backs both the management view and
// the filter dropdown, so one refetch serves both).
func (c *Controller) Categories(ctx context.Context) ([]model.Category, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	return c.api.ListCategories(ctx, uid)
}

// CreateCategory creates and refetches. A Conflict is returned to the caller
// to surface; the list is left as-is since nothing changed server-side.
func (c *Controller) CreateCategory(ctx context.Context, name, description, color string) ([]model.Category, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	in := api.CategoryInput{UserID: uid, Name: name, Description: description, Color: color}
	if _, err := c.api.CreateCategory(ctx, in); err != nil {
		return nil, err
	}
	return c.Categories(ctx)
}

// DeleteCategory deletes and refetches.
func (c *Controller) DeleteCategory(ctx context.Context, id string) ([]model.Category, error) {
	if err := c.api.DeleteCategory(ctx, id); err != nil {
		return nil, err
	}
	return c.Categories(ctx)
}
