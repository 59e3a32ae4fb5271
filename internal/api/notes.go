package api

import (
	"context"
	"net/http"
	"net/url"

	"inkwell-cli/internal/apperr"
	"inkwell-cli/internal/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NoteInput is the writable subset of a note. Category and tags are
// server-derived and intentionally absent.
type NoteInput struct {
	UserID   string `json:"userId"`
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	Color    string `json:"color,omitempty"`
	IsPinned bool   `json:"isPinned"`
}

func (in NoteInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.UserID, validation.Required),
		validation.Field(&in.Title, validation.Required, validation.Length(1, 256)),
	)
}

func (c *Client) ListNotes(ctx context.Context, userID string) ([]model.Note, error) {
	if userID == "" {
		return nil, apperr.Validationf("not logged in")
	}
	var notes []model.Note
	err := c.do(ctx, call{
		op:     "notes.list",
		kind:   "note",
		method: http.MethodGet,
		path:   "/notes",
		query:  userQuery(userID),
	}, &notes)
	return notes, err
}

func (c *Client) GetNote(ctx context.Context, id string) (model.Note, error) {
	var n model.Note
	err := c.do(ctx, call{
		op:     "notes.get",
		kind:   "note",
		id:     id,
		method: http.MethodGet,
		path:   "/notes/" + url.PathEscape(id),
	}, &n)
	return n, err
}

func (c *Client) CreateNote(ctx context.Context, in NoteInput) (model.Note, error) {
	if err := in.Validate(); err != nil {
		return model.Note{}, apperr.Validation(err)
	}
	var n model.Note
	err := c.do(ctx, call{
		op:     "notes.create",
		kind:   "note",
		method: http.MethodPost,
		path:   "/notes",
		body:   in,
	}, &n)
	return n, err
}

func (c *Client) UpdateNote(ctx context.Context, id string, in NoteInput) (model.Note, error) {
	if err := in.Validate(); err != nil {
		return model.Note{}, apperr.Validation(err)
	}
	var n model.Note
	err := c.do(ctx, call{
		op:     "notes.update",
		kind:   "note",
		id:     id,
		method: http.MethodPut,
		path:   "/notes/" + url.PathEscape(id),
		body:   in,
	}, &n)
	return n, err
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, call{
		op:     "notes.delete",
		kind:   "note",
		id:     id,
		method: http.MethodDelete,
		path:   "/notes/" + url.PathEscape(id),
	}, nil)
}

// SearchNotes asks the server for a relevance match; the result supersedes any
// active pin/category filter for that render.
func (c *Client) SearchNotes(ctx context.Context, userID, query string) ([]model.Note, error) {
	if userID == "" {
		return nil, apperr.Validationf("not logged in")
	}
	q := userQuery(userID)
	q.Set("query", query)
	var notes []model.Note
	err := c.do(ctx, call{
		op:     "notes.search",
		kind:   "note",
		method: http.MethodGet,
		path:   "/notes/search",
		query:  q,
	}, &notes)
	return notes, err
}

// AutoOrganizeNote triggers server-side tagging/categorization. The result is
// opaque; callers refetch the note to see the assigned category and tags.
func (c *Client) AutoOrganizeNote(ctx context.Context, id string) error {
	return c.do(ctx, call{
		op:     "notes.organize",
		kind:   "note",
		id:     id,
		method: http.MethodPost,
		path:   "/notes/" + url.PathEscape(id) + "/auto-organize",
	}, nil)
}
