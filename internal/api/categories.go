package api

import (
	"context"
	"net/http"
	"net/url"

	"inkwell-cli/internal/apperr"
	"inkwell-cli/internal/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CategoryInput struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

func (in CategoryInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.UserID, validation.Required),
		validation.Field(&in.Name, validation.Required, validation.Length(1, 64)),
	)
}

func (c *Client) ListCategories(ctx context.Context, userID string) ([]model.Category, error) {
	if userID == "" {
		return nil, apperr.Validationf("not logged in")
	}
	var cats []model.Category
	err := c.do(ctx, call{
		op:     "categories.list",
		kind:   "category",
		method: http.MethodGet,
		path:   "/categories",
		query:  userQuery(userID),
	}, &cats)
	return cats, err
}

// CreateCategory creates a category. Name uniqueness is enforced server-side;
// a duplicate yields apperr.ErrConflict, which callers surface without
// treating it as fatal.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	if err := in.Validate(); err != nil {
		return model.Category{}, apperr.Validation(err)
	}
	var cat model.Category
	err := c.do(ctx, call{
		op:     "categories.create",
		kind:   "category",
		method: http.MethodPost,
		path:   "/categories",
		body:   in,
	}, &cat)
	return cat, err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, call{
		op:     "categories.delete",
		kind:   "category",
		id:     id,
		method: http.MethodDelete,
		path:   "/categories/" + url.PathEscape(id),
	}, nil)
}
