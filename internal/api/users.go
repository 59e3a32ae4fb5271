package api

import (
	"context"
	"net/http"
	"net/url"

	"inkwell-cli/internal/apperr"
	"inkwell-cli/internal/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
	)
}

// RegisterUser creates a new account. A username or email that already exists
// yields apperr.ErrConflict.
func (c *Client) RegisterUser(ctx context.Context, in RegisterInput) (model.User, error) {
	if err := in.Validate(); err != nil {
		return model.User{}, apperr.Validation(err)
	}
	var u model.User
	err := c.do(ctx, call{
		op:     "users.register",
		kind:   "user",
		method: http.MethodPost,
		path:   "/users/register",
		body:   in,
	}, &u)
	return u, err
}

// FindUserByUsername looks up an existing account for login. A miss yields
// apperr.ErrNotFound.
func (c *Client) FindUserByUsername(ctx context.Context, username string) (model.User, error) {
	if username == "" {
		return model.User{}, apperr.Validationf("username is required")
	}
	var u model.User
	err := c.do(ctx, call{
		op:     "users.find",
		kind:   "user",
		id:     username,
		method: http.MethodGet,
		path:   "/users/username/" + url.PathEscape(username),
	}, &u)
	return u, err
}
