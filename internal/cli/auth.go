package cli

import (
	"errors"

	"inkwell-cli/internal/session"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in by username and cache the identity locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			u, err := ctrl.Login(cmd.Context(), username)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, u)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username of an existing account")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var username string
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			u, err := ctrl.Register(cmd.Context(), username, email)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, u)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "New username")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached identity (no server call)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Clear(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"ok": true})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok, err := session.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errors.New("not logged in"))
			}
			return writeOut(cmd, app, u)
		},
	}
}
