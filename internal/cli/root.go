package cli

import (
	"fmt"
	"net/http"
	"os"

	"inkwell-cli/internal/api"
	"inkwell-cli/internal/config"
	"inkwell-cli/internal/controller"
	"inkwell-cli/internal/format"
	"inkwell-cli/internal/session"
	"inkwell-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	API        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "inkwell",
		Short:        "Terminal client for the notes backend",
		SilenceUsage: true,
		Example: `  # Start the interactive TUI
  inkwell

  # Scriptable commands
  inkwell login --username alice
  inkwell notes list
  inkwell tasks complete <task-id>`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.API, "api", envOr("INKWELL_API", ""), "Backend base URL including /api (overrides INKWELL_API)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("INKWELL_FORMAT", "json"), "Output format (json|table)")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newNotesCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newTasksCmd(app))

	return cmd
}

// newController wires config, gateway, and controller, restoring any cached
// identity. Commands that need a login check it themselves via the
// controller's validation errors.
func (app *App) newController() (*controller.Controller, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if app.API != "" {
		cfg.APIBase = app.API
	}
	client := api.New(api.Options{
		BaseURL:    cfg.APIBase,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:     cfg.Logger(),
	})
	ctrl := controller.New(client)
	u, ok, err := session.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if ok {
		ctrl.Restore(u)
	}
	return ctrl, nil
}

func runTUI(app *App) error {
	ctrl, err := app.newController()
	if err != nil {
		return err
	}
	return tui.Run(ctrl)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
