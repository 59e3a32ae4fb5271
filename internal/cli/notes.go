package cli

import (
	"errors"

	"inkwell-cli/internal/controller"

	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Note commands",
	}

	cmd.AddCommand(newNotesListCmd(app))
	cmd.AddCommand(newNotesShowCmd(app))
	cmd.AddCommand(newNotesCreateCmd(app))
	cmd.AddCommand(newNotesEditCmd(app))
	cmd.AddCommand(newNotesDeleteCmd(app))
	cmd.AddCommand(newNotesSearchCmd(app))
	cmd.AddCommand(newNotesOrganizeCmd(app))
	cmd.AddCommand(newNotesGenerateCmd(app))

	return cmd
}

func newNotesListCmd(app *App) *cobra.Command {
	var pinned bool
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, optionally filtered by pin or category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			f := controller.All()
			if pinned {
				f = controller.Pinned()
			}
			if category != "" {
				// Filters are mutually exclusive; category wins like the
				// dropdown superseding the sidebar buttons.
				f = controller.ByCategory(category)
			}
			notes, err := ctrl.SetFilter(cmd.Context(), f)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, notes)
		},
	}

	cmd.Flags().BoolVar(&pinned, "pinned", false, "Only pinned notes")
	cmd.Flags().StringVar(&category, "category", "", "Only notes in this category (exact name)")
	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <note-id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			d, err := ctrl.OpenNote(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			ctrl.CloseNote()
			return writeOut(cmd, app, d)
		},
	}
}

func newNotesCreateCmd(app *App) *cobra.Command {
	var title string
	var body string
	var color string
	var pin bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			d := ctrl.NewNote()
			d.Title = title
			d.Body = body
			if color != "" {
				d.Color = color
			}
			d.Pinned = pin
			notes, err := ctrl.SaveNote(cmd.Context(), d)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, notes)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&body, "body", "", "Note body markup")
	cmd.Flags().StringVar(&color, "color", "", "Note color (hex)")
	cmd.Flags().BoolVar(&pin, "pin", false, "Pin the note")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newNotesEditCmd(app *App) *cobra.Command {
	var title string
	var body string
	var color string
	var pin bool

	cmd := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Edit a note (unset flags keep current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			// Seed the draft from the server, then overlay only the flags
			// the user actually set.
			d, err := ctrl.OpenNote(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("title") {
				d.Title = title
			}
			if cmd.Flags().Changed("body") {
				d.Body = body
			}
			if cmd.Flags().Changed("color") {
				d.Color = color
			}
			if cmd.Flags().Changed("pin") {
				d.Pinned = pin
			}
			notes, err := ctrl.SaveNote(cmd.Context(), d)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, notes)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&body, "body", "", "New body markup")
	cmd.Flags().StringVar(&color, "color", "", "New color (hex)")
	cmd.Flags().BoolVar(&pin, "pin", false, "Pin (or --pin=false to unpin)")
	return cmd
}

func newNotesDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errors.New("refusing to delete without --yes"))
			}
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			notes, err := ctrl.DeleteNote(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, notes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}

func newNotesSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search notes server-side (result ignores the pin/category filter)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			notes, err := ctrl.Search(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, notes)
		},
	}
}

func newNotesOrganizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "organize <note-id>",
		Short: "Ask the server to assign category and tags, then show the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			n, _, err := ctrl.Organize(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, n)
		},
	}
}

func newNotesGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate-tasks <note-id>",
		Short: "Derive tasks from a note's content server-side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			created, _, err := ctrl.GenerateTasks(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, created)
		},
	}
}
