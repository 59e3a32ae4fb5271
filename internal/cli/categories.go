package cli

import (
	"errors"

	"inkwell-cli/internal/controller"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category commands",
	}

	cmd.AddCommand(newCategoriesListCmd(app))
	cmd.AddCommand(newCategoriesCreateCmd(app))
	cmd.AddCommand(newCategoriesDeleteCmd(app))

	return cmd
}

func newCategoriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			cats, err := ctrl.Categories(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cats)
		},
	}
}

func newCategoriesCreateCmd(app *App) *cobra.Command {
	var name string
	var description string
	var color string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category (name must be unique per user)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			if color == "" {
				color = controller.DefaultCategoryColor
			}
			cats, err := ctrl.CreateCategory(cmd.Context(), name, description, color)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cats)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name")
	cmd.Flags().StringVar(&description, "description", "", "Optional description")
	cmd.Flags().StringVar(&color, "color", "", "Color (hex)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCategoriesDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errors.New("refusing to delete without --yes"))
			}
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			cats, err := ctrl.DeleteCategory(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cats)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}
