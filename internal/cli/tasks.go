package cli

import (
	"errors"

	"inkwell-cli/internal/model"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksEditCmd(app))
	cmd.AddCommand(newTasksCompleteCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	cmd.AddCommand(newTasksSidebarCmd(app))

	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally narrowed to one status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			tasks, err := ctrl.OpenBoard(cmd.Context(), model.TaskStatus(status))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, tasks)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "PENDING, IN_PROGRESS or COMPLETED (default: all)")
	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			d, err := ctrl.OpenTask(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			ctrl.CloseTask()
			return writeOut(cmd, app, d)
		},
	}
}

func newTasksEditCmd(app *App) *cobra.Command {
	var title string
	var priority string
	var status string
	var due string

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit a task (unset flags keep current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			d, err := ctrl.OpenTask(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("title") {
				d.Title = title
			}
			if cmd.Flags().Changed("priority") {
				d.Priority = model.Priority(priority)
			}
			if cmd.Flags().Changed("status") {
				d.Status = model.TaskStatus(status)
			}
			if cmd.Flags().Changed("due") {
				// Local naive form, e.g. 2026-09-01T17:30. Empty clears it.
				d.DueInput = due
			}
			views, err := ctrl.SaveTask(cmd.Context(), d)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, views.Sidebar)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&priority, "priority", "", "LOW, MEDIUM, HIGH or URGENT")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, IN_PROGRESS or COMPLETED")
	cmd.Flags().StringVar(&due, "due", "", "Due date as YYYY-MM-DDTHH:MM in local time (empty clears)")
	return cmd
}

func newTasksCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task completed (idempotent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			views, err := ctrl.CompleteTask(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, views.Sidebar)
		},
	}
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errors.New("refusing to delete without --yes"))
			}
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			views, err := ctrl.DeleteTask(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, views.Sidebar)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}

func newTasksSidebarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "Show the active-task summary (pending/in-progress, max 5)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			tasks, err := ctrl.SidebarTasks(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, tasks)
		},
	}
}
