package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/workbrief/internal/cli/formatter"
	"github.com/alexanderramin/workbrief/internal/domain"
)

func newTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the todo list",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show todo items, open ones first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Todos.List(cmd.Context())
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatTodos(items))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a todo item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := app.Todos.Create(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printOut(cmd, formatter.Success("added #%d %s", item.ID, item.Text))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTodoID(args[0])
			if err != nil {
				return err
			}
			if err := app.Todos.Delete(cmd.Context(), id); err != nil {
				return err
			}
			printOut(cmd, formatter.Success("deleted #%d", id))
			return nil
		},
	}

	cmd.AddCommand(list, add, newTodoMarkCmd(app, "done", true), newTodoMarkCmd(app, "undo", false), remove)
	return cmd
}

func newTodoMarkCmd(app *App, use string, done bool) *cobra.Command {
	short := "Mark a todo item done"
	if !done {
		short = "Reopen a todo item"
	}
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTodoID(args[0])
			if err != nil {
				return err
			}
			item, err := app.Todos.Update(cmd.Context(), id, nil, &done)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatTodos([]*domain.TodoItem{item}))
			return nil
		},
	}
}

func parseTodoID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", s)
	}
	return id, nil
}
