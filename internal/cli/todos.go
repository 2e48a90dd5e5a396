package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todocal/internal/controller"
	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/spf13/cobra"
)

func newTodosCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "List and change todos",
	}
	cmd.AddCommand(newTodosListCmd(app))
	cmd.AddCommand(newTodosAddCmd(app))
	cmd.AddCommand(newTodosToggleCmd(app))
	cmd.AddCommand(newTodosRmCmd(app))
	return cmd
}

func newTodosListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.signedInWithLists(cmd)
			if err != nil {
				return err
			}
			if app.JSON {
				return writeJSON(cmd, st.Todos)
			}
			if len(st.Todos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgTodosEmpty))
				return nil
			}
			rows := make([][]string, 0, len(st.Todos))
			for _, t := range st.Todos {
				rows = append(rows, app.todoRow(t))
			}
			writeTable(cmd, []string{"ID", "DONE", "TITLE", "PRIORITY", "DUE", "!"}, rows)
			return nil
		},
	}
}

func (app *App) todoRow(t model.Todo) []string {
	done, star, due := "", "", ""
	if t.IsCompleted {
		done = "x"
	}
	if t.IsImportant {
		star = "★"
	}
	if t.DueDate != nil && !t.DueDate.IsZero() {
		due = app.catalog.FormatDate(t.DueDate.Time)
	}
	return []string{strconv.FormatInt(t.ID, 10), done, t.Title, app.catalog.PriorityLabel(string(t.Priority)), due, star}
}

func newTodosAddCmd(app *App) *cobra.Command {
	var description, priority, due string
	var important bool
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.signedIn(cmd)
			if err != nil {
				return err
			}
			p, err := model.ParsePriority(priority)
			if err != nil {
				return app.fail(cmd, &model.ValidationError{Field: "priority", Err: err}, i18n.MsgTodoAddFailed)
			}
			draft := model.TodoDraft{
				Title:       strings.Join(args, " "),
				Description: description,
				Priority:    p,
				IsImportant: important,
			}
			if due != "" {
				d, err := model.ParseTime(due, app.catalog.Location())
				if err != nil {
					return writeErr(cmd, err)
				}
				draft.DueDate = &d
			}
			todo, err := app.resources.CreateTodo(cmd.Context(), st, draft)
			if err != nil {
				return app.fail(cmd, err, i18n.MsgTodoAddFailed)
			}
			if app.JSON {
				return writeJSON(cmd, todo)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (#%d)\n", app.catalog.T(i18n.MsgTodoAdded), todo.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "Markdown description")
	cmd.Flags().StringVar(&priority, "priority", "medium", "low, medium or high")
	cmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD")
	cmd.Flags().BoolVar(&important, "important", false, "Mark as important")
	return cmd
}

func newTodosToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo between done and open",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := app.signedInWithLists(cmd)
			if err != nil {
				return err
			}
			if err := app.resources.Toggle(cmd.Context(), st, id); err != nil {
				return app.fail(cmd, err, i18n.MsgTodoToggleFailed)
			}
			todo, _ := st.FindTodo(id)
			state := "open"
			if todo.IsCompleted {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "#%d %s: %s\n", id, todo.Title, state)
			return nil
		},
	}
}

func newTodosRmCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := app.signedInWithLists(cmd)
			if err != nil {
				return err
			}
			todo, err := st.FindTodo(id)
			if err != nil {
				return app.fail(cmd, err, i18n.MsgGenericError)
			}
			prompt := app.catalog.T(i18n.MsgTodoConfirmDelete, "Title", todo.Title)
			err = app.resources.DeleteTodo(cmd.Context(), st, id, prompt, app.confirmer(cmd, yes))
			if errors.Is(err, controller.ErrDeclined) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			if err != nil {
				return app.fail(cmd, err, i18n.MsgGenericError)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgTodoDeleted))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirmer asks on stdin unless yes is set.
func (app *App) confirmer(cmd *cobra.Command, yes bool) controller.Confirmer {
	return controller.ConfirmFunc(func(prompt string) bool {
		if yes {
			return true
		}
		answer := strings.ToLower(strings.TrimSpace(app.readLine(cmd, prompt+" [y/N] ")))
		return answer == "y" || answer == "yes" || answer == "e" || answer == "evet"
	})
}
