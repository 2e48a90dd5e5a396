package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todocal/internal/controller"
	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/views"
	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List and change calendar events",
	}
	cmd.AddCommand(newEventsListCmd(app))
	cmd.AddCommand(newEventsAddCmd(app))
	cmd.AddCommand(newEventsRmCmd(app))
	return cmd
}

func newEventsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.signedInWithLists(cmd)
			if err != nil {
				return err
			}
			if app.JSON {
				return writeJSON(cmd, st.Events)
			}
			if len(st.Events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgEventsEmpty))
				return nil
			}
			rows := make([][]string, 0, len(st.Events))
			for _, e := range st.Events {
				rows = append(rows, []string{
					strconv.FormatInt(e.ID, 10),
					e.Title,
					app.catalog.FormatDateTime(e.StartTime.Time),
					app.catalog.FormatDateTime(e.EndTime.Time),
					e.Location,
				})
			}
			writeTable(cmd, []string{"ID", "TITLE", "START", "END", "LOCATION"}, rows)
			return nil
		},
	}
}

func newEventsAddCmd(app *App) *cobra.Command {
	var description, start, end, location string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a calendar event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.signedIn(cmd)
			if err != nil {
				return err
			}
			draft := model.EventDraft{
				Title:       strings.Join(args, " "),
				Description: description,
				Location:    location,
			}
			for _, f := range []struct {
				raw string
				dst *model.Time
			}{{start, &draft.StartTime}, {end, &draft.EndTime}} {
				if f.raw == "" {
					continue
				}
				t, err := model.ParseTime(f.raw, app.catalog.Location())
				if err != nil {
					return writeErr(cmd, err)
				}
				*f.dst = t
			}
			event, err := app.resources.CreateEvent(cmd.Context(), st, draft)
			if err != nil {
				return app.fail(cmd, err, i18n.MsgEventAddFailed)
			}
			if app.JSON {
				return writeJSON(cmd, event)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (#%d)\n", app.catalog.T(i18n.MsgEventAdded), event.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "Markdown description")
	cmd.Flags().StringVar(&start, "start", "", "Start, YYYY-MM-DDTHH:MM")
	cmd.Flags().StringVar(&end, "end", "", "End, YYYY-MM-DDTHH:MM")
	cmd.Flags().StringVar(&location, "location", "", "Where it happens")
	return cmd
}

func newEventsRmCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a calendar event",
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
			event, err := st.FindEvent(id)
			if err != nil {
				return app.fail(cmd, err, i18n.MsgGenericError)
			}
			prompt := app.catalog.T(i18n.MsgEventConfirmDelete, "Title", event.Title)
			err = app.resources.DeleteEvent(cmd.Context(), st, id, prompt, app.confirmer(cmd, yes))
			if errors.Is(err, controller.ErrDeclined) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
			if err != nil {
				return app.fail(cmd, err, i18n.MsgGenericError)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgEventDeleted))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show todo and event counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.signedInWithLists(cmd)
			if err != nil {
				return err
			}
			if app.JSON {
				return writeJSON(cmd, st.Stats)
			}
			s := st.Stats
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderStats(views.StatsData{
				TotalLabel:     app.catalog.T(i18n.MsgStatsTotal),
				CompletedLabel: app.catalog.T(i18n.MsgStatsCompleted),
				PendingLabel:   app.catalog.T(i18n.MsgStatsPending),
				EventsLabel:    app.catalog.T(i18n.MsgStatsEvents),
				TotalTodos:     s.TotalTodos,
				CompletedTodos: s.CompletedTodos,
				PendingTodos:   s.PendingTodos,
				TotalEvents:    s.TotalEvents,
			}))
			return nil
		},
	}
}
