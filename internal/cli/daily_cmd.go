package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/workbrief/internal/cli/formatter"
)

func newDailyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Manage stored daily logs",
	}
	cmd.AddCommand(
		newDailySaveCmd(app),
		newDailyShowCmd(app),
		newDailyListCmd(app),
		newDailyDeleteCmd(app),
	)
	return cmd
}

func newDailySaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save <date> [file|-]",
		Short: "Store the log for a day, replacing any existing one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			report, err := app.Daily.Save(cmd.Context(), args[0], text)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.Success("saved daily log %s", report.EntryDate))
			return nil
		},
	}
}

func newDailyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <date>",
		Short: "Print the log for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Daily.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatDailyReport(report, app.now()))
			return nil
		},
	}
}

func newDailyListCmd(app *App) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List days with a log, or the logs within --start..--end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if start == "" && end == "" {
				dates, err := app.Daily.ListDates(ctx)
				if err != nil {
					return err
				}
				printOut(cmd, formatter.FormatDailyDates(dates))
				return nil
			}
			if start == "" || end == "" {
				return errors.New("--start and --end must be given together")
			}
			reports, err := app.Daily.ListRange(ctx, start, end)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatDailyList(reports))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD)")

	return cmd
}

func newDailyDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete the log for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Daily.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printOut(cmd, formatter.Success("deleted daily log %s", args[0]))
			return nil
		},
	}
}
