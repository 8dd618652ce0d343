package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/workbrief/internal/cli/formatter"
)

func newParseCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Split a daily log into dated blocks and categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			parsed, err := app.Assistant.Parse(cmd.Context(), text)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, parsed)
			}
			printOut(cmd, formatter.FormatParsed(parsed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the parse result as JSON")

	return cmd
}

func newWeekRangeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week-range",
		Short: "Show the Monday and Friday of the current week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printOut(cmd, formatter.FormatWeekRange(app.Assistant.WeekRange()))
			return nil
		},
	}
}
