package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/workbrief/internal/cli/formatter"
	"github.com/alexanderramin/workbrief/internal/contract"
	"github.com/alexanderramin/workbrief/internal/domain"
	"github.com/alexanderramin/workbrief/internal/service"
)

func newGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a weekly report or OKR draft",
	}
	cmd.AddCommand(newGenerateWeeklyCmd(app), newGenerateOKRCmd(app))
	return cmd
}

func newGenerateWeeklyCmd(app *App) *cobra.Command {
	var (
		mock      bool
		start     string
		end       string
		fromDaily bool
		save      bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "weekly [file|-]",
		Short: "Generate a weekly report from a daily log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var text string
			var err error
			if fromDaily {
				if start == "" || end == "" {
					return errors.New("--from-daily requires --start and --end")
				}
				logs, err := app.Daily.ListRange(ctx, start, end)
				if err != nil {
					return err
				}
				if len(logs) == 0 {
					return fmt.Errorf("no daily logs between %s and %s", start, end)
				}
				text = joinDailyLogs(logs)
			} else if text, err = readInput(cmd, args); err != nil {
				return err
			}

			result, err := app.Assistant.GenerateWeekly(ctx, service.WeeklyGenerateRequest{
				Content:   text,
				UseMock:   mock,
				StartDate: start,
				EndDate:   end,
			})
			if err != nil {
				return err
			}

			if save {
				wr := result.Parsed.WeekRange
				if _, err := app.Weekly.Save(ctx, wr.Start.String(), wr.End.String(), result.Report); err != nil {
					return fmt.Errorf("saving weekly report: %w", err)
				}
			}

			if asJSON {
				return writeJSON(cmd, contract.NewGenerateWeeklyResponse(result))
			}
			printOut(cmd, formatter.FormatWeeklyResult(result))
			if save {
				printOut(cmd, formatter.Success("saved weekly report %s ~ %s", result.Parsed.WeekRange.Start, result.Parsed.WeekRange.End))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&mock, "mock", false, "Use the offline mock model")
	cmd.Flags().StringVar(&start, "start", "", "Report start date (YYYY-MM-DD), with --end")
	cmd.Flags().StringVar(&end, "end", "", "Report end date (YYYY-MM-DD), with --start")
	cmd.Flags().BoolVar(&fromDaily, "from-daily", false, "Build the log from stored daily entries in --start..--end")
	cmd.Flags().BoolVar(&save, "save", false, "Store the generated report")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func newGenerateOKRCmd(app *App) *cobra.Command {
	var (
		mock    bool
		quarter string
		save    bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "okr [file|-]",
		Short: "Draft next quarter's OKR from work history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			result, err := app.Assistant.GenerateOKR(ctx, service.OKRGenerateRequest{
				Content: text,
				Quarter: quarter,
				UseMock: mock,
			})
			if err != nil {
				return err
			}

			today := domain.DateOf(app.now())
			if save {
				if _, err := app.OKR.Save(ctx, today.String(), result.OKR); err != nil {
					return fmt.Errorf("saving OKR: %w", err)
				}
			}

			if asJSON {
				return writeJSON(cmd, contract.NewGenerateOKRResponse(result))
			}
			printOut(cmd, formatter.FormatOKRResult(result))
			if save {
				printOut(cmd, formatter.Success("saved OKR for %s", today))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&mock, "mock", false, "Use the offline mock model")
	cmd.Flags().StringVar(&quarter, "quarter", "", "Target quarter label (default: next quarter)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the draft under today's date")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

// joinDailyLogs rebuilds one log text from stored entries, each under a
// compact date marker.
func joinDailyLogs(logs []*domain.DailyReport) string {
	parts := make([]string, 0, len(logs))
	for _, l := range logs {
		marker := strings.ReplaceAll(l.EntryDate.String(), "-", "")
		parts = append(parts, marker+"\n"+strings.TrimSpace(l.Content))
	}
	return strings.Join(parts, "\n\n")
}

func newValidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the structure of a report",
	}

	weekly := &cobra.Command{
		Use:   "weekly [file|-]",
		Short: "Check a weekly report for its four sections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v := app.Assistant.ValidateWeekly(text)
			printOut(cmd, formatter.FormatWeeklyValidation(v))
			if !v.Valid {
				return errors.New("weekly report failed validation")
			}
			return nil
		},
	}

	okr := &cobra.Command{
		Use:   "okr [file|-]",
		Short: "Check an OKR draft for objectives, dates, metrics and milestones",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v := app.Assistant.ValidateOKR(text)
			printOut(cmd, formatter.FormatOKRValidation(v))
			if !v.Valid {
				return errors.New("OKR draft failed validation")
			}
			return nil
		},
	}

	cmd.AddCommand(weekly, okr)
	return cmd
}
