package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/workbrief/internal/config"
	"github.com/alexanderramin/workbrief/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Assistant service.AssistantService
	Daily     service.DailyReportService
	Weekly    service.WeeklyReportService
	OKR       service.OKRReportService
	Todos     service.TodoService
	Keys      config.KeyStore

	// Addr is the default listen address for serve.
	Addr string
	// Serve runs the HTTP server until ctx is cancelled.
	Serve func(ctx context.Context, addr string) error
	Now   func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "workbrief" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "workbrief",
		Short:         "Weekly report and OKR assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newParseCmd(app),
		newWeekRangeCmd(app),
		newGenerateCmd(app),
		newValidateCmd(app),
		newDailyCmd(app),
		newTodoCmd(app),
		newKeyCmd(app),
	)

	return root
}
