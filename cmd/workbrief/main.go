package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/workbrief/internal/api"
	"github.com/alexanderramin/workbrief/internal/cli"
	"github.com/alexanderramin/workbrief/internal/config"
	"github.com/alexanderramin/workbrief/internal/db"
	"github.com/alexanderramin/workbrief/internal/intelligence"
	"github.com/alexanderramin/workbrief/internal/llm"
	"github.com/alexanderramin/workbrief/internal/logging"
	"github.com/alexanderramin/workbrief/internal/metrics"
	"github.com/alexanderramin/workbrief/internal/parser"
	"github.com/alexanderramin/workbrief/internal/repository"
	"github.com/alexanderramin/workbrief/internal/service"
	"github.com/alexanderramin/workbrief/internal/web"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	keys := config.OSKeyring{}
	cfg, err := config.Load("", keys)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.Logger

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	dailyRepo := repository.NewSQLiteDailyReportRepo(database)
	weeklyRepo := repository.NewSQLiteWeeklyReportRepo(database)
	okrRepo := repository.NewSQLiteOKRReportRepo(database)
	todoRepo := repository.NewSQLiteTodoRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	m := metrics.New()
	llmObserver := llm.MultiObserver{llm.NewLogObserver(log), m}

	// Wire LLM clients; without a key every call goes to the mock.
	selector := llm.Selector{
		Mock:       llm.NewMockClient(llmObserver),
		Configured: cfg.LLM.Configured(),
	}
	if selector.Configured {
		client := llm.NewOpenAIClient(cfg.LLM, llmObserver)
		defer client.CloseIdleConnections()
		selector.Real = client
	}
	log.Info("starting",
		zap.String("db", cfg.DBPath),
		zap.Bool("llm_configured", selector.Configured),
		zap.String("model", cfg.LLM.Model),
		zap.String("key_source", cfg.KeySource),
	)

	p := parser.New(parser.NewClassifier(cfg.ProjectKeywords...))
	reports := intelligence.NewReportService(p, selector, time.Now)

	app := &cli.App{
		Assistant: service.NewAssistantService(p, reports,
			service.AssistantConfig{MaxInputChars: cfg.MaxInputChars, LLMConfigured: selector.Configured},
			time.Now,
			service.NewLogUseCaseObserver(log), m,
		),
		Daily:  service.NewDailyReportService(dailyRepo),
		Weekly: service.NewWeeklyReportService(weeklyRepo, time.Now),
		OKR:    service.NewOKRReportService(okrRepo),
		Todos:  service.NewTodoService(todoRepo, uow),
		Keys:   keys,
		Addr:   cfg.Addr,
	}

	app.Serve = func(ctx context.Context, addr string) error {
		router, err := api.NewRouter(api.Deps{
			Assistant: app.Assistant,
			Daily:     app.Daily,
			Weekly:    app.Weekly,
			OKR:       app.OKR,
			Todos:     app.Todos,
			Metrics:   m,
			UI:        web.Handler(),
			Log:       log,
		})
		if err != nil {
			return err
		}
		return serve(ctx, log, api.NewServer(addr, router, cfg.LLM.Timeout))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, log *zap.Logger, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
