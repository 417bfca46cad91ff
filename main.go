package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"datalens/adapters/ingest"
	"datalens/adapters/postgres"
	"datalens/adapters/stats/engine"
	"datalens/app"
	"datalens/internal/config"
	"datalens/internal/logging"
	"datalens/internal/migration"
	"datalens/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log, closeLog := logging.Setup(cfg.Logging.SeqURL)
	defer closeLog()

	db, err := initDatabase(cfg)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := run(cfg, db, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// initDatabase connects to PostgreSQL and applies schema migrations
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// run wires the services and serves the JSON API and the dashboard until a
// shutdown signal arrives.
func run(cfg *config.Config, db *sqlx.DB, log *slog.Logger) error {
	repo := postgres.NewRecordRepository(db)
	reader := ingest.NewDataReader(log)
	summarizer := engine.NewSummarizer()

	records := app.NewRecordService(repo)
	uploads := app.NewUploadService(reader, repo, log)
	analysis := app.NewAnalysisService(repo, summarizer, log)

	apiApp := ui.NewApp(ui.AppConfig{MaxUploadBytes: cfg.Upload.MaxBytes}, records, uploads, analysis, log)
	dashboard, err := ui.NewDashboard(cfg.UI.GinMode, records, analysis, log)
	if err != nil {
		return err
	}

	apiServer := &http.Server{Addr: ":" + cfg.Server.Port, Handler: apiApp.Router()}
	uiServer := &http.Server{Addr: ":" + cfg.UI.Port, Handler: dashboard.Router()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting API server", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.Info("starting dashboard server", "port", cfg.UI.Port)
		if err := uiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		apiServer.Shutdown(shutdownCtx)
		uiServer.Shutdown(shutdownCtx)
		return nil
	})

	return g.Wait()
}
