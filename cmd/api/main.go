// Command api serves only the JSON API, without the dashboard.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

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

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migration.NewRunner().Run(context.Background(), db); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewRecordRepository(db)
	apiApp := ui.NewApp(
		ui.AppConfig{MaxUploadBytes: cfg.Upload.MaxBytes},
		app.NewRecordService(repo),
		app.NewUploadService(ingest.NewDataReader(log), repo, log),
		app.NewAnalysisService(repo, engine.NewSummarizer(), log),
		log,
	)

	log.Info("starting API server", "port", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, apiApp.Router()); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
