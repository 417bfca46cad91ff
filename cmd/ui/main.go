// Command ui serves only the HTML dashboard.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"datalens/adapters/postgres"
	"datalens/adapters/stats/engine"
	"datalens/app"
	"datalens/internal/config"
	"datalens/internal/logging"
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

	repo := postgres.NewRecordRepository(db)
	dashboard, err := ui.NewDashboard(cfg.UI.GinMode,
		app.NewRecordService(repo),
		app.NewAnalysisService(repo, engine.NewSummarizer(), log),
		log,
	)
	if err != nil {
		log.Error("failed to build dashboard", "error", err)
		os.Exit(1)
	}

	log.Info("starting dashboard server", "port", cfg.UI.Port)
	if err := http.ListenAndServe(":"+cfg.UI.Port, dashboard.Router()); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
