package ui

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"datalens/app"
)

// App is the JSON API server: health, file upload, record CRUD, analysis.
type App struct {
	router   *chi.Mux
	records  *app.RecordService
	uploads  *app.UploadService
	analysis *app.AnalysisService
	log      *slog.Logger

	maxUploadBytes int64
}

// AppConfig holds API server configuration
type AppConfig struct {
	MaxUploadBytes int64
}

// NewApp creates the API application and wires its routes
func NewApp(cfg AppConfig, records *app.RecordService, uploads *app.UploadService, analysis *app.AnalysisService, log *slog.Logger) *App {
	a := &App{
		router:         chi.NewRouter(),
		records:        records,
		uploads:        uploads,
		analysis:       analysis,
		log:            log,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleHealth)

	a.router.Post("/api/upload", a.handleUpload)

	a.router.Get("/api/records", a.handleListRecords)
	a.router.Post("/api/records", a.handleCreateRecord)
	a.router.Get("/api/records/{id}", a.handleGetRecord)
	a.router.Put("/api/records/{id}", a.handleUpdateRecord)
	a.router.Delete("/api/records/{id}", a.handleDeleteRecord)

	a.router.Get("/api/analyze", a.handleAnalyze)
}

// Router exposes the handler tree for embedding and tests
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "API is running"})
}
