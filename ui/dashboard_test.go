package ui

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"datalens/adapters/stats/engine"
	"datalens/app"
	"datalens/internal/testkit"
	"datalens/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T, repo *testkit.MemoryRecordRepository) *Dashboard {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	d, err := NewDashboard("test",
		app.NewRecordService(repo),
		app.NewAnalysisService(repo, engine.NewSummarizer(), log),
		log,
	)
	require.NoError(t, err)
	return d
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestDashboardIndex(t *testing.T) {
	d := newTestDashboard(t, testkit.NewMemoryRecordRepository())

	w := get(d.Router(), "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Data Analysis Dashboard")
}

func TestDashboardAnalysisWithoutData(t *testing.T) {
	d := newTestDashboard(t, testkit.NewMemoryRecordRepository())

	w := get(d.Router(), "/analysis")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No data available for analysis")
}

func TestDashboardAnalysisRendersCharts(t *testing.T) {
	repo := testkit.NewMemoryRecordRepository()
	svc := app.NewRecordService(repo)
	for _, req := range []models.CreateRecordRequest{
		{Name: "Alice", Age: 30, Salary: 50000, Department: "Engineering", Experience: 5},
		{Name: "Bob", Age: 25, Salary: 42000, Department: "HR", Experience: 2},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	d := newTestDashboard(t, repo)
	w := get(d.Router(), "/analysis")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Missing Values")
	assert.Contains(t, body, "salary")
	assert.Contains(t, body, "Engineering")
}

func TestDashboardDocsPage(t *testing.T) {
	d := newTestDashboard(t, testkit.NewMemoryRecordRepository())

	w := get(d.Router(), "/docs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "datalens API")
}
