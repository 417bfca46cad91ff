package ui

import "net/http"

func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	report, err := a.analysis.Analyze(r.Context())
	if err != nil {
		a.log.Error("analysis failed", "error", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
