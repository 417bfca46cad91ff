package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"datalens/domain/core"
	"datalens/internal/errors"
	"datalens/models"
)

func (a *App) handleListRecords(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 10)

	result, err := a.records.List(r.Context(), page, perPage)
	if err != nil {
		a.log.Error("failed to list records", "error", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (a *App) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid JSON payload"))
		return
	}

	rec, err := a.records.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (a *App) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	rec, err := a.records.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (a *App) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	var req models.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid JSON payload"))
		return
	}

	rec, err := a.records.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (a *App) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	if err := a.records.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Record deleted successfully"})
}

func recordID(w http.ResponseWriter, r *http.Request) (core.ID, bool) {
	id, err := core.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, errors.InvalidInput("invalid record ID"))
		return "", false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
