package ui

import (
	"net/http"

	"datalens/internal/errors"
)

func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, errors.InvalidInput("upload requires a multipart 'file' field"))
		return
	}
	defer file.Close()

	result, err := a.uploads.Ingest(r.Context(), header.Filename, file)
	if err != nil {
		a.log.Error("upload failed", "file", header.Filename, "error", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
