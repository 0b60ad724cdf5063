package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/uncleben006/invoice-agent/internal/ocr/model"
	"github.com/uncleben006/invoice-agent/internal/ocr/service"
)

// Text extracts text and positional metadata from a single file URL.
func Text(svc *service.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.ExtractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		if req.ImageURL == "" {
			writeError(w, http.StatusBadRequest, "image_url is required")
			return
		}

		res, err := svc.ExtractText(r.Context(), req.ImageURL, req.FileType)
		if err != nil {
			logger.Error().Err(err).Str("url", req.ImageURL).Msg("ocr extract")
			status := http.StatusInternalServerError
			if errors.Is(err, service.ErrUnavailable) {
				status = http.StatusServiceUnavailable
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// Batch extracts text from multiple files; per-file failures are reported
// inline rather than failing the whole request.
func Batch(svc *service.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		if len(req.Files) == 0 {
			writeError(w, http.StatusBadRequest, "files is required")
			return
		}

		results := svc.ExtractBatch(r.Context(), req.Files)
		writeJSON(w, http.StatusOK, model.BatchResponse{Results: results})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
