package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/uncleben006/invoice-agent/internal/product/model"
	"github.com/uncleben006/invoice-agent/internal/product/service"
)

const (
	defaultMaxResults = 5
	maxMaxResults     = 20
	defaultThreshold  = 0.4
)

// List returns the full product catalog, loading it on first use.
func List(svc *service.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.GetAll()
		if err != nil {
			logger.Error().Err(err).Msg("list products")
			writeError(w, loadStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, model.ListResponse{Products: products, Total: len(products)})
	}
}

// Check fuzzy-matches a product name against the catalog.
func Check(svc *service.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req model.CheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}

		maxResults := clampInt(atoi(r.URL.Query().Get("max_results"), defaultMaxResults), 1, maxMaxResults)
		threshold := clampFloat(toFloat(r.URL.Query().Get("threshold"), defaultThreshold), 0, 1)

		exact, matches, err := svc.Check(req.ProductName, maxResults, threshold)
		if err != nil {
			logger.Error().Err(err).Str("name", req.ProductName).Msg("check product")
			writeError(w, loadStatus(err), err.Error())
			return
		}
		if matches == nil {
			matches = []model.MatchResult{}
		}

		logger.Info().
			Str("name", req.ProductName).
			Bool("exact", exact).
			Int("matches", len(matches)).
			Dur("elapsed", time.Since(start)).
			Msg("product check")
		writeJSON(w, http.StatusOK, model.CheckResponse{ExactMatch: exact, MatchingProducts: matches})
	}
}

// Reload forces a fresh catalog load and reports what happened.
func Reload(svc *service.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := svc.Reload()
		if err != nil {
			logger.Error().Err(err).Msg("reload catalog")
			writeError(w, loadStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, cat.Stats)
	}
}

// loadStatus maps catalog load failures to client-visible statuses; the
// process itself stays up regardless.
func loadStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrCatalogNotFound):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrCatalogFormat):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
