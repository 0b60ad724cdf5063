package serverhttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/uncleben006/invoice-agent/internal/config"
	invSvc "github.com/uncleben006/invoice-agent/internal/invoice/service"
	ocrSvc "github.com/uncleben006/invoice-agent/internal/ocr/service"
	prodSvc "github.com/uncleben006/invoice-agent/internal/product/service"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products_list.csv")
	require.NoError(t, os.WriteFile(path, []byte("品號,品名,單位,幣別\nJ009030,豬肉絲,斤,NTD\n"), 0o644))

	cfg := config.Config{AllowOrigins: []string{"*"}, MaxUploadMB: 1}
	logger := zerolog.Nop()
	svcs := Services{
		Products: prodSvc.New(path, "品號", "品名", logger),
		OCR:      ocrSvc.New(nil, time.Second, 1<<20, logger),
		Invoices: invSvc.New(),
	}
	return NewRouter(cfg, logger, svcs)
}

func TestRoutes(t *testing.T) {
	r := testRouter(t)

	get := func(t *testing.T, path string) *httptest.ResponseRecorder {
		t.Helper()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := get(t, "/health")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "ok")
	})

	t.Run("products list", func(t *testing.T) {
		rec := get(t, "/api/products")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("product check", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/products/check", strings.NewReader(`{"product_name":"豬肉絲"}`))
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			ExactMatch bool `json:"exact_match"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp.ExactMatch)
	})

	t.Run("invoices", func(t *testing.T) {
		require.Equal(t, http.StatusOK, get(t, "/api/v1/invoices").Code)
		require.Equal(t, http.StatusOK, get(t, "/api/v1/invoices/1").Code)
		require.Equal(t, http.StatusNotFound, get(t, "/api/v1/invoices/999").Code)
	})

	t.Run("request id header is set", func(t *testing.T) {
		rec := get(t, "/health")
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("cors preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/products/check", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
