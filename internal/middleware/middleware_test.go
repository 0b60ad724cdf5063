package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("generates an id when missing", func(t *testing.T) {
		var got string
		h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = GetRequestID(r)
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NotEmpty(t, got)
		require.Equal(t, got, rec.Header().Get("X-Request-ID"))
	})

	t.Run("keeps an incoming id", func(t *testing.T) {
		var got string
		h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = GetRequestID(r)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		h.ServeHTTP(httptest.NewRecorder(), req)
		require.Equal(t, "abc-123", got)
	})
}

func TestLimitBytes(t *testing.T) {
	h := LimitBytes(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("small body passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("tiny")))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 64))))
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestRecover(t *testing.T) {
	h := Recover(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
