package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/opensea-sales-report/internal/config"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
	"github.com/vfg2006/opensea-sales-report/pkg/apiErrors"
)

func newTestServer() (*Server, *domain.RunState) {
	state := domain.NewRunState("run-1", "cool-cats", time.Now().Add(-time.Minute))
	cfg := &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "0",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
	return New(cfg, state), state
}

func TestServer_Healthcheck(t *testing.T) {
	server, _ := newTestServer()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}

func TestServer_Progress(t *testing.T) {
	server, state := newTestServer()
	state.RequestIssued()
	state.RequestIssued()
	state.PageFetched()
	state.AddTransactions(42)
	state.SetCollectionName("Cool Cats")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/progress", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	var snapshot domain.RunSnapshot
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &snapshot))

	assert.Equal(t, "run-1", snapshot.RunID)
	assert.Equal(t, "cool-cats", snapshot.Collection)
	assert.Equal(t, "Cool Cats", snapshot.CollectionName)
	assert.Equal(t, int64(42), snapshot.TransactionsProcessed)
	assert.Equal(t, int64(2), snapshot.RequestsIssued)
	assert.Equal(t, int64(1), snapshot.PagesFetched)
	assert.GreaterOrEqual(t, snapshot.ElapsedMs, int64(time.Minute/time.Millisecond))
}

func TestServer_Fallbacks(t *testing.T) {
	server, _ := newTestServer()

	t.Run("Rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrNotFound, apiErr.Code)
	})

	t.Run("Método não suportado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/progress", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrMethodNotAllowed, apiErr.Code)
	})

	t.Run("Preflight CORS", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/progress", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	})
}

func TestServer_StartAndShutdown(t *testing.T) {
	server, _ := newTestServer()

	require.NoError(t, server.Start())
	assert.NoError(t, server.Shutdown(context.Background()))
}
