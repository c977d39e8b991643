package openseaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/opensea-sales-report/internal/config"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.OpenSea{
		URL:     server.URL + "/api/v1",
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestGetEvents_QueryAndHeaders(t *testing.T) {
	tests := []struct {
		name   string
		params EventsParams
		check  func(t *testing.T, r *http.Request)
	}{
		{
			name: "primeira página por slug sem filtro",
			params: EventsParams{
				Query: domain.CollectionQuery{Slug: "boredapeyachtclub"},
			},
			check: func(t *testing.T, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "boredapeyachtclub", q.Get("collection_slug"))
				assert.False(t, q.Has("asset_contract_address"))
				assert.False(t, q.Has("occurred_after"))
				assert.False(t, q.Has("cursor"))
			},
		},
		{
			name: "página seguinte por contrato com filtro",
			params: EventsParams{
				Query:  domain.CollectionQuery{Contract: "0xabc", OccurredAfter: 1640995200},
				Cursor: "cD0yMDIy",
			},
			check: func(t *testing.T, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "0xabc", q.Get("asset_contract_address"))
				assert.False(t, q.Has("collection_slug"))
				assert.Equal(t, "1640995200", q.Get("occurred_after"))
				assert.Equal(t, "cD0yMDIy", q.Get("cursor"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *http.Request
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				captured = r
				w.Write([]byte(`{"next": null, "asset_events": []}`))
			})

			result, err := client.GetEvents(context.Background(), tt.params)
			require.NoError(t, err)
			require.NotNil(t, captured)

			assert.Equal(t, http.StatusOK, result.StatusCode)
			assert.Equal(t, http.MethodGet, captured.Method)
			assert.Equal(t, "/api/v1/events", captured.URL.Path)
			assert.Equal(t, "successful", captured.URL.Query().Get("event_type"))
			assert.Equal(t, "false", captured.URL.Query().Get("only_opensea"))
			assert.Equal(t, "test-key", captured.Header.Get("X-API-KEY"))
			assert.Equal(t, "application/json", captured.Header.Get("Accept"))
			tt.check(t, captured)
		})
	}
}

func TestGetEvents_HeadersAreNotShared(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"next": null, "asset_events": []}`))
	})

	_, err := client.GetEvents(context.Background(), EventsParams{Query: domain.CollectionQuery{Slug: "a"}})
	require.NoError(t, err)

	headers := client.(*OpenSeaClient).headers
	assert.Len(t, headers, 2)
	assert.Equal(t, "test-key", headers.Get("X-API-KEY"))
}

func TestGetEvents_Responses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		wantStatus int
		wantDetail string
		wantEvents int
		wantNext   string
	}{
		{
			name:       "sucesso com cursor",
			status:     http.StatusOK,
			body:       `{"next": "abc", "asset_events": [{"total_price": "1", "event_timestamp": "2022-01-01T00:00:00"}]}`,
			wantStatus: http.StatusOK,
			wantEvents: 1,
			wantNext:   "abc",
		},
		{
			name:       "throttle é decodificado e não vira erro",
			status:     http.StatusTooManyRequests,
			body:       `{"detail": "Request was throttled. Expected available in 7 seconds."}`,
			wantStatus: http.StatusTooManyRequests,
			wantDetail: "Request was throttled. Expected available in 7 seconds.",
		},
		{
			name:    "corpo que não é JSON",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			result, err := client.GetEvents(context.Background(), EventsParams{Query: domain.CollectionQuery{Slug: "a"}})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.StatusCode)
			assert.Equal(t, tt.wantDetail, result.Response.Detail)
			assert.Len(t, result.Response.AssetEvents, tt.wantEvents)
			assert.Equal(t, tt.wantNext, result.Response.NextCursor())
		})
	}
}

func TestGetEvents_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(config.OpenSea{URL: url, Timeout: time.Second})

	result, err := client.GetEvents(context.Background(), EventsParams{Query: domain.CollectionQuery{Slug: "a"}})
	assert.Error(t, err)
	assert.Nil(t, result)
}
