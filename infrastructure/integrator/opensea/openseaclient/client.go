package openseaclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	openseadomain "github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea/domain"
	"github.com/vfg2006/opensea-sales-report/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetEvents(ctx context.Context, params EventsParams) (*EventsResult, error)
}

type OpenSeaClient struct {
	httpClient *http.Client
	baseURL    string
	headers    http.Header
}

// NewClient cria o cliente da API de eventos.
// Os cabeçalhos são montados uma única vez e copiados em cada requisição.
func NewClient(cfg config.OpenSea) Client {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	if cfg.APIKey != "" {
		headers.Set("X-API-KEY", cfg.APIKey)
	}

	return &OpenSeaClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.URL,
		headers: headers,
	}
}

// EventsResult carrega o corpo decodificado junto com o status HTTP
type EventsResult struct {
	StatusCode int
	Response   openseadomain.EventsResponse
}
