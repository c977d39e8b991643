package opensea

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	openseadomain "github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea/domain"
	"github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea/openseaclient"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
)

// Paginator busca as páginas de eventos de venda de uma coleção
type Paginator interface {
	FetchNextPage(ctx context.Context, cursor string) openseadomain.PageResult
}

type OpenSeaService struct {
	Client openseaclient.Client
	query  domain.CollectionQuery
}

func New(client openseaclient.Client, query domain.CollectionQuery) Paginator {
	return &OpenSeaService{
		Client: client,
		query:  query,
	}
}

// FetchNextPage faz exatamente uma requisição e classifica a resposta.
// Nunca tenta novamente: a política de retry fica com quem chama.
func (s *OpenSeaService) FetchNextPage(ctx context.Context, cursor string) openseadomain.PageResult {
	result, err := s.Client.GetEvents(ctx, openseaclient.EventsParams{
		Query:  s.query,
		Cursor: cursor,
	})
	if err != nil {
		return openseadomain.TransientFailure(err)
	}

	resp := result.Response

	if seconds, throttled := openseadomain.ParseThrottle(resp.Detail); throttled {
		logrus.WithFields(logrus.Fields{
			"status_code": result.StatusCode,
			"retry_after": seconds,
		}).Debug("Requisição limitada pela OpenSea")
		return openseadomain.Throttled(seconds)
	}

	if result.StatusCode != http.StatusOK {
		return openseadomain.TransientFailure(
			errors.Errorf("requisição falhou com status %d: %s", result.StatusCode, resp.Detail),
		)
	}

	if resp.AssetEvents == nil {
		return openseadomain.TransientFailure(errors.New("resposta sem asset_events"))
	}

	return openseadomain.Success(resp.AssetEvents, resp.NextCursor())
}
