package openseaclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
)

type EventsParams struct {
	Query  domain.CollectionQuery
	Cursor string
}

func (c *OpenSeaClient) GetEvents(ctx context.Context, params EventsParams) (*EventsResult, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/events")

	query := endpoint.Query()
	query.Set("only_opensea", "false")
	query.Set("event_type", "successful")
	if params.Query.Slug != "" {
		query.Set("collection_slug", params.Query.Slug)
	} else {
		query.Set("asset_contract_address", params.Query.Contract)
	}
	if params.Query.HasPeriodFilter() {
		query.Set("occurred_after", strconv.FormatInt(params.Query.OccurredAfter, 10))
	}
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header = c.headers.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	result := &EventsResult{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &result.Response); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar a resposta (status %d)", resp.StatusCode)
	}

	return result, nil
}
