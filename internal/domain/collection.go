package domain

import "time"

const oneDay = 24 * time.Hour

// CollectionQuery identifica a coleção consultada e o filtro de período
type CollectionQuery struct {
	Slug     string
	Contract string
	// OccurredAfter em segundos desde epoch, zero quando não há filtro
	OccurredAfter int64
}

// NewCollectionQuery monta a consulta calculando o filtro de período uma única vez
func NewCollectionQuery(slug, contract string, daysBack *int, now time.Time) CollectionQuery {
	query := CollectionQuery{
		Slug:     slug,
		Contract: contract,
	}

	if daysBack != nil {
		since := now.Add(-time.Duration(*daysBack) * oneDay)
		query.OccurredAfter = since.UnixMilli() / 1000
	}

	return query
}

// Identifier retorna o slug ou, na falta dele, o endereço do contrato
func (q CollectionQuery) Identifier() string {
	if q.Slug != "" {
		return q.Slug
	}
	return q.Contract
}

func (q CollectionQuery) HasPeriodFilter() bool {
	return q.OccurredAfter > 0
}
