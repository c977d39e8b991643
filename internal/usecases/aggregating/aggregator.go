package aggregating

import (
	"fmt"

	"github.com/shopspring/decimal"
	openseadomain "github.com/vfg2006/opensea-sales-report/infrastructure/integrator/opensea/domain"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
	"github.com/vfg2006/opensea-sales-report/pkg/utils"
)

// Aggregator acumula os preços de venda por dia, na ordem em que os dias aparecem
type Aggregator struct {
	state  *domain.RunState
	order  []string
	byDate map[string]*domain.DailySales
}

func New(state *domain.RunState) *Aggregator {
	return &Aggregator{
		state:  state,
		byDate: make(map[string]*domain.DailySales),
	}
}

// Ingest converte e acumula um lote de eventos.
// Eventos que não podem ser convertidos são descartados e devolvidos como
// erros; os demais eventos do lote são acumulados normalmente.
func (a *Aggregator) Ingest(events []openseadomain.AssetEvent) []error {
	var skipped []error

	ingested := 0
	for i, event := range events {
		sale, err := ToSaleEvent(event)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("evento %d da página: %w", i, err))
			continue
		}
		a.add(sale)
		ingested++
	}

	a.state.AddTransactions(ingested)
	a.state.SkipRecords(len(skipped))

	return skipped
}

func (a *Aggregator) add(sale domain.SaleEvent) {
	day, ok := a.byDate[sale.Date]
	if !ok {
		day = &domain.DailySales{Date: sale.Date}
		a.byDate[sale.Date] = day
		a.order = append(a.order, sale.Date)
	}
	day.Add(sale.Price)
}

// Days retorna os agregados diários na ordem da primeira observação
func (a *Aggregator) Days() []*domain.DailySales {
	days := make([]*domain.DailySales, 0, len(a.order))
	for _, date := range a.order {
		days = append(days, a.byDate[date])
	}
	return days
}

// ToSaleEvent calcula o preço na moeda nativa: total_price / 10^decimals * eth_price
func ToSaleEvent(event openseadomain.AssetEvent) (domain.SaleEvent, error) {
	if event.PaymentToken == nil {
		return domain.SaleEvent{}, ErrMissingPaymentToken
	}

	if event.EventTimestamp == "" {
		return domain.SaleEvent{}, ErrMissingTimestamp
	}

	totalPrice, err := decimal.NewFromString(event.TotalPrice.String())
	if err != nil {
		return domain.SaleEvent{}, fmt.Errorf("%w: total_price %q", ErrInvalidAmount, event.TotalPrice)
	}

	ethPrice, err := decimal.NewFromString(event.PaymentToken.EthPrice.String())
	if err != nil {
		return domain.SaleEvent{}, fmt.Errorf("%w: eth_price %q", ErrInvalidAmount, event.PaymentToken.EthPrice)
	}

	price := totalPrice.Shift(-int32(event.PaymentToken.Decimals)).Mul(ethPrice)

	return domain.SaleEvent{
		Date:  utils.DateFromTimestamp(event.EventTimestamp),
		Price: price,
	}, nil
}
