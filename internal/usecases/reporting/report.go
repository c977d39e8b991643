package reporting

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
	"github.com/vfg2006/opensea-sales-report/pkg/utils"
)

// Build resume os agregados diários e serializa o CSV.
// A ordem das linhas é a mesma dos agregados recebidos.
func Build(days []*domain.DailySales) ([]domain.ReportRow, string) {
	rows := make([]domain.ReportRow, 0, len(days))
	for _, day := range days {
		if day.Count() == 0 {
			continue
		}
		rows = append(rows, Summarize(day))
	}

	return rows, Serialize(rows)
}

// Summarize calcula volume, média, piso e quantidade de um dia
func Summarize(day *domain.DailySales) domain.ReportRow {
	volume := decimal.Sum(day.Prices[0], day.Prices[1:]...)
	count := decimal.NewFromInt(int64(day.Count()))

	return domain.ReportRow{
		Date:         day.Date,
		Volume:       volume,
		AveragePrice: utils.RoundWithTwoDecimalPlace(volume.Div(count)),
		FloorPrice:   decimal.Min(day.Prices[0], day.Prices[1:]...),
		SaleCount:    day.Count(),
	}
}

// Serialize gera o texto CSV. As datas nunca têm vírgula, então não há escape.
func Serialize(rows []domain.ReportRow) string {
	var sb strings.Builder

	sb.WriteString(domain.ReportHeader)
	sb.WriteByte('\n')

	for _, row := range rows {
		sb.WriteString(row.Date)
		sb.WriteByte(',')
		sb.WriteString(row.Volume.String())
		sb.WriteByte(',')
		sb.WriteString(row.AveragePrice.String())
		sb.WriteByte(',')
		sb.WriteString(row.FloorPrice.String())
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(row.SaleCount))
		sb.WriteByte('\n')
	}

	return sb.String()
}
