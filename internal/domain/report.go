package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow é o resumo de um dia de vendas
type ReportRow struct {
	Date         string
	Volume       decimal.Decimal
	AveragePrice decimal.Decimal
	FloorPrice   decimal.Decimal
	SaleCount    int
}

// ReportHeader é a primeira linha do CSV gerado
const ReportHeader = `Date,Volume,"Avg Price",Floor,"Num Sales"`

// SalesReport é o relatório final de uma execução, pronto para ser persistido
type SalesReport struct {
	RunID                 string
	Collection            string
	CollectionName        string
	TransactionsProcessed int64
	RequestsIssued        int64
	StartedAt             time.Time
	FinishedAt            time.Time
	Rows                  []ReportRow
}
