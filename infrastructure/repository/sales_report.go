package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/opensea-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
)

const (
	salesReportRunsTable = "sales_report_runs"
	salesReportRowsTable = "sales_report_rows"
)

type SalesReportRepository interface {
	Save(ctx context.Context, report *domain.SalesReport) error
}

type salesReportRepository struct {
	conn postgres.Conn
}

func NewSalesReportRepository(conn postgres.Conn) SalesReportRepository {
	return &salesReportRepository{
		conn: conn,
	}
}

// Save grava a execução e todas as linhas do relatório em uma única transação
func (r *salesReportRepository) Save(ctx context.Context, report *domain.SalesReport) error {
	runQuery, runArgs, err := buildInsertRunQuery(report)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rowsQuery, rowsArgs, hasRows, err := buildInsertRowsQuery(report)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, runQuery, runArgs...); err != nil {
			return fmt.Errorf("erro ao inserir execução: %w", err)
		}

		if !hasRows {
			return nil
		}

		if _, err := tx.ExecContext(ctx, rowsQuery, rowsArgs...); err != nil {
			return fmt.Errorf("erro ao inserir linhas do relatório: %w", err)
		}

		return nil
	})
}

func buildInsertRunQuery(report *domain.SalesReport) (string, []interface{}, error) {
	var collectionName interface{}
	if report.CollectionName != "" {
		collectionName = report.CollectionName
	}

	return squirrel.
		Insert(salesReportRunsTable).
		Columns("id", "collection", "collection_name", "transactions_processed", "requests_issued", "started_at", "finished_at").
		Values(
			report.RunID,
			report.Collection,
			collectionName,
			report.TransactionsProcessed,
			report.RequestsIssued,
			report.StartedAt,
			report.FinishedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildInsertRowsQuery monta um INSERT com múltiplos VALUES; hasRows é falso para relatório vazio
func buildInsertRowsQuery(report *domain.SalesReport) (string, []interface{}, bool, error) {
	if len(report.Rows) == 0 {
		return "", nil, false, nil
	}

	builder := squirrel.
		Insert(salesReportRowsTable).
		Columns("run_id", "date", "volume", "avg_price", "floor", "num_sales")

	for _, row := range report.Rows {
		builder = builder.Values(
			report.RunID,
			row.Date,
			row.Volume.String(),
			row.AveragePrice.String(),
			row.FloorPrice.String(),
			row.SaleCount,
		)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return "", nil, false, err
	}

	return query, args, true, nil
}
