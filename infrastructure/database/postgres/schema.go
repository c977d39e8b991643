package postgres

import "context"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sales_report_runs (
		id                     VARCHAR(16) PRIMARY KEY,
		collection             TEXT        NOT NULL,
		collection_name        TEXT,
		transactions_processed BIGINT      NOT NULL,
		requests_issued        BIGINT      NOT NULL,
		started_at             TIMESTAMPTZ NOT NULL,
		finished_at            TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales_report_rows (
		run_id     VARCHAR(16) NOT NULL REFERENCES sales_report_runs (id) ON DELETE CASCADE,
		date       DATE        NOT NULL,
		volume     NUMERIC     NOT NULL,
		avg_price  NUMERIC     NOT NULL,
		floor      NUMERIC     NOT NULL,
		num_sales  INTEGER     NOT NULL,
		PRIMARY KEY (run_id, date)
	)`,
}

// EnsureSchema cria as tabelas do relatório se ainda não existirem
func EnsureSchema(ctx context.Context, q Queryer) error {
	for _, stmt := range schema {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
