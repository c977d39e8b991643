package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/opensea-sales-report/internal/domain"
)

func prices(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.RequireFromString(v))
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		prices      []decimal.Decimal
		wantVolume  string
		wantAverage string
		wantFloor   string
		wantCount   int
	}{
		{
			name:        "arredondamento metade para cima",
			prices:      prices("1.005", "1.005"),
			wantVolume:  "2.01",
			wantAverage: "1.01",
			wantFloor:   "1.005",
			wantCount:   2,
		},
		{
			name:        "média com dízima",
			prices:      prices("1", "1", "2"),
			wantVolume:  "4",
			wantAverage: "1.33",
			wantFloor:   "1",
			wantCount:   3,
		},
		{
			name:        "uma única venda",
			prices:      prices("3000"),
			wantVolume:  "3000",
			wantAverage: "3000",
			wantFloor:   "3000",
			wantCount:   1,
		},
		{
			name:        "piso é o menor preço independente da ordem",
			prices:      prices("0.5", "0.12", "7.25"),
			wantVolume:  "7.87",
			wantAverage: "2.62",
			wantFloor:   "0.12",
			wantCount:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Summarize(&domain.DailySales{Date: "2022-01-01", Prices: tt.prices})

			assert.Equal(t, "2022-01-01", row.Date)
			assert.Equal(t, tt.wantVolume, row.Volume.String())
			assert.Equal(t, tt.wantAverage, row.AveragePrice.String())
			assert.Equal(t, tt.wantFloor, row.FloorPrice.String())
			assert.Equal(t, tt.wantCount, row.SaleCount)
		})
	}
}

func TestBuild(t *testing.T) {
	days := []*domain.DailySales{
		{Date: "2022-01-02", Prices: prices("3000", "1000")},
		{Date: "2022-01-01", Prices: prices("1.005", "1.005")},
	}

	rows, text := Build(days)
	require.Len(t, rows, 2)

	expected := "Date,Volume,\"Avg Price\",Floor,\"Num Sales\"\n" +
		"2022-01-02,4000,2000,1000,2\n" +
		"2022-01-01,2.01,1.01,1.005,2\n"
	assert.Equal(t, expected, text)

	total := 0
	for _, row := range rows {
		total += row.SaleCount
	}
	assert.Equal(t, 4, total)
}

func TestBuild_Empty(t *testing.T) {
	rows, text := Build(nil)

	assert.Empty(t, rows)
	assert.Equal(t, "Date,Volume,\"Avg Price\",Floor,\"Num Sales\"\n", text)
}
