package domain

import "github.com/shopspring/decimal"

// SaleEvent representa uma venda já convertida para a moeda nativa
type SaleEvent struct {
	Date  string
	Price decimal.Decimal
}

// DailySales agrupa os preços observados em um mesmo dia
type DailySales struct {
	Date   string
	Prices []decimal.Decimal
}

func (d *DailySales) Add(price decimal.Decimal) {
	d.Prices = append(d.Prices, price)
}

func (d *DailySales) Count() int {
	return len(d.Prices)
}
