package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
)

type StockEntity struct {
	ID           int64           `json:"id"`
	TickerSymbol string          `json:"ticker_symbol"`
	CurrentValue decimal.Decimal `json:"current_value"`
	Name         null.String     `json:"name"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
