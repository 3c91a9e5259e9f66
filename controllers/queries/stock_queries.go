package queries

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
)

type CreateStockPayload struct {
	TickerSymbol string          `json:"ticker_symbol" form:"ticker_symbol" validate:"required"`
	Name         string          `json:"name" form:"name"`
	CurrentValue decimal.Decimal `json:"current_value" form:"current_value"`
}

func (p CreateStockPayload) Messages() map[string]string {
	return validate.MS{
		"required": "stock.missing_{field}",
	}
}
