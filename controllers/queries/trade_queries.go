package queries

import (
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
)

type RecordTradePayload struct {
	TradeID      string          `json:"trade_id" form:"trade_id" validate:"required"`
	TickerSymbol string          `json:"ticker_symbol" form:"ticker_symbol" validate:"required"`
	Price        decimal.Decimal `json:"price" form:"price"`
	Shares       decimal.Decimal `json:"shares" form:"shares"`
	BrokerID     int64           `json:"broker_id" form:"broker_id"`
	TradeTime    time.Time       `json:"trade_time" form:"trade_time"`
}

func (p RecordTradePayload) Messages() map[string]string {
	return validate.MS{
		"required": "trade.missing_{field}",
	}
}
