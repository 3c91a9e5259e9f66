package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeEntity struct {
	ID           int64           `json:"id"`
	TradeID      uuid.UUID       `json:"trade_id"`
	TickerSymbol string          `json:"ticker_symbol"`
	Price        decimal.Decimal `json:"price"`
	Shares       decimal.Decimal `json:"shares"`
	BrokerID     int64           `json:"broker_id"`
	TradeTime    time.Time       `json:"trade_time"`
}

type AveragePriceEntity struct {
	TickerSymbol string          `json:"ticker_symbol"`
	AveragePrice decimal.Decimal `json:"average_price"`
}
