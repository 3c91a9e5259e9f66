package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zsmartex/stockapi/controllers/entities"
)

type Trade struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	TradeID      uuid.UUID       `json:"trade_id" gorm:"type:uuid;uniqueIndex;not null"`
	TickerSymbol string          `json:"ticker_symbol" gorm:"index;not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(32,16);not null"`
	Shares       decimal.Decimal `json:"shares" gorm:"type:decimal(32,16);not null"`
	BrokerID     int64           `json:"broker_id"`
	TradeTime    time.Time       `json:"trade_time"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Notional is price times shares.
func (t *Trade) Notional() decimal.Decimal {
	return t.Price.Mul(t.Shares)
}

func (t *Trade) ToEntity() entities.TradeEntity {
	return entities.TradeEntity{
		ID:           t.ID,
		TradeID:      t.TradeID,
		TickerSymbol: t.TickerSymbol,
		Price:        t.Price,
		Shares:       t.Shares,
		BrokerID:     t.BrokerID,
		TradeTime:    t.TradeTime,
	}
}

// InfluxPoint returns the tags and fields written to the "trades" measurement.
func (t *Trade) InfluxPoint() (map[string]string, map[string]interface{}) {
	price, _ := t.Price.Float64()
	shares, _ := t.Shares.Float64()
	total, _ := t.Notional().Float64()

	tags := map[string]string{"ticker_symbol": t.TickerSymbol}
	fields := map[string]interface{}{
		"id":         t.ID,
		"trade_id":   t.TradeID.String(),
		"price":      price,
		"shares":     shares,
		"total":      total,
		"broker_id":  t.BrokerID,
		"trade_time": t.TradeTime.UnixNano(),
	}

	return tags, fields
}
