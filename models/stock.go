package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/zsmartex/stockapi/controllers/entities"
)

type Stock struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	TickerSymbol string          `json:"ticker_symbol" gorm:"uniqueIndex;not null"`
	CurrentValue decimal.Decimal `json:"current_value" gorm:"type:decimal(32,16);not null;default:0"`
	Name         null.String     `json:"name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (s *Stock) ToEntity() entities.StockEntity {
	return entities.StockEntity{
		ID:           s.ID,
		TickerSymbol: s.TickerSymbol,
		CurrentValue: s.CurrentValue,
		Name:         s.Name,
		UpdatedAt:    s.UpdatedAt,
	}
}
