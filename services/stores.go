package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zsmartex/stockapi/models"
)

// TradeStore persists trades. AddTrade must be an atomic insert-if-absent on
// the trade id and return *DuplicateTradeError when the id already exists.
type TradeStore interface {
	AddTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error)
	FindTradesBySymbol(ctx context.Context, tickerSymbol string) ([]*models.Trade, error)
	ExistsByTradeID(ctx context.Context, tradeID uuid.UUID) (bool, error)
	// ListSymbols returns every ticker symbol with at least one trade, sorted.
	ListSymbols(ctx context.Context) ([]string, error)
}

// StockStore persists stocks. UpdatePrice creates the row when the symbol is
// unknown. FindBySymbol returns ErrNotFound for unknown symbols.
type StockStore interface {
	FindBySymbol(ctx context.Context, tickerSymbol string) (*models.Stock, error)
	UpdatePrice(ctx context.Context, tickerSymbol string, price decimal.Decimal) error
	ListAll(ctx context.Context) ([]*models.Stock, error)
	Insert(ctx context.Context, stock *models.Stock) (*models.Stock, error)
	Delete(ctx context.Context, tickerSymbol string) error
}

type BrokerStore interface {
	FindByID(ctx context.Context, brokerID int64) (*models.Broker, error)
	FindByName(ctx context.Context, brokerName string) (*models.Broker, error)
}
