package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/zsmartex/stockapi/models"
)

type stubTradeStore struct {
	trades map[string][]*models.Trade
	finds  int
}

func newStubTradeStore() *stubTradeStore {
	return &stubTradeStore{trades: make(map[string][]*models.Trade)}
}

func (s *stubTradeStore) AddTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error) {
	s.trades[trade.TickerSymbol] = append(s.trades[trade.TickerSymbol], trade)
	return trade, nil
}

func (s *stubTradeStore) FindTradesBySymbol(ctx context.Context, tickerSymbol string) ([]*models.Trade, error) {
	s.finds++
	return s.trades[tickerSymbol], nil
}

func (s *stubTradeStore) ListSymbols(ctx context.Context) ([]string, error) {
	symbols := make([]string, 0, len(s.trades))
	for symbol := range s.trades {
		symbols = append(symbols, symbol)
	}

	return symbols, nil
}

func (s *stubTradeStore) ExistsByTradeID(ctx context.Context, tradeID uuid.UUID) (bool, error) {
	for _, trades := range s.trades {
		for _, trade := range trades {
			if trade.TradeID == tradeID {
				return true, nil
			}
		}
	}

	return false, nil
}
