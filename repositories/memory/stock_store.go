package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/shopspring/decimal"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

var _ services.StockStore = (*StockStore)(nil)

// StockStore keeps stocks ordered by ticker symbol.
type StockStore struct {
	mutex  sync.RWMutex
	stocks *treemap.Map
	lastID int64
}

func NewStockStore() *StockStore {
	return &StockStore{
		stocks: treemap.NewWithStringComparator(),
	}
}

func (s *StockStore) FindBySymbol(ctx context.Context, tickerSymbol string) (*models.Stock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, found := s.stocks.Get(tickerSymbol)
	if !found {
		return nil, fmt.Errorf("%w: stock %s", services.ErrNotFound, tickerSymbol)
	}

	stock := *value.(*models.Stock)
	return &stock, nil
}

func (s *StockStore) UpdatePrice(ctx context.Context, tickerSymbol string, price decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()

	if value, found := s.stocks.Get(tickerSymbol); found {
		stock := value.(*models.Stock)
		stock.CurrentValue = price
		stock.UpdatedAt = now
		return nil
	}

	s.lastID++
	s.stocks.Put(tickerSymbol, &models.Stock{
		ID:           s.lastID,
		TickerSymbol: tickerSymbol,
		CurrentValue: price,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	return nil
}

func (s *StockStore) ListAll(ctx context.Context) ([]*models.Stock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stocks := make([]*models.Stock, 0, s.stocks.Size())
	for _, value := range s.stocks.Values() {
		stock := *value.(*models.Stock)
		stocks = append(stocks, &stock)
	}

	return stocks, nil
}

func (s *StockStore) Insert(ctx context.Context, stock *models.Stock) (*models.Stock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, found := s.stocks.Get(stock.TickerSymbol); found {
		return nil, fmt.Errorf("%w: %s", services.ErrStockExists, stock.TickerSymbol)
	}

	now := time.Now()
	s.lastID++
	record := *stock
	record.ID = s.lastID
	record.CreatedAt = now
	record.UpdatedAt = now
	s.stocks.Put(record.TickerSymbol, &record)

	stored := record
	return &stored, nil
}

func (s *StockStore) Delete(ctx context.Context, tickerSymbol string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, found := s.stocks.Get(tickerSymbol); !found {
		return fmt.Errorf("%w: stock %s", services.ErrNotFound, tickerSymbol)
	}

	s.stocks.Remove(tickerSymbol)
	return nil
}
