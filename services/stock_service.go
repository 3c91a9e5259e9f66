package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/models"
)

// Cache is a JSON key/value cache. GetKey returns an error on a miss.
type Cache interface {
	GetKey(ctx context.Context, key string, dst interface{}) error
	SetKey(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DelKey(ctx context.Context, key string) error
}

type StockService struct {
	stocks   StockStore
	cache    Cache
	cacheTTL time.Duration
	locks    *symbolLocks
	logger   logrus.FieldLogger
}

// NewStockService returns a StockService. A nil cache disables caching.
func NewStockService(stocks StockStore, cache Cache, cacheTTL time.Duration, logger logrus.FieldLogger) *StockService {
	return &StockService{
		stocks:   stocks,
		cache:    cache,
		cacheTTL: cacheTTL,
		locks:    newSymbolLocks(),
		logger:   logger,
	}
}

func stockCacheKey(tickerSymbol string) string {
	return "stockapi:stock:" + tickerSymbol
}

// GetStockByTickerSymbol serves from the cache when present. Misses read the
// store without filling the cache; only writes fill it.
func (s *StockService) GetStockByTickerSymbol(ctx context.Context, tickerSymbol string) (*models.Stock, error) {
	if err := validateTickerSymbol(tickerSymbol); err != nil {
		return nil, err
	}

	if s.cache != nil {
		var cached models.Stock
		if err := s.cache.GetKey(ctx, stockCacheKey(tickerSymbol), &cached); err == nil {
			return &cached, nil
		}
	}

	return s.stocks.FindBySymbol(ctx, tickerSymbol)
}

func (s *StockService) GetAllStocks(ctx context.Context) ([]*models.Stock, error) {
	return s.stocks.ListAll(ctx)
}

// UpdateStockPrice stores price as the current value of tickerSymbol,
// creating the stock when it does not exist yet, and writes the stored row
// through to the cache.
func (s *StockService) UpdateStockPrice(ctx context.Context, tickerSymbol string, price decimal.Decimal) error {
	if err := validateTickerSymbol(tickerSymbol); err != nil {
		return err
	}

	unlock := s.locks.Lock(tickerSymbol)
	defer unlock()

	if err := s.stocks.UpdatePrice(ctx, tickerSymbol, price); err != nil {
		return err
	}

	stock, err := s.stocks.FindBySymbol(ctx, tickerSymbol)
	if err != nil {
		s.invalidate(ctx, tickerSymbol)
		return nil
	}

	s.store(ctx, stock)

	return nil
}

func (s *StockService) AddStock(ctx context.Context, stock *models.Stock) (*models.Stock, error) {
	if stock == nil {
		return nil, invalidArgument("stock cannot be nil")
	}

	if err := validateTickerSymbol(stock.TickerSymbol); err != nil {
		return nil, err
	}

	if stock.CurrentValue.IsNegative() {
		return nil, invalidArgument("current_value cannot be negative")
	}

	unlock := s.locks.Lock(stock.TickerSymbol)
	defer unlock()

	stock, err := s.stocks.Insert(ctx, stock)
	if err != nil {
		return nil, err
	}

	s.store(ctx, stock)

	return stock, nil
}

func (s *StockService) DeleteStock(ctx context.Context, tickerSymbol string) error {
	if err := validateTickerSymbol(tickerSymbol); err != nil {
		return err
	}

	unlock := s.locks.Lock(tickerSymbol)
	defer unlock()

	if err := s.stocks.Delete(ctx, tickerSymbol); err != nil {
		return err
	}

	s.invalidate(ctx, tickerSymbol)

	return nil
}

// store writes stock through to the cache, dropping the key when that fails.
func (s *StockService) store(ctx context.Context, stock *models.Stock) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetKey(ctx, stockCacheKey(stock.TickerSymbol), stock, s.cacheTTL); err != nil {
		s.logger.Warnf("Failed to cache stock %s: %v", stock.TickerSymbol, err)
		s.invalidate(ctx, stock.TickerSymbol)
	}
}

func (s *StockService) invalidate(ctx context.Context, tickerSymbol string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.DelKey(ctx, stockCacheKey(tickerSymbol)); err != nil {
		s.logger.Warnf("Failed to invalidate cached stock %s: %v", tickerSymbol, err)
	}
}
