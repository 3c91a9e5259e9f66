package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/models"
)

// StockPriceUpdater receives every recomputed average price.
type StockPriceUpdater interface {
	UpdateStockPrice(ctx context.Context, tickerSymbol string, price decimal.Decimal) error
}

// TradeObserver is notified after a trade has been recorded and its stock
// price refreshed. Errors are logged and never fail the recording.
type TradeObserver interface {
	OnTradeRecorded(ctx context.Context, trade *models.Trade, averagePrice decimal.Decimal) error
}

type TradeService struct {
	trades    TradeStore
	stocks    StockPriceUpdater
	pricing   *PricingEngine
	locks     *symbolLocks
	observers []TradeObserver
	logger    logrus.FieldLogger
}

func NewTradeService(trades TradeStore, stocks StockPriceUpdater, logger logrus.FieldLogger, observers ...TradeObserver) *TradeService {
	return &TradeService{
		trades:    trades,
		stocks:    stocks,
		pricing:   NewPricingEngine(trades),
		locks:     newSymbolLocks(),
		observers: observers,
		logger:    logger,
	}
}

// RecordTrade persists a trade exactly once per trade id and refreshes the
// average price of its ticker symbol. A trade whose price refresh fails stays
// persisted and the refresh error is returned.
func (s *TradeService) RecordTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error) {
	if err := validateTrade(trade); err != nil {
		return nil, err
	}

	processed, err := s.IsTradeIDProcessed(ctx, trade.TradeID)
	if err != nil {
		return nil, err
	}
	if processed {
		return nil, &DuplicateTradeError{TradeID: trade.TradeID}
	}

	// AddTrade is insert-if-absent, so a concurrent submission that passed the
	// check above still ends up here as a duplicate.
	recorded, err := s.trades.AddTrade(ctx, trade)
	if err != nil {
		return nil, err
	}

	logger := s.logger.WithFields(logrus.Fields{
		"ticker_symbol": recorded.TickerSymbol,
		"trade_id":      recorded.TradeID,
	})

	average, err := s.RefreshAveragePrice(ctx, recorded.TickerSymbol)
	if err != nil {
		logger.Errorf("Trade recorded but stock price is stale: %v", err)
		return nil, err
	}

	logger.WithField("average_price", average).Info("Trade recorded")

	for _, observer := range s.observers {
		if err := observer.OnTradeRecorded(ctx, recorded, average); err != nil {
			logger.Warnf("Trade observer failed: %v", err)
		}
	}

	return recorded, nil
}

// RefreshAveragePrice recomputes the average price of tickerSymbol and stores
// it. Refreshes of the same symbol are serialized.
func (s *TradeService) RefreshAveragePrice(ctx context.Context, tickerSymbol string) (decimal.Decimal, error) {
	if err := validateTickerSymbol(tickerSymbol); err != nil {
		return decimal.Zero, err
	}

	unlock := s.locks.Lock(tickerSymbol)
	defer unlock()

	average, err := s.pricing.ComputeAveragePrice(ctx, tickerSymbol)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.stocks.UpdateStockPrice(ctx, tickerSymbol, average); err != nil {
		return decimal.Zero, err
	}

	return average, nil
}

// ReconcileAveragePrice rewrites the stored price of tickerSymbol when it
// differs from the average of its trades. Symbols without trades keep their
// current value.
func (s *TradeService) ReconcileAveragePrice(ctx context.Context, tickerSymbol string, current decimal.Decimal) (bool, error) {
	if err := validateTickerSymbol(tickerSymbol); err != nil {
		return false, err
	}

	unlock := s.locks.Lock(tickerSymbol)
	defer unlock()

	trades, err := s.trades.FindTradesBySymbol(ctx, tickerSymbol)
	if err != nil {
		return false, err
	}

	if len(trades) == 0 {
		return false, nil
	}

	average := WeightedAverage(trades)
	if average.Equal(current) {
		return false, nil
	}

	if err := s.stocks.UpdateStockPrice(ctx, tickerSymbol, average); err != nil {
		return false, err
	}

	return true, nil
}

func (s *TradeService) GetTradesByTickerSymbol(ctx context.Context, tickerSymbol string) ([]*models.Trade, error) {
	if err := validateTickerSymbol(tickerSymbol); err != nil {
		return nil, err
	}

	return s.trades.FindTradesBySymbol(ctx, tickerSymbol)
}

// GetTradedSymbols returns every ticker symbol that has recorded trades.
func (s *TradeService) GetTradedSymbols(ctx context.Context) ([]string, error) {
	return s.trades.ListSymbols(ctx)
}

func (s *TradeService) IsTradeIDProcessed(ctx context.Context, tradeID uuid.UUID) (bool, error) {
	return s.trades.ExistsByTradeID(ctx, tradeID)
}

func (s *TradeService) CalculateAverageStockPrice(ctx context.Context, tickerSymbol string) (decimal.Decimal, error) {
	return s.pricing.ComputeAveragePrice(ctx, tickerSymbol)
}

func validateTrade(trade *models.Trade) error {
	if trade == nil {
		return invalidArgument("trade cannot be nil")
	}

	if trade.TradeID == uuid.Nil {
		return invalidArgument("trade_id is required")
	}

	if err := validateTickerSymbol(trade.TickerSymbol); err != nil {
		return err
	}

	if trade.Price.IsNegative() {
		return invalidArgument("price cannot be negative")
	}

	if !trade.Shares.IsPositive() {
		return invalidArgument("shares must be positive")
	}

	return nil
}
