package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/repositories/memory"
	"github.com/zsmartex/stockapi/services"
)

type recordingObserver struct {
	mutex    sync.Mutex
	trades   []*models.Trade
	averages []decimal.Decimal
	err      error
}

func (o *recordingObserver) OnTradeRecorded(ctx context.Context, trade *models.Trade, averagePrice decimal.Decimal) error {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.trades = append(o.trades, trade)
	o.averages = append(o.averages, averagePrice)

	return o.err
}

type failingStockUpdater struct {
	err error
}

func (f *failingStockUpdater) UpdateStockPrice(ctx context.Context, tickerSymbol string, price decimal.Decimal) error {
	return f.err
}

type failingTradeStore struct {
	*memory.TradeStore
	err error
}

func (f *failingTradeStore) AddTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error) {
	return nil, f.err
}

func newTrade(symbol string, price, shares string) *models.Trade {
	return &models.Trade{
		TradeID:      uuid.New(),
		TickerSymbol: symbol,
		Price:        decimal.RequireFromString(price),
		Shares:       decimal.RequireFromString(shares),
		BrokerID:     1,
		TradeTime:    time.Now(),
	}
}

type suiteTradeServiceTester struct {
	suite.Suite

	ctx      context.Context
	trades   *memory.TradeStore
	stocks   *memory.StockStore
	observer *recordingObserver
	logger   *logrus.Logger
	hook     *test.Hook
	service  *services.TradeService
}

func (s *suiteTradeServiceTester) SetupTest() {
	s.ctx = context.Background()
	s.trades = memory.NewTradeStore()
	s.stocks = memory.NewStockStore()
	s.observer = &recordingObserver{}
	s.logger, s.hook = test.NewNullLogger()

	stockService := services.NewStockService(s.stocks, nil, 0, s.logger)
	s.service = services.NewTradeService(s.trades, stockService, s.logger, s.observer)
}

func (s *suiteTradeServiceTester) TestRecordTrade() {
	trade := newTrade("AAPL", "100", "10")

	recorded, err := s.service.RecordTrade(s.ctx, trade)
	s.Require().NoError(err)
	s.Equal(trade.TradeID, recorded.TradeID)
	s.NotZero(recorded.ID)

	processed, err := s.service.IsTradeIDProcessed(s.ctx, trade.TradeID)
	s.NoError(err)
	s.True(processed)
}

func (s *suiteTradeServiceTester) TestRecordTradeCreatesStock() {
	_, err := s.service.RecordTrade(s.ctx, newTrade("NVDA", "412.50", "4"))
	s.Require().NoError(err)

	stock, err := s.stocks.FindBySymbol(s.ctx, "NVDA")
	s.Require().NoError(err)
	s.Equal("412.5", stock.CurrentValue.String())
}

func (s *suiteTradeServiceTester) TestRecordTradeUpdatesStockToAverage() {
	for _, trade := range []*models.Trade{
		newTrade("AAPL", "100", "5"),
		newTrade("AAPL", "110", "7"),
		newTrade("AAPL", "90", "3"),
	} {
		_, err := s.service.RecordTrade(s.ctx, trade)
		s.Require().NoError(err)
	}

	stock, err := s.stocks.FindBySymbol(s.ctx, "AAPL")
	s.Require().NoError(err)
	s.Equal("102.67", stock.CurrentValue.StringFixed(2))

	average, err := s.service.CalculateAverageStockPrice(s.ctx, "AAPL")
	s.NoError(err)
	s.True(average.Equal(stock.CurrentValue))
}

func (s *suiteTradeServiceTester) TestRecordTradeDuplicate() {
	trade := newTrade("AAPL", "150", "10")

	_, err := s.service.RecordTrade(s.ctx, trade)
	s.Require().NoError(err)

	_, err = s.service.RecordTrade(s.ctx, trade)
	s.Require().Error(err)
	s.True(services.IsDuplicateTrade(err))
	s.Contains(err.Error(), trade.TradeID.String())

	trades, err := s.service.GetTradesByTickerSymbol(s.ctx, "AAPL")
	s.NoError(err)
	s.Len(trades, 1)
	s.Len(s.observer.trades, 1)
}

func (s *suiteTradeServiceTester) TestRecordTradeConcurrentDuplicates() {
	trade := newTrade("AAPL", "150", "10")

	var (
		wg         sync.WaitGroup
		mutex      sync.Mutex
		succeeded  int
		duplicates int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			submitted := *trade
			_, err := s.service.RecordTrade(s.ctx, &submitted)

			mutex.Lock()
			defer mutex.Unlock()
			if err == nil {
				succeeded++
			} else if services.IsDuplicateTrade(err) {
				duplicates++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(19, duplicates)
	s.Equal(1, s.trades.Count())
}

func (s *suiteTradeServiceTester) TestRecordTradeConcurrentSymbol() {
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.service.RecordTrade(s.ctx, newTrade("MSFT", decimal.NewFromInt(int64(100+i)).String(), "1"))
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	stock, err := s.stocks.FindBySymbol(s.ctx, "MSFT")
	s.Require().NoError(err)

	// 100..129 averages to 114.5
	s.Equal("114.5", stock.CurrentValue.String())
}

func (s *suiteTradeServiceTester) TestRecordTradeInvalid() {
	noID := newTrade("AAPL", "1", "1")
	noID.TradeID = uuid.Nil

	negativePrice := newTrade("AAPL", "-1", "1")
	zeroShares := newTrade("AAPL", "1", "0")

	for name, trade := range map[string]*models.Trade{
		"nil":            nil,
		"blank symbol":   newTrade("   ", "1", "1"),
		"empty symbol":   newTrade("", "1", "1"),
		"missing id":     noID,
		"negative price": negativePrice,
		"zero shares":    zeroShares,
	} {
		s.Run(name, func() {
			_, err := s.service.RecordTrade(s.ctx, trade)
			s.ErrorIs(err, services.ErrInvalidArgument)
		})
	}

	s.Zero(s.trades.Count())
	s.Empty(s.observer.trades)
}

func (s *suiteTradeServiceTester) TestRecordTradeStorageFailure() {
	storageErr := errors.New("connection refused")
	store := &failingTradeStore{TradeStore: memory.NewTradeStore(), err: storageErr}
	service := services.NewTradeService(store, services.NewStockService(s.stocks, nil, 0, s.logger), s.logger)

	_, err := service.RecordTrade(s.ctx, newTrade("AAPL", "100", "1"))
	s.ErrorIs(err, storageErr)

	_, err = s.stocks.FindBySymbol(s.ctx, "AAPL")
	s.ErrorIs(err, services.ErrNotFound)
}

func (s *suiteTradeServiceTester) TestRecordTradeStockUpdateFailure() {
	updateErr := errors.New("stock table locked")
	service := services.NewTradeService(s.trades, &failingStockUpdater{err: updateErr}, s.logger, s.observer)

	trade := newTrade("AAPL", "100", "1")
	_, err := service.RecordTrade(s.ctx, trade)
	s.ErrorIs(err, updateErr)

	// the trade stays recorded and a retry is a duplicate
	processed, err := service.IsTradeIDProcessed(s.ctx, trade.TradeID)
	s.NoError(err)
	s.True(processed)
	s.Empty(s.observer.trades)
	s.NotEmpty(s.hook.AllEntries())
}

func (s *suiteTradeServiceTester) TestObserverErrorIgnored() {
	s.observer.err = errors.New("nats: connection closed")

	_, err := s.service.RecordTrade(s.ctx, newTrade("AAPL", "100", "2"))
	s.NoError(err)

	s.Require().Len(s.observer.averages, 1)
	s.Equal("100", s.observer.averages[0].String())
	s.Equal(logrus.WarnLevel, s.hook.LastEntry().Level)
}

func (s *suiteTradeServiceTester) TestGetTradesByTickerSymbol() {
	first := newTrade("AAPL", "100", "1")
	second := newTrade("AAPL", "101", "1")
	for _, trade := range []*models.Trade{first, newTrade("MSFT", "300", "1"), second} {
		_, err := s.service.RecordTrade(s.ctx, trade)
		s.Require().NoError(err)
	}

	trades, err := s.service.GetTradesByTickerSymbol(s.ctx, "AAPL")
	s.Require().NoError(err)
	s.Require().Len(trades, 2)
	s.Equal(first.TradeID, trades[0].TradeID)
	s.Equal(second.TradeID, trades[1].TradeID)

	trades, err = s.service.GetTradesByTickerSymbol(s.ctx, "TSLA")
	s.NoError(err)
	s.NotNil(trades)
	s.Empty(trades)

	_, err = s.service.GetTradesByTickerSymbol(s.ctx, "")
	s.ErrorIs(err, services.ErrInvalidArgument)
}

func (s *suiteTradeServiceTester) TestIsTradeIDProcessedUnknown() {
	processed, err := s.service.IsTradeIDProcessed(s.ctx, uuid.New())
	s.NoError(err)
	s.False(processed)
}

func (s *suiteTradeServiceTester) TestCalculateAverageStockPrice() {
	average, err := s.service.CalculateAverageStockPrice(s.ctx, "AAPL")
	s.NoError(err)
	s.True(average.IsZero())

	_, err = s.service.CalculateAverageStockPrice(s.ctx, " ")
	s.ErrorIs(err, services.ErrInvalidArgument)
}

func (s *suiteTradeServiceTester) TestReconcileAveragePrice() {
	_, err := s.service.RecordTrade(s.ctx, newTrade("AAPL", "150", "10"))
	s.Require().NoError(err)
	_, err = s.service.RecordTrade(s.ctx, newTrade("AAPL", "155", "5"))
	s.Require().NoError(err)

	changed, err := s.service.ReconcileAveragePrice(s.ctx, "AAPL", decimal.RequireFromString("151.67"))
	s.NoError(err)
	s.False(changed)

	s.Require().NoError(s.stocks.UpdatePrice(s.ctx, "AAPL", decimal.NewFromInt(1)))

	changed, err = s.service.ReconcileAveragePrice(s.ctx, "AAPL", decimal.NewFromInt(1))
	s.NoError(err)
	s.True(changed)

	stock, err := s.stocks.FindBySymbol(s.ctx, "AAPL")
	s.Require().NoError(err)
	s.Equal("151.67", stock.CurrentValue.String())
}

func (s *suiteTradeServiceTester) TestReconcileWithoutTrades() {
	s.Require().NoError(s.stocks.UpdatePrice(s.ctx, "IBM", decimal.NewFromInt(120)))

	changed, err := s.service.ReconcileAveragePrice(s.ctx, "IBM", decimal.NewFromInt(120))
	s.NoError(err)
	s.False(changed)

	stock, err := s.stocks.FindBySymbol(s.ctx, "IBM")
	s.Require().NoError(err)
	s.Equal("120", stock.CurrentValue.String())
}

func (s *suiteTradeServiceTester) TestRefreshAveragePrice() {
	average, err := s.service.RefreshAveragePrice(s.ctx, "ORCL")
	s.NoError(err)
	s.True(average.IsZero())

	stock, err := s.stocks.FindBySymbol(s.ctx, "ORCL")
	s.Require().NoError(err)
	s.True(stock.CurrentValue.IsZero())
}

func (s *suiteTradeServiceTester) TestGetTradedSymbols() {
	for _, symbol := range []string{"MSFT", "AAPL"} {
		_, err := s.service.RecordTrade(s.ctx, newTrade(symbol, "10", "1"))
		s.Require().NoError(err)
	}

	symbols, err := s.service.GetTradedSymbols(s.ctx)
	s.NoError(err)
	s.Equal([]string{"AAPL", "MSFT"}, symbols)
}

func TestTradeService(t *testing.T) {
	suite.Run(t, new(suiteTradeServiceTester))
}
