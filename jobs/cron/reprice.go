package cron

import (
	"context"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/models"
)

type StockLister interface {
	GetAllStocks(ctx context.Context) ([]*models.Stock, error)
}

type PriceReconciler interface {
	GetTradedSymbols(ctx context.Context) ([]string, error)
	ReconcileAveragePrice(ctx context.Context, tickerSymbol string, current decimal.Decimal) (bool, error)
	RefreshAveragePrice(ctx context.Context, tickerSymbol string) (decimal.Decimal, error)
}

// RepriceJob periodically rewrites stock prices that drifted from the
// average of their trades, e.g. after a failed update during recording.
type RepriceJob struct {
	Stocks     StockLister
	Reconciler PriceReconciler
	Interval   time.Duration
	Logger     logrus.FieldLogger
}

func (j *RepriceJob) Process(ctx context.Context) {
	seconds := uint64(j.Interval / time.Second)
	if seconds == 0 {
		seconds = 1
	}

	s := gocron.NewScheduler()
	s.Every(seconds).Seconds().Do(j.run, ctx)
	stopped := s.Start()

	<-ctx.Done()
	stopped <- true
	s.Clear()
}

func (j *RepriceJob) run(ctx context.Context) {
	repriced, err := j.Reprice(ctx)
	if err != nil {
		j.Logger.Errorf("Reprice failed: %v", err)
	}
	if repriced > 0 {
		j.Logger.Infof("Repriced %d stocks", repriced)
	}
}

// Reprice reconciles every stock and creates the stocks of traded symbols
// that have none. It returns how many prices changed, keeps going after a
// per-symbol failure and returns the first error.
func (j *RepriceJob) Reprice(ctx context.Context) (int, error) {
	stocks, err := j.Stocks.GetAllStocks(ctx)
	if err != nil {
		return 0, err
	}

	symbols, err := j.Reconciler.GetTradedSymbols(ctx)
	if err != nil {
		return 0, err
	}

	var firstErr error
	fail := func(tickerSymbol string, err error) {
		j.Logger.WithField("ticker_symbol", tickerSymbol).Errorf("Failed to reprice stock: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	repriced := 0
	known := make(map[string]bool, len(stocks))

	for _, stock := range stocks {
		known[stock.TickerSymbol] = true

		changed, err := j.Reconciler.ReconcileAveragePrice(ctx, stock.TickerSymbol, stock.CurrentValue)
		if err != nil {
			fail(stock.TickerSymbol, err)
			continue
		}

		if changed {
			repriced++
		}
	}

	for _, symbol := range symbols {
		if known[symbol] {
			continue
		}

		if _, err := j.Reconciler.RefreshAveragePrice(ctx, symbol); err != nil {
			fail(symbol, err)
			continue
		}

		repriced++
	}

	return repriced, firstErr
}
