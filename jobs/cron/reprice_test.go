package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/repositories/memory"
	"github.com/zsmartex/stockapi/services"
)

type failingReconciler struct {
	*services.TradeService
	symbol string
	err    error
}

func (f *failingReconciler) ReconcileAveragePrice(ctx context.Context, tickerSymbol string, current decimal.Decimal) (bool, error) {
	if tickerSymbol == f.symbol {
		return false, f.err
	}

	return f.TradeService.ReconcileAveragePrice(ctx, tickerSymbol, current)
}

func setup(t *testing.T) (*RepriceJob, *memory.TradeStore, *memory.StockStore) {
	logger, _ := test.NewNullLogger()

	trades := memory.NewTradeStore()
	stocks := memory.NewStockStore()
	stockService := services.NewStockService(stocks, nil, 0, logger)

	return &RepriceJob{
		Stocks:     stockService,
		Reconciler: services.NewTradeService(trades, stockService, logger),
		Interval:   time.Second,
		Logger:     logger,
	}, trades, stocks
}

func addTrade(t *testing.T, trades *memory.TradeStore, symbol string, price, shares int64) {
	_, err := trades.AddTrade(context.Background(), &models.Trade{
		TradeID:      uuid.New(),
		TickerSymbol: symbol,
		Price:        decimal.NewFromInt(price),
		Shares:       decimal.NewFromInt(shares),
	})
	require.NoError(t, err)
}

func TestReprice(t *testing.T) {
	ctx := context.Background()
	job, trades, stocks := setup(t)

	// trades stored without refreshing the stock, as after a failed update
	addTrade(t, trades, "AAPL", 150, 10)
	addTrade(t, trades, "AAPL", 155, 5)
	require.NoError(t, stocks.UpdatePrice(ctx, "AAPL", decimal.NewFromInt(150)))
	require.NoError(t, stocks.UpdatePrice(ctx, "IBM", decimal.NewFromInt(120)))

	repriced, err := job.Reprice(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repriced)

	stock, err := stocks.FindBySymbol(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "151.67", stock.CurrentValue.String())

	stock, err = stocks.FindBySymbol(ctx, "IBM")
	require.NoError(t, err)
	assert.Equal(t, "120", stock.CurrentValue.String())

	repriced, err = job.Reprice(ctx)
	require.NoError(t, err)
	assert.Zero(t, repriced)
}

func TestRepriceContinuesAfterError(t *testing.T) {
	ctx := context.Background()
	job, trades, stocks := setup(t)

	reconcileErr := errors.New("deadlock detected")
	job.Reconciler = &failingReconciler{
		TradeService: job.Reconciler.(*services.TradeService),
		symbol:       "AAPL",
		err:          reconcileErr,
	}

	addTrade(t, trades, "MSFT", 300, 1)
	require.NoError(t, stocks.UpdatePrice(ctx, "AAPL", decimal.NewFromInt(1)))
	require.NoError(t, stocks.UpdatePrice(ctx, "MSFT", decimal.NewFromInt(1)))

	repriced, err := job.Reprice(ctx)
	assert.ErrorIs(t, err, reconcileErr)
	assert.Equal(t, 1, repriced)

	stock, err := stocks.FindBySymbol(ctx, "MSFT")
	require.NoError(t, err)
	assert.Equal(t, "300", stock.CurrentValue.String())
}

func TestProcessStopsOnCancel(t *testing.T) {
	job, _, _ := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Process(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Process did not return after cancel")
	}
}

func TestRepriceCreatesMissingStock(t *testing.T) {
	ctx := context.Background()
	job, trades, stocks := setup(t)

	// first trade of a symbol persisted, stock upsert never happened
	addTrade(t, trades, "NVDA", 400, 1)
	addTrade(t, trades, "NVDA", 410, 1)

	_, err := stocks.FindBySymbol(ctx, "NVDA")
	require.ErrorIs(t, err, services.ErrNotFound)

	repriced, err := job.Reprice(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repriced)

	stock, err := stocks.FindBySymbol(ctx, "NVDA")
	require.NoError(t, err)
	assert.Equal(t, "405", stock.CurrentValue.String())

	repriced, err = job.Reprice(ctx)
	require.NoError(t, err)
	assert.Zero(t, repriced)
}
