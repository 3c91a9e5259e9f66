package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

func TestTradeStore(t *testing.T) {
	ctx := context.Background()
	store := NewTradeStore()

	trade := &models.Trade{TradeID: uuid.New(), TickerSymbol: "AAPL", Price: decimal.NewFromInt(10), Shares: decimal.NewFromInt(1)}

	recorded, err := store.AddTrade(ctx, trade)
	require.NoError(t, err)
	assert.Equal(t, int64(1), recorded.ID)
	assert.Zero(t, trade.ID)

	_, err = store.AddTrade(ctx, trade)
	assert.True(t, services.IsDuplicateTrade(err))
	assert.Equal(t, 1, store.Count())

	// returned records are copies
	recorded.Price = decimal.NewFromInt(99)
	trades, err := store.FindTradesBySymbol(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "10", trades[0].Price.String())

	trades, err = store.FindTradesBySymbol(ctx, "MSFT")
	require.NoError(t, err)
	assert.NotNil(t, trades)
	assert.Empty(t, trades)

	exists, err := store.ExistsByTradeID(ctx, trade.TradeID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTradeStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTradeStore().AddTrade(ctx, &models.Trade{TradeID: uuid.New(), TickerSymbol: "AAPL"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStockStore(t *testing.T) {
	ctx := context.Background()
	store := NewStockStore()

	require.NoError(t, store.UpdatePrice(ctx, "MSFT", decimal.NewFromInt(300)))
	require.NoError(t, store.UpdatePrice(ctx, "AAPL", decimal.NewFromInt(150)))
	require.NoError(t, store.UpdatePrice(ctx, "MSFT", decimal.NewFromInt(310)))

	stocks, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, stocks, 2)
	assert.Equal(t, "AAPL", stocks[0].TickerSymbol)
	assert.Equal(t, "310", stocks[1].CurrentValue.String())

	_, err = store.Insert(ctx, &models.Stock{TickerSymbol: "AAPL"})
	assert.ErrorIs(t, err, services.ErrStockExists)

	require.NoError(t, store.Delete(ctx, "AAPL"))
	_, err = store.FindBySymbol(ctx, "AAPL")
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "AAPL"), services.ErrNotFound)
}

func TestBrokerStore(t *testing.T) {
	ctx := context.Background()
	store := NewBrokerStore(&models.Broker{BrokerID: 3, BrokerName: "E*TRADE"})

	broker, err := store.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "E*TRADE", broker.BrokerName)

	broker, err = store.FindByName(ctx, "E*TRADE")
	require.NoError(t, err)
	assert.Equal(t, int64(3), broker.BrokerID)

	_, err = store.FindByName(ctx, "Robinhood")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestTradeStoreListSymbols(t *testing.T) {
	ctx := context.Background()
	store := NewTradeStore()

	for _, symbol := range []string{"TSLA", "AAPL", "TSLA"} {
		_, err := store.AddTrade(ctx, &models.Trade{TradeID: uuid.New(), TickerSymbol: symbol})
		require.NoError(t, err)
	}

	symbols, err := store.ListSymbols(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "TSLA"}, symbols)
}
