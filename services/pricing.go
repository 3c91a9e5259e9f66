package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zsmartex/stockapi/models"
)

// PricePrecision is the number of decimal places kept for average prices.
const PricePrecision = 2

type PricingEngine struct {
	trades TradeStore
}

func NewPricingEngine(trades TradeStore) *PricingEngine {
	return &PricingEngine{trades: trades}
}

// ComputeAveragePrice returns the share-weighted average price of every trade
// recorded for tickerSymbol, or zero when there are none.
func (p *PricingEngine) ComputeAveragePrice(ctx context.Context, tickerSymbol string) (decimal.Decimal, error) {
	if err := validateTickerSymbol(tickerSymbol); err != nil {
		return decimal.Zero, err
	}

	trades, err := p.trades.FindTradesBySymbol(ctx, tickerSymbol)
	if err != nil {
		return decimal.Zero, err
	}

	return WeightedAverage(trades), nil
}

// WeightedAverage computes sum(price*shares) / sum(shares) rounded half away
// from zero to PricePrecision places. Zero total shares yields zero.
func WeightedAverage(trades []*models.Trade) decimal.Decimal {
	total := decimal.Zero
	shares := decimal.Zero

	for _, trade := range trades {
		total = total.Add(trade.Notional())
		shares = shares.Add(trade.Shares)
	}

	if shares.IsZero() {
		return decimal.Zero
	}

	return total.DivRound(shares, PricePrecision)
}
