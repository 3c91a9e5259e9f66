package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zsmartex/stockapi/models"
)

type PointWriter interface {
	NewPoint(name string, tags map[string]string, fields map[string]interface{}) error
}

// InfluxTradeWriter writes every recorded trade to the "trades" measurement.
type InfluxTradeWriter struct {
	writer PointWriter
}

func NewInfluxTradeWriter(writer PointWriter) *InfluxTradeWriter {
	return &InfluxTradeWriter{writer: writer}
}

func (w *InfluxTradeWriter) OnTradeRecorded(ctx context.Context, trade *models.Trade, averagePrice decimal.Decimal) error {
	tags, fields := trade.InfluxPoint()
	fields["average_price"], _ = averagePrice.Float64()

	return w.writer.NewPoint("trades", tags, fields)
}
