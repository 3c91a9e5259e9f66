package mq_client

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

var _ services.TradeObserver = (*Publisher)(nil)

// Conn is the publishing side of a *nats.Conn.
type Conn interface {
	Publish(subject string, data []byte) error
}

type Publisher struct {
	conn   Conn
	config *MQClientConfig
}

func NewPublisher(conn Conn, config *MQClientConfig) *Publisher {
	if config == nil {
		config = DefaultConfig()
	}

	return &Publisher{conn: conn, config: config}
}

// Enqueue publishes payload as JSON on the subject configured under id.
// Disabled subjects are skipped.
func (p *Publisher) Enqueue(id string, payload interface{}) error {
	subject, err := p.config.GetSubject(id)
	if err != nil {
		return err
	}

	if !subject.Enabled {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.conn.Publish(subject.Name, data)
}

func (p *Publisher) OnTradeRecorded(ctx context.Context, trade *models.Trade, averagePrice decimal.Decimal) error {
	if err := p.Enqueue(SubjectTradeRecorded, TradeRecordedMessage{
		Trade:        trade.ToEntity(),
		AveragePrice: averagePrice,
	}); err != nil {
		return err
	}

	return p.Enqueue(SubjectStockPriceUpdated, StockPriceUpdatedMessage{
		TickerSymbol: trade.TickerSymbol,
		CurrentValue: averagePrice,
	})
}
