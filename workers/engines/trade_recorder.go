package engines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

type Worker interface {
	Process(payload []byte) error
}

// ErrMalformedPayload marks messages that can never succeed and should be
// acknowledged instead of redelivered.
var ErrMalformedPayload = errors.New("malformed payload")

// TradeMessage is the JSON body published on the trade submission queue.
type TradeMessage struct {
	TradeID      string          `json:"trade_id"`
	TickerSymbol string          `json:"ticker_symbol"`
	Price        decimal.Decimal `json:"price"`
	Shares       decimal.Decimal `json:"shares"`
	BrokerID     int64           `json:"broker_id"`
	TradeTime    time.Time       `json:"trade_time"`
}

type TradeRecorder interface {
	RecordTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error)
}

var _ TradeRecorder = (*services.TradeService)(nil)

// TradeRecorderWorker records trades submitted on a message queue. Running a
// single subscriber per queue serializes recording ahead of the service.
type TradeRecorderWorker struct {
	trades  TradeRecorder
	timeout time.Duration
	logger  logrus.FieldLogger
}

func NewTradeRecorderWorker(trades TradeRecorder, timeout time.Duration, logger logrus.FieldLogger) *TradeRecorderWorker {
	return &TradeRecorderWorker{trades: trades, timeout: timeout, logger: logger}
}

// Process records one trade. Already processed trade ids are not an error:
// the message was delivered before and can be acknowledged.
func (w *TradeRecorderWorker) Process(payload []byte) error {
	var message TradeMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	tradeID, err := uuid.Parse(message.TradeID)
	if err != nil {
		return fmt.Errorf("%w: trade_id: %v", ErrMalformedPayload, err)
	}

	tradeTime := message.TradeTime
	if tradeTime.IsZero() {
		tradeTime = time.Now()
	}

	ctx := context.Background()
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	_, err = w.trades.RecordTrade(ctx, &models.Trade{
		TradeID:      tradeID,
		TickerSymbol: message.TickerSymbol,
		Price:        message.Price,
		Shares:       message.Shares,
		BrokerID:     message.BrokerID,
		TradeTime:    tradeTime,
	})

	switch {
	case err == nil:
		return nil
	case services.IsDuplicateTrade(err):
		w.logger.WithField("trade_id", tradeID).Info("Trade already processed, skipping")
		return nil
	case errors.Is(err, services.ErrInvalidArgument):
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	default:
		return err
	}
}
