package mq_client

import (
	"github.com/shopspring/decimal"

	"github.com/zsmartex/stockapi/controllers/entities"
)

type Subject struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// Queue is a durable JetStream consumer shared by every engine process of the
// same worker. Group doubles as the durable name and cannot contain dots.
type Queue struct {
	Stream  string `yaml:"stream"`
	Subject string `yaml:"subject"`
	Group   string `yaml:"group"`
}

type MQClientConfig struct {
	Subject struct {
		TradeRecorded     Subject `yaml:"trade_recorded"`
		StockPriceUpdated Subject `yaml:"stock_price_updated"`
	} `yaml:"subject"`
	Queue struct {
		TradeRecorder Queue `yaml:"trade_recorder"`
	} `yaml:"queue"`
}

type TradeRecordedMessage struct {
	Trade        entities.TradeEntity `json:"trade"`
	AveragePrice decimal.Decimal      `json:"average_price"`
}

type StockPriceUpdatedMessage struct {
	TickerSymbol string          `json:"ticker_symbol"`
	CurrentValue decimal.Decimal `json:"current_value"`
}
