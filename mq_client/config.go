package mq_client

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v2"
)

const (
	SubjectTradeRecorded     = "trade_recorded"
	SubjectStockPriceUpdated = "stock_price_updated"

	QueueTradeRecorder = "trade_recorder"
)

// LoadConfig reads the subject configuration from a YAML file.
func LoadConfig(path string) (*MQClientConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()

	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, err
	}

	return c, nil
}

func DefaultConfig() *MQClientConfig {
	c := &MQClientConfig{}
	c.Subject.TradeRecorded = Subject{Name: "stockapi.trade.recorded", Enabled: true}
	c.Subject.StockPriceUpdated = Subject{Name: "stockapi.stock.price_updated", Enabled: true}
	c.Queue.TradeRecorder = Queue{Stream: "STOCKAPI_TRADES", Subject: "stockapi.trade.submitted", Group: "stockapi_trade_recorder"}

	return c
}

// GetSubject returns the subject whose yaml key is id.
func (c *MQClientConfig) GetSubject(id string) (Subject, error) {
	subject := FindElementStruct(&c.Subject, "yaml", id)
	if subject == nil {
		return Subject{}, fmt.Errorf("unknown subject: %s", id)
	}

	return subject.(Subject), nil
}

// GetQueue returns the engine subscription whose yaml key is id.
func (c *MQClientConfig) GetQueue(id string) (Queue, error) {
	queue := FindElementStruct(&c.Queue, "yaml", id)
	if queue == nil {
		return Queue{}, fmt.Errorf("unknown queue: %s", id)
	}

	return queue.(Queue), nil
}

func FindElementStruct(i interface{}, tag_name string, tag_value string) interface{} {
	e := reflect.ValueOf(i).Elem()

	for i := 0; i < e.NumField(); i++ {
		valueField := e.Field(i)
		typeField := e.Type().Field(i)
		Tag := typeField.Tag

		if tag_value == Tag.Get(tag_name) {
			return valueField.Interface()
		}
	}

	return nil
}
