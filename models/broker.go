package models

import "github.com/zsmartex/stockapi/controllers/entities"

type Broker struct {
	BrokerID   int64  `json:"broker_id" gorm:"primaryKey"`
	BrokerName string `json:"broker_name" gorm:"uniqueIndex;not null"`
}

func (b *Broker) ToEntity() entities.BrokerEntity {
	return entities.BrokerEntity{
		BrokerID:   b.BrokerID,
		BrokerName: b.BrokerName,
	}
}
