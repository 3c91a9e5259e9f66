package entities

type BrokerEntity struct {
	BrokerID   int64  `json:"broker_id"`
	BrokerName string `json:"broker_name"`
}
