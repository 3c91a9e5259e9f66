package services

import (
	"context"
	"strings"

	"github.com/zsmartex/stockapi/models"
)

type BrokerService struct {
	brokers BrokerStore
}

func NewBrokerService(brokers BrokerStore) *BrokerService {
	return &BrokerService{brokers: brokers}
}

func (s *BrokerService) GetBrokerByID(ctx context.Context, brokerID int64) (*models.Broker, error) {
	if brokerID <= 0 {
		return nil, invalidArgument("broker id must be positive")
	}

	return s.brokers.FindByID(ctx, brokerID)
}

func (s *BrokerService) GetBrokerByName(ctx context.Context, brokerName string) (*models.Broker, error) {
	if strings.TrimSpace(brokerName) == "" {
		return nil, invalidArgument("broker_name cannot be blank")
	}

	return s.brokers.FindByName(ctx, brokerName)
}
