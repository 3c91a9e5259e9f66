package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

var _ services.BrokerStore = (*BrokerStore)(nil)

type BrokerStore struct {
	mutex   sync.RWMutex
	brokers *treemap.Map
}

func NewBrokerStore(brokers ...*models.Broker) *BrokerStore {
	store := &BrokerStore{
		brokers: treemap.NewWith(utils.Int64Comparator),
	}

	for _, broker := range brokers {
		record := *broker
		store.brokers.Put(record.BrokerID, &record)
	}

	return store
}

func (s *BrokerStore) FindByID(ctx context.Context, brokerID int64) (*models.Broker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, found := s.brokers.Get(brokerID)
	if !found {
		return nil, fmt.Errorf("%w: broker %d", services.ErrNotFound, brokerID)
	}

	broker := *value.(*models.Broker)
	return &broker, nil
}

func (s *BrokerStore) FindByName(ctx context.Context, brokerName string) (*models.Broker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, value := s.brokers.Find(func(key interface{}, value interface{}) bool {
		return value.(*models.Broker).BrokerName == brokerName
	})
	if value == nil {
		return nil, fmt.Errorf("%w: broker %s", services.ErrNotFound, brokerName)
	}

	broker := *value.(*models.Broker)
	return &broker, nil
}
