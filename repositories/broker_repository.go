package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

var _ services.BrokerStore = (*BrokerRepository)(nil)

type BrokerRepository struct {
	db *gorm.DB
}

func NewBrokerRepository(db *gorm.DB) *BrokerRepository {
	return &BrokerRepository{db: db}
}

func (r *BrokerRepository) FindByID(ctx context.Context, brokerID int64) (*models.Broker, error) {
	return r.first(ctx, "broker_id = ?", brokerID)
}

func (r *BrokerRepository) FindByName(ctx context.Context, brokerName string) (*models.Broker, error) {
	return r.first(ctx, "broker_name = ?", brokerName)
}

func (r *BrokerRepository) first(ctx context.Context, query string, arg interface{}) (*models.Broker, error) {
	var broker models.Broker

	err := r.db.WithContext(ctx).First(&broker, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: broker %v", services.ErrNotFound, arg)
	} else if err != nil {
		return nil, err
	}

	return &broker, nil
}
