package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

var _ services.StockStore = (*StockRepository)(nil)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

func (r *StockRepository) FindBySymbol(ctx context.Context, tickerSymbol string) (*models.Stock, error) {
	var stock models.Stock

	err := r.db.WithContext(ctx).First(&stock, "ticker_symbol = ?", tickerSymbol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: stock %s", services.ErrNotFound, tickerSymbol)
	} else if err != nil {
		return nil, err
	}

	return &stock, nil
}

// UpdatePrice upserts the current value of a stock by ticker symbol.
func (r *StockRepository) UpdatePrice(ctx context.Context, tickerSymbol string, price decimal.Decimal) error {
	stock := &models.Stock{
		TickerSymbol: tickerSymbol,
		CurrentValue: price,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "ticker_symbol"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"current_value": price,
				"updated_at":    time.Now(),
			}),
		}).
		Create(stock).Error
}

func (r *StockRepository) ListAll(ctx context.Context) ([]*models.Stock, error) {
	stocks := make([]*models.Stock, 0)

	if err := r.db.WithContext(ctx).Order("ticker_symbol asc").Find(&stocks).Error; err != nil {
		return nil, err
	}

	return stocks, nil
}

func (r *StockRepository) Insert(ctx context.Context, stock *models.Stock) (*models.Stock, error) {
	record := *stock
	record.ID = 0

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ticker_symbol"}},
			DoNothing: true,
		}).
		Create(&record)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", services.ErrStockExists, stock.TickerSymbol)
	}

	return &record, nil
}

func (r *StockRepository) Delete(ctx context.Context, tickerSymbol string) error {
	result := r.db.WithContext(ctx).Where("ticker_symbol = ?", tickerSymbol).Delete(&models.Stock{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: stock %s", services.ErrNotFound, tickerSymbol)
	}

	return nil
}
