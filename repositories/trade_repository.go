package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

var _ services.TradeStore = (*TradeRepository)(nil)

type TradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// AddTrade inserts a copy of trade unless its trade id is already stored, in
// which case it returns *services.DuplicateTradeError.
func (r *TradeRepository) AddTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error) {
	record := *trade
	record.ID = 0

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trade_id"}},
			DoNothing: true,
		}).
		Create(&record)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, &services.DuplicateTradeError{TradeID: trade.TradeID}
	}

	return &record, nil
}

func (r *TradeRepository) FindTradesBySymbol(ctx context.Context, tickerSymbol string) ([]*models.Trade, error) {
	trades := make([]*models.Trade, 0)

	if err := r.db.WithContext(ctx).Where("ticker_symbol = ?", tickerSymbol).Order("id asc").Find(&trades).Error; err != nil {
		return nil, err
	}

	return trades, nil
}

func (r *TradeRepository) ListSymbols(ctx context.Context) ([]string, error) {
	symbols := make([]string, 0)

	if err := r.db.WithContext(ctx).Model(&models.Trade{}).Distinct().Order("ticker_symbol asc").Pluck("ticker_symbol", &symbols).Error; err != nil {
		return nil, err
	}

	return symbols, nil
}

func (r *TradeRepository) ExistsByTradeID(ctx context.Context, tradeID uuid.UUID) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.Trade{}).Where("trade_id = ?", tradeID).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
