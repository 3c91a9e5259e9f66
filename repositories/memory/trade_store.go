package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/google/uuid"

	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/services"
)

var _ services.TradeStore = (*TradeStore)(nil)

// TradeStore keeps trades in process memory, grouped by ticker symbol in
// insertion order.
type TradeStore struct {
	mutex    sync.RWMutex
	bySymbol *hashmap.Map
	tradeIDs *hashset.Set
	lastID   int64
}

func NewTradeStore() *TradeStore {
	return &TradeStore{
		bySymbol: hashmap.New(),
		tradeIDs: hashset.New(),
	}
}

func (s *TradeStore) AddTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.tradeIDs.Contains(trade.TradeID) {
		return nil, &services.DuplicateTradeError{TradeID: trade.TradeID}
	}

	s.lastID++
	record := *trade
	record.ID = s.lastID
	record.CreatedAt = time.Now()

	trades, found := s.bySymbol.Get(record.TickerSymbol)
	if !found {
		trades = arraylist.New()
		s.bySymbol.Put(record.TickerSymbol, trades)
	}
	trades.(*arraylist.List).Add(&record)
	s.tradeIDs.Add(record.TradeID)

	stored := record
	return &stored, nil
}

func (s *TradeStore) FindTradesBySymbol(ctx context.Context, tickerSymbol string) ([]*models.Trade, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]*models.Trade, 0)

	trades, found := s.bySymbol.Get(tickerSymbol)
	if !found {
		return result, nil
	}

	for _, value := range trades.(*arraylist.List).Values() {
		trade := *value.(*models.Trade)
		result = append(result, &trade)
	}

	return result, nil
}

func (s *TradeStore) ExistsByTradeID(ctx context.Context, tradeID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.tradeIDs.Contains(tradeID), nil
}

func (s *TradeStore) ListSymbols(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	symbols := make([]string, 0, s.bySymbol.Size())
	for _, key := range s.bySymbol.Keys() {
		symbols = append(symbols, key.(string))
	}
	sort.Strings(symbols)

	return symbols, nil
}

// Count returns the number of stored trades.
func (s *TradeStore) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.tradeIDs.Size()
}
