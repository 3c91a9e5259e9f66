package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidArgument is returned before any storage call when an input is
	// missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("record not found")
	ErrStockExists     = errors.New("stock already exists")
)

// DuplicateTradeError reports a trade id that has already been recorded.
type DuplicateTradeError struct {
	TradeID uuid.UUID
}

func (e *DuplicateTradeError) Error() string {
	return fmt.Sprintf("trade with id %s has already been processed", e.TradeID)
}

// IsDuplicateTrade reports whether err is or wraps a *DuplicateTradeError.
func IsDuplicateTrade(err error) bool {
	var dup *DuplicateTradeError
	return errors.As(err, &dup)
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}

func validateTickerSymbol(tickerSymbol string) error {
	if strings.TrimSpace(tickerSymbol) == "" {
		return invalidArgument("ticker_symbol cannot be blank")
	}

	return nil
}
