package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/controllers/entities"
	"github.com/zsmartex/stockapi/controllers/helpers"
	"github.com/zsmartex/stockapi/models"
)

type StockReader interface {
	GetStockByTickerSymbol(ctx context.Context, tickerSymbol string) (*models.Stock, error)
	GetAllStocks(ctx context.Context) ([]*models.Stock, error)
}

type StockController struct {
	stocks StockReader
	logger logrus.FieldLogger
}

func NewStockController(stocks StockReader, logger logrus.FieldLogger) *StockController {
	return &StockController{stocks: stocks, logger: logger}
}

func (s *StockController) GetStockByTickerSymbol(c *fiber.Ctx) error {
	stock, err := s.stocks.GetStockByTickerSymbol(c.UserContext(), c.Params("ticker_symbol"))
	if err != nil {
		return helpers.ErrorResponse(c, s.logger, err, "stock")
	}

	return c.Status(200).JSON(stock.ToEntity())
}

// GetAllStocks answers 404 when no stock exists yet.
func (s *StockController) GetAllStocks(c *fiber.Ctx) error {
	stocks, err := s.stocks.GetAllStocks(c.UserContext())
	if err != nil {
		return helpers.ErrorResponse(c, s.logger, err, "stock")
	}

	if len(stocks) == 0 {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{helpers.RecordNotFound},
		})
	}

	stocks_json := make([]entities.StockEntity, 0, len(stocks))
	for _, stock := range stocks {
		stocks_json = append(stocks_json, stock.ToEntity())
	}

	return c.Status(200).JSON(stocks_json)
}
