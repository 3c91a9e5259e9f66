package admin_controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/volatiletech/null"

	"github.com/zsmartex/stockapi/controllers/entities"
	"github.com/zsmartex/stockapi/controllers/helpers"
	"github.com/zsmartex/stockapi/controllers/queries"
	"github.com/zsmartex/stockapi/models"
)

type StockManager interface {
	AddStock(ctx context.Context, stock *models.Stock) (*models.Stock, error)
	DeleteStock(ctx context.Context, tickerSymbol string) error
}

type StockRepricer interface {
	RefreshAveragePrice(ctx context.Context, tickerSymbol string) (decimal.Decimal, error)
}

type StockController struct {
	stocks   StockManager
	repricer StockRepricer
	logger   logrus.FieldLogger
}

func NewStockController(stocks StockManager, repricer StockRepricer, logger logrus.FieldLogger) *StockController {
	return &StockController{stocks: stocks, repricer: repricer, logger: logger}
}

func (s *StockController) CreateStock(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	payload := new(queries.CreateStockPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{helpers.InvalidMessageBody},
		})
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	stock := &models.Stock{
		TickerSymbol: payload.TickerSymbol,
		CurrentValue: payload.CurrentValue,
	}
	if len(payload.Name) > 0 {
		stock.Name = null.StringFrom(payload.Name)
	}

	stock, err := s.stocks.AddStock(c.UserContext(), stock)
	if err != nil {
		return helpers.ErrorResponse(c, s.logger, err, "admin.stock")
	}

	return c.Status(201).JSON(stock.ToEntity())
}

func (s *StockController) DeleteStock(c *fiber.Ctx) error {
	if err := s.stocks.DeleteStock(c.UserContext(), c.Params("ticker_symbol")); err != nil {
		return helpers.ErrorResponse(c, s.logger, err, "admin.stock")
	}

	return c.SendStatus(204)
}

// RepriceStock recomputes and stores the average price of one stock.
func (s *StockController) RepriceStock(c *fiber.Ctx) error {
	tickerSymbol := c.Params("ticker_symbol")

	average, err := s.repricer.RefreshAveragePrice(c.UserContext(), tickerSymbol)
	if err != nil {
		return helpers.ErrorResponse(c, s.logger, err, "admin.stock")
	}

	return c.Status(200).JSON(entities.AveragePriceEntity{
		TickerSymbol: tickerSymbol,
		AveragePrice: average,
	})
}
