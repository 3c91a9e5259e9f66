package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/controllers/entities"
	"github.com/zsmartex/stockapi/controllers/helpers"
	"github.com/zsmartex/stockapi/controllers/queries"
	"github.com/zsmartex/stockapi/models"
)

type TradeRecorder interface {
	RecordTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error)
	GetTradesByTickerSymbol(ctx context.Context, tickerSymbol string) ([]*models.Trade, error)
	CalculateAverageStockPrice(ctx context.Context, tickerSymbol string) (decimal.Decimal, error)
}

type TradeController struct {
	trades TradeRecorder
	logger logrus.FieldLogger
}

func NewTradeController(trades TradeRecorder, logger logrus.FieldLogger) *TradeController {
	return &TradeController{trades: trades, logger: logger}
}

func (t *TradeController) RecordTrade(c *fiber.Ctx) error {
	errors := new(helpers.Errors)
	payload := new(queries.RecordTradePayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{helpers.InvalidMessageBody},
		})
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	tradeID, err := uuid.Parse(payload.TradeID)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"trade.invalid_trade_id"},
		})
	}

	tradeTime := payload.TradeTime
	if tradeTime.IsZero() {
		tradeTime = time.Now()
	}

	trade, err := t.trades.RecordTrade(c.UserContext(), &models.Trade{
		TradeID:      tradeID,
		TickerSymbol: payload.TickerSymbol,
		Price:        payload.Price,
		Shares:       payload.Shares,
		BrokerID:     payload.BrokerID,
		TradeTime:    tradeTime,
	})
	if err != nil {
		return helpers.ErrorResponse(c, t.logger, err, "trade")
	}

	return c.Status(201).JSON(trade.ToEntity())
}

func (t *TradeController) GetTradesByTickerSymbol(c *fiber.Ctx) error {
	trades, err := t.trades.GetTradesByTickerSymbol(c.UserContext(), c.Params("ticker_symbol"))
	if err != nil {
		return helpers.ErrorResponse(c, t.logger, err, "trade")
	}

	trades_json := make([]entities.TradeEntity, 0, len(trades))
	for _, trade := range trades {
		trades_json = append(trades_json, trade.ToEntity())
	}

	return c.Status(200).JSON(trades_json)
}

func (t *TradeController) CalculateAverageStockPrice(c *fiber.Ctx) error {
	tickerSymbol := c.Params("ticker_symbol")

	average, err := t.trades.CalculateAverageStockPrice(c.UserContext(), tickerSymbol)
	if err != nil {
		return helpers.ErrorResponse(c, t.logger, err, "trade")
	}

	return c.Status(200).JSON(entities.AveragePriceEntity{
		TickerSymbol: tickerSymbol,
		AveragePrice: average,
	})
}
