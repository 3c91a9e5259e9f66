package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/controllers/helpers"
	"github.com/zsmartex/stockapi/models"
)

type BrokerReader interface {
	GetBrokerByID(ctx context.Context, brokerID int64) (*models.Broker, error)
	GetBrokerByName(ctx context.Context, brokerName string) (*models.Broker, error)
}

type BrokerController struct {
	brokers BrokerReader
	logger  logrus.FieldLogger
}

func NewBrokerController(brokers BrokerReader, logger logrus.FieldLogger) *BrokerController {
	return &BrokerController{brokers: brokers, logger: logger}
}

func (b *BrokerController) GetBrokerByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"broker.invalid_argument"},
		})
	}

	broker, err := b.brokers.GetBrokerByID(c.UserContext(), int64(id))
	if err != nil {
		return helpers.ErrorResponse(c, b.logger, err, "broker")
	}

	return c.Status(200).JSON(broker.ToEntity())
}

func (b *BrokerController) GetBrokerByName(c *fiber.Ctx) error {
	broker, err := b.brokers.GetBrokerByName(c.UserContext(), c.Params("broker_name"))
	if err != nil {
		return helpers.ErrorResponse(c, b.logger, err, "broker")
	}

	return c.Status(200).JSON(broker.ToEntity())
}
