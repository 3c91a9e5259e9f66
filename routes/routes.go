package routes

import (
	"crypto/rsa"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/controllers"
	"github.com/zsmartex/stockapi/controllers/admin_controllers"
	"github.com/zsmartex/stockapi/routes/middlewares"
	"github.com/zsmartex/stockapi/services"
)

type Dependencies struct {
	Trades  *services.TradeService
	Stocks  *services.StockService
	Brokers *services.BrokerService
	Logger  logrus.FieldLogger

	// Admin routes are only mounted when a key is set.
	PublicKey *rsa.PublicKey
}

func SetupRouter(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		UnescapePath: true,
	})

	tradeController := controllers.NewTradeController(deps.Trades, deps.Logger)
	stockController := controllers.NewStockController(deps.Stocks, deps.Logger)
	brokerController := controllers.NewBrokerController(deps.Brokers, deps.Logger)

	api := app.Group("/api/v1")

	api.Get("/public/timestamp", controllers.GetTimestamp)

	api.Post("/trades", tradeController.RecordTrade)
	api.Get("/trades/:ticker_symbol", tradeController.GetTradesByTickerSymbol)
	api.Get("/trades/:ticker_symbol/average-price", tradeController.CalculateAverageStockPrice)

	api.Get("/stocks", stockController.GetAllStocks)
	api.Get("/stocks/:ticker_symbol", stockController.GetStockByTickerSymbol)

	api.Get("/brokers/byname/:broker_name", brokerController.GetBrokerByName)
	api.Get("/brokers/:id", brokerController.GetBrokerByID)

	if deps.PublicKey != nil {
		adminStockController := admin_controllers.NewStockController(deps.Stocks, deps.Trades, deps.Logger)

		admin := api.Group("/admin", middlewares.Authenticate(deps.PublicKey), middlewares.AdminVaildator)
		admin.Post("/stocks", adminStockController.CreateStock)
		admin.Delete("/stocks/:ticker_symbol", adminStockController.DeleteStock)
		admin.Post("/stocks/:ticker_symbol/reprice", adminStockController.RepriceStock)
	}

	return app
}
