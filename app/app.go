package app

import (
	"crypto/rsa"

	"github.com/sirupsen/logrus"

	"github.com/zsmartex/stockapi/config"
	"github.com/zsmartex/stockapi/models"
	"github.com/zsmartex/stockapi/mq_client"
	"github.com/zsmartex/stockapi/repositories"
	"github.com/zsmartex/stockapi/repositories/memory"
	"github.com/zsmartex/stockapi/routes"
	"github.com/zsmartex/stockapi/routes/middlewares"
	"github.com/zsmartex/stockapi/services"
)

// Application holds the services shared by the api, daemon and engine
// binaries.
type Application struct {
	Env      *config.Env
	MQConfig *mq_client.MQClientConfig
	Trades   *services.TradeService
	Stocks   *services.StockService
	Brokers  *services.BrokerService
	Logger   logrus.FieldLogger
}

// New builds the services on top of the backends connected by
// config.InitializeConfig.
func New(env *config.Env, logger logrus.FieldLogger) (*Application, error) {
	mqConfig, err := mq_client.LoadConfig(env.MQConfig)
	if err != nil {
		logger.Warnf("Failed to load %s, using default subjects: %v", env.MQConfig, err)
		mqConfig = mq_client.DefaultConfig()
	}

	var (
		tradeStore  services.TradeStore
		stockStore  services.StockStore
		brokerStore services.BrokerStore
	)

	if env.StorageDriver == config.StorageDriverMemory {
		tradeStore = memory.NewTradeStore()
		stockStore = memory.NewStockStore()
		brokerStore = memory.NewBrokerStore(seedBrokers(env.MemoryBrokers)...)
	} else {
		tradeStore = repositories.NewTradeRepository(config.DataBase)
		stockStore = repositories.NewStockRepository(config.DataBase)
		brokerStore = repositories.NewBrokerRepository(config.DataBase)
	}

	var cache services.Cache
	if config.Redis != nil {
		cache = config.Redis
	}

	stocks := services.NewStockService(stockStore, cache, env.StockCacheTTL, logger)

	var observers []services.TradeObserver
	if config.Nats != nil {
		observers = append(observers, mq_client.NewPublisher(config.Nats, mqConfig))
	}
	if config.InfluxDB != nil {
		observers = append(observers, services.NewInfluxTradeWriter(config.InfluxDB))
	}

	return &Application{
		Env:      env,
		MQConfig: mqConfig,
		Trades:   services.NewTradeService(tradeStore, stocks, logger, observers...),
		Stocks:   stocks,
		Brokers:  services.NewBrokerService(brokerStore),
		Logger:   logger,
	}, nil
}

func seedBrokers(names map[int64]string) []*models.Broker {
	brokers := make([]*models.Broker, 0, len(names))
	for id, name := range names {
		brokers = append(brokers, &models.Broker{BrokerID: id, BrokerName: name})
	}

	return brokers
}

func (a *Application) Dependencies() (routes.Dependencies, error) {
	var publicKey *rsa.PublicKey
	if len(a.Env.JWTPublicKey) > 0 {
		key, err := middlewares.ParsePublicKey(a.Env.JWTPublicKey)
		if err != nil {
			return routes.Dependencies{}, err
		}
		publicKey = key
	}

	return routes.Dependencies{
		Trades:    a.Trades,
		Stocks:    a.Stocks,
		Brokers:   a.Brokers,
		Logger:    a.Logger,
		PublicKey: publicKey,
	}, nil
}
