package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/zsmartex/stockapi/app"
	"github.com/zsmartex/stockapi/config"
	"github.com/zsmartex/stockapi/workers/engines"
)

const processTimeout = 10 * time.Second

func CreateWorker(id string, application *app.Application) engines.Worker {
	switch id {
	case "trade_recorder":
		return engines.NewTradeRecorderWorker(application.Trades, processTimeout, application.Logger.WithField("worker", id))
	default:
		return nil
	}
}

func main() {
	env, err := config.InitializeConfig()
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if config.Nats == nil {
		config.Logger.Fatal("NATS_URL is required for stockapi-engine")
	}

	application, err := app.New(env, config.Logger)
	if err != nil {
		config.Logger.Fatalf("Failed to build application: %v", err)
	}

	js, err := config.Nats.JetStream()
	if err != nil {
		config.Logger.Fatalf("JetStream: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ARVG := os.Args[1:]

	var wg sync.WaitGroup
	for _, id := range ARVG {
		worker := CreateWorker(id, application)
		if worker == nil {
			config.Logger.Errorf("Unknown engine: %s", id)
			continue
		}

		queue, err := application.MQConfig.GetQueue(id)
		if err != nil {
			config.Logger.Errorf("Queue config: %v", err)
			continue
		}

		sub, err := engines.SubscribeQueue(js, queue)
		if err != nil {
			config.Logger.Errorf("Queue subscribe: %v", err)
			continue
		}

		config.Logger.Infof("Start stockapi-engine: %s", id)

		wg.Add(1)
		go func(id string, worker engines.Worker, sub *nats.Subscription) {
			defer wg.Done()
			defer sub.Unsubscribe()

			logger := config.Logger.WithField("worker", id)
			if err := engines.Consume(ctx, engines.NewJetStreamSource(sub), worker, logger); err != nil {
				logger.Errorf("Consumer stopped: %v", err)
			}
		}(id, worker, sub)
	}

	wg.Wait()
}
