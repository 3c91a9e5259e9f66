package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/zsmartex/stockapi/app"
	"github.com/zsmartex/stockapi/config"
	"github.com/zsmartex/stockapi/jobs/cron"
	"github.com/zsmartex/stockapi/workers/daemons"
)

func CreateWorker(id string, application *app.Application) daemons.Worker {
	switch id {
	case "reprice":
		return daemons.NewCronJob(&cron.RepriceJob{
			Stocks:     application.Stocks,
			Reconciler: application.Trades,
			Interval:   application.Env.RepriceInterval,
			Logger:     application.Logger.WithField("worker", id),
		})
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

	application, err := app.New(env, config.Logger)
	if err != nil {
		config.Logger.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ARVG := os.Args[1:]

	var wg sync.WaitGroup
	for _, id := range ARVG {
		worker := CreateWorker(id, application)
		if worker == nil {
			config.Logger.Errorf("Unknown daemon: %s", id)
			continue
		}

		config.Logger.Infof("Start stockapi-daemon: %s", id)

		wg.Add(1)
		go func(worker daemons.Worker) {
			defer wg.Done()
			worker.Start(ctx)
		}(worker)
	}

	wg.Wait()
}
