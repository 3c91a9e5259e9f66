package main

import (
	"fmt"

	"github.com/zsmartex/stockapi/app"
	"github.com/zsmartex/stockapi/config"
	"github.com/zsmartex/stockapi/routes"
)

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

	deps, err := application.Dependencies()
	if err != nil {
		config.Logger.Fatalf("Failed to parse JWT_PUBLIC_KEY: %v", err)
	}

	r := routes.SetupRouter(deps)
	// running
	if err := r.Listen(env.HTTPListen); err != nil {
		config.Logger.Fatal(err)
	}
}
