package main

import (
	"context"
	"os/signal"
	"syscall"

	"reception/config"
	"reception/di"
	"reception/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go app.Sweeper.Run(ctx)

	app.HTTP.Serve()
}
