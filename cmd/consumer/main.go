package main

import (
	"go-timeoff/internal/app"
	"go-timeoff/internal/config"
	"go-timeoff/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if err := app.RunConsumer(cfg, log); err != nil {
		log.Fatal("run consumer failed", zap.Error(err))
	}
}
