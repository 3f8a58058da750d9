package main

import (
	"go-timeoff/internal/app"
	"go-timeoff/internal/bootstrap"
	"go-timeoff/internal/config"
	"go-timeoff/internal/logger"
	"go-timeoff/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = 12 << 20

	cleanup, err := app.BuildApp(r, cfg, log)
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	bootstrap.StartHTTPServer(r, cfg.Server, bootstrap.NewZapAuditLogger(log))
}
