package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/upscprep/harvester/internal/app"
	"github.com/upscprep/harvester/internal/config"
	"github.com/upscprep/harvester/internal/logger"
	"github.com/upscprep/harvester/internal/metrics"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		metrics.Global.SetError(err.Error())
		logger.Error("harvest failed", "error", err)
		os.Exit(1)
	}
}
