package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nmorozova/lovebird/internal/client/cli"
	"github.com/nmorozova/lovebird/internal/client/config"
	"github.com/nmorozova/lovebird/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "startup failed", "err", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
