// Package main is the entry point for the shadergrid viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/shadergrid/internal/app"
	"github.com/Faultbox/shadergrid/internal/config"
	"github.com/Faultbox/shadergrid/internal/descriptor"
	"github.com/Faultbox/shadergrid/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== shadergrid ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	table, err := loadTable(cfg.Scene.File)
	if err != nil {
		logger.Error("failed to load scene", zap.String("file", cfg.Scene.File), zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, cfg, table); err != nil {
		logger.Error("shadergrid error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func loadTable(path string) (descriptor.Table, error) {
	if path == "" {
		return descriptor.DefaultTable(), nil
	}
	return descriptor.Load(path)
}
