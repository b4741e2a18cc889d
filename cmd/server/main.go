// Package main - Entry point for the shadowcost HTTP server
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"shadowcost/api"
	"shadowcost/core/engine"
	"shadowcost/internal/config"
	"shadowcost/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "shadowcost.toml", "Config file, TOML or JSON")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
	}
	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := cfg.Building.Validate(); err != nil {
		logging.Warn("configured building defaults are invalid", zap.Error(err))
	}

	srv := api.NewServer(engine.New(logging.Logger, version), logging.Logger, version, cfg.Building)

	logging.Info("shadowcost server starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
	)
	if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
		logging.Error("server stopped", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}
