package main

import (
	"flag"
	"log"
	"os"

	"QuoteBridge/internal/di"
	"QuoteBridge/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s port=%d static=%s", cfg.Environment, cfg.Server.Port, cfg.Static.Root)
	log.Printf("upstream: %s (timeout=%s insecure_tls=%t)", cfg.Upstream.BaseURL, cfg.Upstream.Timeout, cfg.Upstream.InsecureTLS)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
