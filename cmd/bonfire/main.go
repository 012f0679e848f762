// Package main is the entry point for bonfire.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"bonfire/cmd/bonfire/root"
	"bonfire/internal/config"
	"bonfire/internal/telemetry"
)

func main() {
	// Load .env for local development. Not fatal: env vars may be set directly.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("telemetry setup failed: %v (continuing without it)", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("telemetry shutdown: %v", err)
				}
			}()
		}
	}

	root.Execute()
}
