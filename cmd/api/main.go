package main

import (
	"context"
	"log"

	"quickq-backend/internal/bootstrap"
	"quickq-backend/internal/server"
	"quickq-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	app := bootstrap.Build(cfg)
	app.WireRouter()
	defer func() {
		if err := app.Close(context.Background()); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	addr := server.Addr(cfg.Host, cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
