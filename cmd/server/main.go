package main

import (
	"context"
	"log"

	"github.com/akarpov87/gotodo/internal/server"
	"github.com/akarpov87/gotodo/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	app.Run(context.Background())
}
