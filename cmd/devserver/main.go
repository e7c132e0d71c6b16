package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotoapp/roto-core/config"
	"github.com/rotoapp/roto-core/internal/devserver"
	"github.com/rotoapp/roto-core/internal/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv := devserver.New()

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.DevServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
