package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"enercheck/app"
	"enercheck/internal/api"
	"enercheck/internal/config"
	"enercheck/internal/logging"
	"enercheck/internal/report"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logging.Default.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Default.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	log := logging.NewDefault()
	service := app.NewValidationService(log)
	server := api.NewServer(service, report.NewRenderer(), log)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("enercheck validation service listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown incomplete: %v", err)
	}
}
