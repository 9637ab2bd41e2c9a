package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiyatma/coin-tracker-be/internal/api"
	"github.com/adiyatma/coin-tracker-be/internal/auth"
	"github.com/adiyatma/coin-tracker-be/internal/config"
	"github.com/adiyatma/coin-tracker-be/internal/database"
	"github.com/adiyatma/coin-tracker-be/internal/ingest"
	"github.com/adiyatma/coin-tracker-be/internal/logger"
	"github.com/adiyatma/coin-tracker-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration; refuses to start without a signing key.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(db)
	coinService := services.NewCoinService(db)
	trackingService := services.NewTrackingService(db, coinService)

	// Set up and run the background catalog refresh
	fetcher := ingest.NewFetcher(cfg.CoinAPIURL, cfg.UsdIdrRate, cfg.HTTPTimeout)
	updater, err := ingest.NewUpdater(fetcher, coinService, cfg.RefreshSchedule)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up catalog refresh job")
	}
	go updater.Run()

	// Set up router
	router := api.NewRouter(tokenService, userService, coinService, trackingService, updater)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	updater.Stop() // Stop the catalog refresh job

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
