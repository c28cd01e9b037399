package main

import (
	"tavola/config"
	"tavola/di"
	"tavola/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Tavola API
// @version 1.0
// @description Reservation lifecycle for a single venue: availability, bookings and chat handoff.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize service")
	}

	http.Serve()
}
