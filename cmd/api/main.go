package main

import (
	"os"

	"github.com/akademia/akademia/internal/pkg/logger"
	"github.com/akademia/akademia/internal/server"
)

// @title AKADEMIA API
// @version 1.0
// @description API for AKADEMIA, the social network for technical school students and teachers.

// @host localhost:3001
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
