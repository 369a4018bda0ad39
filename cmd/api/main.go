package main

import (
	"os"

	"github.com/okandemir/schoolhub/internal/pkg/logger"
	"github.com/okandemir/schoolhub/internal/server"
)

// @title SchoolHub API
// @version 1.0
// @description School administration backend: students, attendance, grades, finance and report cards

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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
