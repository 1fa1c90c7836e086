package main

import (
	"flag"
	"os"

	"github.com/yigit/advisory/internal/bootstrap"
	"github.com/yigit/advisory/internal/pkg/logger"
	"github.com/yigit/advisory/internal/server"
)

// @title Academic Advisory API
// @version 1.0
// @description Student performance, course eligibility and rule-based academic advice

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the yaml configuration")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
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
