package main

import (
	"os"

	"github.com/emurray/registrar/internal/pkg/logger"
	"github.com/emurray/registrar/internal/server"
)

func main() {
	// Initialize the server with all its dependencies. A store connection
	// failure at startup terminates the process.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
