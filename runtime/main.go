package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise_client/commands"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	if err := commands.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
