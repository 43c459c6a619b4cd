package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	root := &cobra.Command{
		Use:          "solver",
		Short:        "Wordle solver/assistant: suggest and narrow candidate words from guess feedback",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("solver exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
