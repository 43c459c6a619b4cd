// apps/solver/serve.go
//
// `solver serve` — the HTTP API.
// Loads the default dictionary, opens and migrates the SQLite database, and
// starts the solver backend.
//
// Environment variables:
//   PORT           listen port (default 5176)
//   SOLVER_DB      SQLite path (default ./data/solver.db)
//   CLIENT_ORIGIN  allowed CORS origin
//   JWT_SECRET     HS256 signing secret
//   SOLVER_WORDS_FILE  dictionary override (see internal/words)

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/db"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the solver HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := words.Init(); err != nil {
				log.Fatal().Err(err).Msg("failed to load dictionary")
			}

			sqlDB, err := db.Open(getEnv("SOLVER_DB", "./data/solver.db"))
			if err != nil {
				log.Fatal().Err(err).Msg("open database")
			}
			defer sqlDB.Close()
			if err := db.Migrate(sqlDB); err != nil {
				log.Fatal().Err(err).Msg("migrate database")
			}

			mem := store.NewMemoryStore()
			srv := httpserver.New(mem, sqlDB)
			port := getEnv("PORT", "5176")
			log.Info().Str("port", port).Int("dictionary", words.Stats()).Msg("starting solver")
			return srv.Start(":" + port)
		},
	}
}
