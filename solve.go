// apps/solver/solve.go
//
// `solver solve` — the interactive terminal assistant.
// Builds a solver over the configured dictionary and hands it to the play
// client. In auto mode the client picks the top-ranked suggestion itself and
// only asks for the b/y/g status each round.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/play"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func newSolveCmd() *cobra.Command {
	var (
		width        int
		displayLimit int
		auto         bool
		wordsFile    string
		plain        bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Interactively narrow down the hidden word from guess feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			if displayLimit < 1 {
				return fmt.Errorf("display limit must be at least 1, got %d", displayLimit)
			}
			slv, err := buildSolver(width, wordsFile, plain)
			if err != nil {
				return err
			}
			client := play.NewClient(play.Config{
				WordSize:     width,
				DisplayLimit: displayLimit,
				Auto:         auto,
			}, slv, cmd.InOrStdin(), cmd.OutOrStdout())
			return client.Run()
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 5, "width of each word in the game")
	cmd.Flags().IntVarP(&displayLimit, "display-limit", "d", 10, "number of suggestions per round")
	cmd.Flags().BoolVarP(&auto, "auto", "a", false, "let the solver pick each guess itself")
	cmd.Flags().StringVar(&wordsFile, "words", "", "dictionary file (word,frequency per line; embedded default if unset)")
	cmd.Flags().BoolVar(&plain, "plain", false, "treat --words as a plain word list, one word per line")
	return cmd
}

// buildSolver assembles a solver from the chosen dictionary source:
// an explicit file (ranked or plain), or the process default (env/embedded).
func buildSolver(width int, wordsFile string, plain bool) (*solver.Solver, error) {
	if wordsFile != "" {
		if plain {
			list, err := words.LoadPlain(wordsFile)
			if err != nil {
				return nil, err
			}
			return solver.NewPlain(width, list), nil
		}
		entries, err := words.LoadRanked(wordsFile)
		if err != nil {
			return nil, err
		}
		return solver.NewRanked(width, entries), nil
	}
	if err := words.Init(); err != nil {
		return nil, err
	}
	return solver.NewRanked(width, words.Dictionary()), nil
}
