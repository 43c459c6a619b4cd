// apps/solver/internal/play/client.go
//
// Interactive terminal client for one solving session.
// Responsibilities:
//   - Print the remaining-candidate banner and a sample of suggestions.
//   - Read the chosen word and its status string from the user, with a
//     recovery prompt when the word looks like a status string.
//   - In auto mode, pick the top suggestion itself and only ask for status.
//   - Detect the terminal conditions: all-green status (solved) and an
//     empty candidate set (dictionary exhausted).
//
// The client owns no I/O devices; it reads from an io.Reader and writes to
// an io.Writer so the loop is testable with scripted input.

package play

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Config carries the client knobs: word size, number of suggestions shown
// per round, and whether the client picks guesses itself.
type Config struct {
	WordSize     int
	DisplayLimit int
	Auto         bool
}

// Client drives a Solver through an interactive question/answer loop.
type Client struct {
	cfg Config
	slv *solver.Solver
	in  *bufio.Scanner
	out io.Writer
}

// NewClient constructs a client over the given solver and I/O streams.
func NewClient(cfg Config, slv *solver.Solver, in io.Reader, out io.Writer) *Client {
	return &Client{cfg: cfg, slv: slv, in: bufio.NewScanner(in), out: out}
}

// Run executes the solving loop until the word is found, the dictionary is
// exhausted, or input ends. Invalid guess/status input re-prompts; it never
// aborts the session.
func (c *Client) Run() error {
	fmt.Fprintf(c.out, "Welcome! word size is: [%d], display limit is: [%d]\n", c.cfg.WordSize, c.cfg.DisplayLimit)
	for {
		if c.slv.Size() == 0 {
			fmt.Fprintln(c.out, "Unable to find any suitable words from dictionary")
			return nil
		}
		c.printUpdate()

		var guess string
		if c.cfg.Auto {
			guess = c.slv.Words(1)[0]
			fmt.Fprintf(c.out, "Guessing: %s\n", guess)
		} else {
			var err error
			guess, err = c.readWord()
			if err != nil {
				return err
			}
		}
		status, err := c.readStatus()
		if err != nil {
			return err
		}
		if solver.Solved(status) {
			fmt.Fprintln(c.out, "Congratulations! you eventually found the word!")
			return nil
		}
		if _, err := c.slv.Update(guess, status); err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
	}
}

// printUpdate shows the remaining count and up to DisplayLimit suggestions.
func (c *Client) printUpdate() {
	n := c.slv.Size()
	if n > c.cfg.DisplayLimit {
		fmt.Fprintf(c.out, "There are %d possible words, try one of these:\n", n)
	} else {
		fmt.Fprintf(c.out, "Only following %d possible words remaining:\n", n)
	}
	for _, w := range c.sample() {
		fmt.Fprintln(c.out, w)
	}
}

// sample returns the suggestions to display: every remaining word if the
// set is small enough, otherwise a uniform sample without replacement.
func (c *Client) sample() []string {
	limit := c.cfg.DisplayLimit
	if limit < 0 {
		limit = 0
	}
	words := c.slv.AllWords()
	if len(words) <= limit {
		return words
	}
	// Partial Fisher-Yates over a copy, stopping after limit picks.
	for i := 0; i < limit; i++ {
		jBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(words)-i)))
		j := i + int(jBig.Int64())
		words[i], words[j] = words[j], words[i]
	}
	return words[:limit]
}

// readWord prompts for the word the user played. A word consisting only of
// b/y/g characters is suspicious, so the user is asked whether they meant to
// enter a status string and gets one more chance.
func (c *Client) readWord() (string, error) {
	fmt.Fprint(c.out, "Enter the selected word: ")
	input, err := c.readValid(c.cfg.WordSize, isLowerAlpha)
	if err != nil {
		return "", err
	}
	if strings.Trim(input, "byg") == "" {
		fmt.Fprint(c.out, "Did you just enter status instead of words (y/n)? ")
		ans, err := c.readValid(1, func(s string) bool { return s == "y" || s == "n" })
		if err != nil {
			return "", err
		}
		if ans == "y" {
			fmt.Fprint(c.out, "Okay! Try again (last chance though)! Enter the selected word: ")
			return c.readValid(c.cfg.WordSize, isLowerAlpha)
		}
	}
	return input, nil
}

// readStatus prompts for the b/y/g status of the previous word.
func (c *Client) readStatus() (string, error) {
	fmt.Fprint(c.out, "Enter the status of previous word: ")
	return c.readValid(c.cfg.WordSize, func(s string) bool {
		return strings.Trim(s, "byg") == ""
	})
}

// readValid reads lines until one is exactly size characters and passes
// valid. Rejected lines re-prompt.
func (c *Client) readValid(size int, valid func(string) bool) (string, error) {
	for {
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		s := strings.ToLower(strings.TrimSpace(c.in.Text()))
		if len(s) == size && valid(s) {
			return s, nil
		}
		fmt.Fprintf(c.out, "Invalid input [%s], try again: ", s)
	}
}

// isLowerAlpha reports whether s is all lowercase ASCII letters.
func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
