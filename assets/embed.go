// apps/solver/assets/embed.go
//
// Embedded default dictionary so the solver runs with zero configuration.
// words_freq.txt holds "word,frequency" lines, most frequent first,
// derived from an English word-frequency corpus and trimmed to common
// five-letter words.

package assets

import _ "embed"

//go:embed words_freq.txt
var defaultWords string

// DefaultWords returns the embedded "word,frequency" dictionary text.
func DefaultWords() string {
	return defaultWords
}
