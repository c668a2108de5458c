// internal/words/words.go
//
// Word catalog for the game engine.
//
// Responsibilities:
//   - Parse raw line-oriented text into a catalog of candidate words.
//   - Open a catalog from a file path or the bundled list ("builtin").
//   - Pick a secret uniformly at random.
//
// Constraints:
//   • Words are exactly 5 ASCII letters.
//   • Catalog entries are uppercase and unique; first occurrence wins.
//   • A catalog is read-only once built and may be shared freely.

package words

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/assets"
)

// Length is the number of letters in every word.
const Length = 5

// BuiltinSource selects the word list compiled into the binary.
const BuiltinSource = "builtin"

// ErrEmptyCatalog is returned when a word list holds no valid words.
var ErrEmptyCatalog = errors.New("words: no appropriate words found")

// LoadError reports a failure to read the word-list text itself.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: read %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Catalog is an immutable set of canonical words.
type Catalog struct {
	words []string
	set   map[string]struct{}
}

// Load builds a catalog from raw text, one candidate per line.
// Lines that are not exactly 5 letters are dropped silently.
func Load(raw string) (*Catalog, error) {
	c := &Catalog{set: make(map[string]struct{})}
	for _, line := range strings.Split(raw, "\n") {
		w := strings.TrimSuffix(line, "\r")
		if len(w) != Length || !isAlpha(w) {
			continue
		}
		w = strings.ToUpper(w)
		if _, dup := c.set[w]; dup {
			continue
		}
		c.set[w] = struct{}{}
		c.words = append(c.words, w)
	}
	if len(c.words) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Open reads the word list named by source and loads it.
// source is either BuiltinSource or a filesystem path.
func Open(source string) (*Catalog, error) {
	raw, err := readSource(source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	c, err := Load(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	log.Debug().Str("source", source).Int("words", c.Len()).Msg("word list loaded")
	return c, nil
}

func readSource(source string) (string, error) {
	if source == BuiltinSource {
		return assets.WordList()
	}
	b, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PickRandom returns one word chosen uniformly with rng.
// The catalog is never empty, Load guarantees it.
func (c *Catalog) PickRandom(rng *rand.Rand) string {
	return c.words[rng.Intn(len(c.words))]
}

// Len reports the number of words in the catalog.
func (c *Catalog) Len() int { return len(c.words) }

// Contains reports whether w (any case) is in the catalog.
func (c *Catalog) Contains(w string) bool {
	_, ok := c.set[strings.ToUpper(w)]
	return ok
}

// Words returns a copy of the catalog in load order.
func (c *Catalog) Words() []string {
	return append([]string(nil), c.words...)
}

// isAlpha reports whether s is all ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
