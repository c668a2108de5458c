// config.go
//
// Runtime configuration for the terminal client.
// Precedence: command line > environment (.env included) > defaults.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt   word-list source ("builtin" for the bundled list)
//   LOG_LEVEL=debug|info|warn|...   zerolog level, logs go to stderr
//   WORDLE_SEED=42                  fixed seed for secret selection (0 = random)

package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
)

const defaultWordsFile = "data/words5.txt"

// Config holds the options a run needs.
type Config struct {
	WordsSource string
	LogLevel    string
	// Seed for secret selection. 0 means a random seed is generated.
	Seed int64
}

// configFromEnv returns defaults overlaid with the environment.
func configFromEnv() (Config, error) {
	cfg := Config{
		WordsSource: getEnv("WORDS_FILE", defaultWordsFile),
		LogLevel:    getEnv("LOG_LEVEL", "warn"),
	}
	if v := os.Getenv("WORDLE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("WORDLE_SEED: %w", err)
		}
		cfg.Seed = n
	}
	return cfg, nil
}

// resolveSeed returns cfg.Seed, or a crypto-random seed when it is 0.
func (c Config) resolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	var b [8]byte
	_, _ = rand.Read(b[:])
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
