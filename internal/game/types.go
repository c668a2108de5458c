// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (full/half/none).
//   - State: lifecycle of a single round.
//   - Result, Summary: what a scored guess and a finished round report.

package game

import "time"

// WordLength is the number of letters in a secret and in a guess.
const WordLength = 5

// MaxAttempts is the number of guesses allowed per round.
const MaxAttempts = 6

// Mark represents the evaluation result for a single letter in a guess.
//   - "full": letter matches the secret at this position.
//   - "half": letter appears somewhere else in the secret.
//   - "none": letter does not appear in the secret.
type Mark string

const (
	MarkFull Mark = "full"
	MarkHalf Mark = "half"
	MarkNone Mark = "none"
)

// Marks is the classification of one guess, position by position.
type Marks [WordLength]Mark

// State is where a Round sits in its lifecycle.
type State int

const (
	// StateNoRound is the initial state and the state after Reset.
	StateNoRound State = iota
	// StatePlaying means a secret is held and guesses are being counted.
	StatePlaying
	// StateWon means the last guess matched the secret at every position.
	StateWon
	// StateLost means the attempt limit was reached without a match.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNoRound:
		return "no_round"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished reports whether s ends a round.
func (s State) Finished() bool { return s == StateWon || s == StateLost }

// Result is what RecordAttempt reports for one guess.
type Result struct {
	Marks   Marks // per-position classification
	Full    int   // number of MarkFull entries
	Attempt int   // 1-based number of this guess
	State   State // round state after the guess
}

// Summary is a snapshot of a finished round.
type Summary struct {
	ID         string    // round identifier (random hex string)
	Secret     string    // the secret word, uppercase
	Guesses    []string  // guesses in order, uppercase
	Attempts   int       // guesses consumed
	Won        bool      // true if the round ended in a win
	FinishedAt time.Time // wall clock time the round ended
}
