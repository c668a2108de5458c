// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Score guesses against the secret (Evaluate).
//   - Track the secret, the attempt counter and the won/lost decision.
//   - Reset for a new round while keeping the attempt limit.
//
// Notes:
//   - Secrets are drawn from a words.Catalog; the Round keeps its own copy.
//   - Inputs are validated upstream (words.ValidateGuess), not here.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	mrand "math/rand"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

var (
	// ErrNoActiveSecret is returned when a guess is recorded before Begin.
	ErrNoActiveSecret = errors.New("game: no active secret")
	// ErrRoundFinished is returned when a guess is recorded after a win or loss.
	ErrRoundFinished = errors.New("game: round finished")
)

// Round holds the state of one round. It is owned by a single game loop
// and is not safe for concurrent use.
type Round struct {
	id          string
	secret      string
	guesses     []string
	attempts    int
	maxAttempts int
	state       State
	finishedAt  time.Time
}

// NewRound constructs a Round with no active secret.
func NewRound(maxAttempts int) *Round {
	return &Round{maxAttempts: maxAttempts}
}

// Begin draws a secret from c and zeroes the attempt counter.
// It is a no-op while a secret is already held.
func (r *Round) Begin(c *words.Catalog, rng *mrand.Rand) {
	if r.secret != "" {
		return
	}
	r.start(c.PickRandom(rng))
}

// beginWith starts a round with a fixed secret. Same no-op rule as Begin.
func (r *Round) beginWith(secret string) {
	if r.secret != "" {
		return
	}
	r.start(strings.ToUpper(secret))
}

func (r *Round) start(secret string) {
	r.id = randomID()
	r.secret = secret
	r.guesses = nil
	r.attempts = 0
	r.state = StatePlaying
	r.finishedAt = time.Time{}
}

// RecordAttempt scores guess against the secret and consumes one attempt.
//
// State transitions:
//   - All positions Full → StateWon.
//   - Else attempts reach the limit → StateLost.
//   - Else the round stays in StatePlaying.
func (r *Round) RecordAttempt(guess string) (Result, error) {
	if r.secret == "" {
		return Result{}, ErrNoActiveSecret
	}
	if r.state.Finished() {
		return Result{}, ErrRoundFinished
	}

	marks, full := Evaluate(r.secret, guess)
	r.attempts++
	r.guesses = append(r.guesses, guess)

	switch {
	case full == WordLength:
		r.finish(StateWon)
	case r.attempts >= r.maxAttempts:
		r.finish(StateLost)
	}
	return Result{Marks: marks, Full: full, Attempt: r.attempts, State: r.state}, nil
}

func (r *Round) finish(s State) {
	r.state = s
	r.finishedAt = time.Now().UTC()
}

// Reset clears the secret and the attempt counter. The limit is kept.
func (r *Round) Reset() {
	r.id = ""
	r.secret = ""
	r.guesses = nil
	r.attempts = 0
	r.state = StateNoRound
	r.finishedAt = time.Time{}
}

// ID returns the identifier of the current round, empty before Begin.
func (r *Round) ID() string { return r.id }

// Secret returns the active secret, empty if none.
func (r *Round) Secret() string { return r.secret }

// Attempts returns the number of guesses consumed so far.
func (r *Round) Attempts() int { return r.attempts }

// MaxAttempts returns the attempt limit.
func (r *Round) MaxAttempts() int { return r.maxAttempts }

// NextAttempt returns the 1-based number of the upcoming guess.
func (r *Round) NextAttempt() int { return r.attempts + 1 }

// State returns the current lifecycle state.
func (r *Round) State() State { return r.state }

// Guesses returns a copy of the guesses recorded this round.
func (r *Round) Guesses() []string { return append([]string(nil), r.guesses...) }

// Summary snapshots the round for the history store.
func (r *Round) Summary() Summary {
	return Summary{
		ID:         r.id,
		Secret:     r.secret,
		Guesses:    r.Guesses(),
		Attempts:   r.attempts,
		Won:        r.state == StateWon,
		FinishedAt: r.finishedAt,
	}
}

// Evaluate classifies each letter of guess against secret.
//
// A letter is Full when it equals the secret's letter at the same
// position, Half when the secret contains it anywhere else, and None
// otherwise. Containment does not consume secret letters, so a repeated
// guess letter can be Half more often than it occurs in the secret.
func Evaluate(secret, guess string) (Marks, int) {
	var marks Marks
	full := 0
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == secret[i]:
			marks[i] = MarkFull
			full++
		case strings.IndexByte(secret, guess[i]) >= 0:
			marks[i] = MarkHalf
		default:
			marks[i] = MarkNone
		}
	}
	return marks, full
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
