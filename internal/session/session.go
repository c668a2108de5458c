// Package session drives the interactive game loop.
//
// One Session owns one game.Round for the life of the process: it starts a
// round, collects guesses until the round is won or lost, records the
// outcome, and asks whether to play again.
package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/prompt"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// Config wires a Session to its collaborators.
type Config struct {
	Catalog *words.Catalog
	Rand    *rand.Rand
	In      io.Reader
	Out     io.Writer
	// Store receives every finished round. Defaults to a memory store.
	Store store.Store
}

// Session is the top-level game loop.
type Session struct {
	catalog *words.Catalog
	rng     *rand.Rand
	round   *game.Round
	prompt  *prompt.Prompter
	out     io.Writer
	store   store.Store
}

// New creates a session with a fresh round limited to game.MaxAttempts.
func New(cfg Config) *Session {
	st := cfg.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Session{
		catalog: cfg.Catalog,
		rng:     cfg.Rand,
		round:   game.NewRound(game.MaxAttempts),
		prompt:  prompt.New(cfg.In, cfg.Out),
		out:     cfg.Out,
		store:   st,
	}
}

// Run plays rounds until the player declines another one.
// Input failures and context cancellation, including cancellation while
// waiting for a line, end the loop with an error.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.round.State() == game.StateNoRound {
			s.round.Begin(s.catalog, s.rng)
			log.Debug().Str("round", s.round.ID()).Msg("round started")
			fmt.Fprintf(s.out, "\n%s\n\n", render.Banner)
		}

		guess, err := s.prompt.Guess(ctx, s.round.NextAttempt())
		if err != nil {
			return fmt.Errorf("guess: %w", err)
		}

		res, err := s.round.RecordAttempt(guess)
		if err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}
		log.Debug().
			Str("round", s.round.ID()).
			Int("attempt", res.Attempt).
			Int("full", res.Full).
			Str("state", res.State.String()).
			Bool("in_list", s.catalog.Contains(guess)).
			Msg("guess scored")

		fmt.Fprintf(s.out, "%s\n\n", render.Render(guess, res.Marks))

		switch res.State {
		case game.StateWon:
			fmt.Fprintln(s.out, "You WON!")
		case game.StateLost:
			fmt.Fprintln(s.out, "You LOST!")
			fmt.Fprintf(s.out, "Word: %s\n", s.round.Secret())
		default:
			continue
		}

		if err := s.finishRound(ctx); err != nil {
			return err
		}

		again, err := s.prompt.PlayAgain(ctx)
		if err != nil {
			return fmt.Errorf("play again: %w", err)
		}
		if !again {
			return s.printSummary(ctx)
		}
		s.round.Reset()
	}
}

// finishRound records the round that just ended.
func (s *Session) finishRound(ctx context.Context) error {
	sum := s.round.Summary()
	log.Info().
		Str("round", sum.ID).
		Bool("won", sum.Won).
		Int("attempts", sum.Attempts).
		Msg("round finished")
	if err := s.store.Save(ctx, sum); err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

func (s *Session) printSummary(ctx context.Context) error {
	st, err := s.store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	fmt.Fprint(s.out, render.Summary(st))
	return nil
}

// Round exposes the current round (useful for tests).
func (s *Session) Round() *game.Round { return s.round }
