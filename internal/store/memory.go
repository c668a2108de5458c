// internal/store/memory.go
//
// In-memory round history for a single process run.
//
// Characteristics:
//   - Stores finished game.Summary values keyed by round ID, in finish order.
//   - Derives session statistics (played, wins, streaks, distribution).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is written to disk.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// ErrNotFound is returned for an unknown round ID.
var ErrNotFound = errors.New("store: round not found")

// Store defines the history interface for finished rounds.
type Store interface {
	// Save records a finished round. Saving the same ID twice replaces it.
	Save(ctx context.Context, s game.Summary) error

	// Stats aggregates every saved round.
	Stats(ctx context.Context) (Stats, error)
}

// Stats summarises the rounds played in a session.
type Stats struct {
	Played    int
	Wins      int
	Streak    int // consecutive wins ending with the latest round
	MaxStreak int
	// Distribution[n] counts wins that took n attempts.
	Distribution [game.MaxAttempts + 1]int
}

// WinRate returns the percentage of rounds won, rounded down.
func (s Stats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}

// memory is an in-memory Store implementation.
type memory struct {
	mu     sync.RWMutex            // guards rounds and order
	rounds map[string]game.Summary // keyed by Summary.ID
	order  []string                // IDs in first-save order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]game.Summary)}
}

// Save adds or updates the round in the map.
func (m *memory) Save(ctx context.Context, s game.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.ID == "" {
		return errors.New("store: round has no ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rounds[s.ID]; !ok {
		m.order = append(m.order, s.ID)
	}
	m.rounds[s.ID] = s
	return nil
}

// get looks up a round by ID.
func (m *memory) get(id string) (game.Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.rounds[id]; ok {
		return s, nil
	}
	return game.Summary{}, ErrNotFound
}

// Stats walks the rounds in play order; a loss resets the streak.
func (m *memory) Stats(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var st Stats
	for _, id := range m.order {
		s := m.rounds[id]
		st.Played++
		if !s.Won {
			st.Streak = 0
			continue
		}
		st.Wins++
		st.Streak++
		if st.Streak > st.MaxStreak {
			st.MaxStreak = st.Streak
		}
		if s.Attempts > 0 && s.Attempts < len(st.Distribution) {
			st.Distribution[s.Attempts]++
		}
	}
	return st, nil
}
