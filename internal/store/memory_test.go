package store

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	in := game.Summary{ID: "r1", Secret: "CRANE", Attempts: 3, Won: true}
	if err := st.Save(ctx, in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	mem := st.(*memory)
	got, err := mem.get("r1")
	if err != nil {
		t.Fatalf("get() error: %v", err)
	}
	if got.Secret != "CRANE" || got.Attempts != 3 || !got.Won {
		t.Errorf("get() = %+v, want %+v", got, in)
	}
	if _, err := mem.get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	if err := NewMemoryStore().Save(context.Background(), game.Summary{}); err == nil {
		t.Error("Save() without ID should fail")
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	rounds := []game.Summary{
		{ID: "a", Won: true, Attempts: 3},
		{ID: "b", Won: true, Attempts: 4},
		{ID: "c", Won: false, Attempts: 6},
		{ID: "d", Won: true, Attempts: 3},
	}
	for _, r := range rounds {
		if err := st.Save(ctx, r); err != nil {
			t.Fatal(err)
		}
	}
	// Re-saving keeps the original position.
	if err := st.Save(ctx, rounds[0]); err != nil {
		t.Fatal(err)
	}

	got, err := st.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Played != 4 || got.Wins != 3 {
		t.Errorf("Stats() played/wins = %d/%d, want 4/3", got.Played, got.Wins)
	}
	if got.Streak != 1 || got.MaxStreak != 2 {
		t.Errorf("Stats() streak/max = %d/%d, want 1/2", got.Streak, got.MaxStreak)
	}
	if got.Distribution[3] != 2 || got.Distribution[4] != 1 || got.Distribution[6] != 0 {
		t.Errorf("Stats().Distribution = %v", got.Distribution)
	}
	if got.WinRate() != 75 {
		t.Errorf("WinRate() = %d, want 75", got.WinRate())
	}
}

func TestStatsEmpty(t *testing.T) {
	got, err := NewMemoryStore().Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.Played != 0 || got.WinRate() != 0 {
		t.Errorf("Stats() on empty store = %+v", got)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewMemoryStore()
	if err := st.Save(ctx, game.Summary{ID: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want context.Canceled", err)
	}
	if _, err := st.Stats(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Stats() error = %v, want context.Canceled", err)
	}
}
