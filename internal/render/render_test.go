package render

import (
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

func TestRender(t *testing.T) {
	tests := []struct {
		guess string
		marks game.Marks
		want  string
	}{
		{
			"CRANE",
			game.Marks{game.MarkFull, game.MarkFull, game.MarkFull, game.MarkFull, game.MarkFull},
			"\x1b[30;42m C \x1b[30;42m R \x1b[30;42m A \x1b[30;42m N \x1b[30;42m E \x1b[0m",
		},
		{
			"EDCBA",
			game.Marks{game.MarkHalf, game.MarkHalf, game.MarkFull, game.MarkHalf, game.MarkHalf},
			"\x1b[30;43m E \x1b[30;43m D \x1b[30;42m C \x1b[30;43m B \x1b[30;43m A \x1b[0m",
		},
		{
			"PLOTS",
			game.Marks{game.MarkNone, game.MarkHalf, game.MarkNone, game.MarkFull, game.MarkNone},
			"\x1b[30;47m P \x1b[30;43m L \x1b[30;47m O \x1b[30;42m T \x1b[30;47m S \x1b[0m",
		},
	}
	for _, tt := range tests {
		if got := Render(tt.guess, tt.marks); got != tt.want {
			t.Errorf("Render(%s, %v) = %q, want %q", tt.guess, tt.marks, got, tt.want)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	marks, _ := game.Evaluate("ABCDE", "AABCD")
	a := Render("AABCD", marks)
	b := Render("AABCD", marks)
	if a != b {
		t.Errorf("Render() not deterministic: %q != %q", a, b)
	}
}

func TestRenderUnknownMarkPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Render() with an unknown mark did not panic")
		}
	}()
	Render("CRANE", game.Marks{"bogus", game.MarkNone, game.MarkNone, game.MarkNone, game.MarkNone})
}

func TestBanner(t *testing.T) {
	for _, letter := range []string{" W ", " O ", " R ", " D ", " L ", " E "} {
		if !strings.Contains(Banner, letter) {
			t.Errorf("Banner missing %q", letter)
		}
	}
	if !strings.HasSuffix(Banner, styleReset) {
		t.Error("Banner does not end with a reset")
	}
}

func TestSummary(t *testing.T) {
	st := store.Stats{Played: 4, Wins: 3, Streak: 2, MaxStreak: 2}
	st.Distribution[3] = 2
	st.Distribution[6] = 1
	out := Summary(st)
	for _, want := range []string{"Played:", "4", "Won:", "3 (75%)", "Best streak:", "Solved in 3:", "Solved in 6:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "Solved in 1:") {
		t.Errorf("Summary() lists empty distribution rows: %q", out)
	}
}
