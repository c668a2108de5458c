// internal/render/render.go
//
// Presentation for the terminal client.
//   - Banner: the fixed game title, one background colour per letter.
//   - Render: a scored guess as coloured tiles (green/yellow/white).
//   - Summary: end-of-session statistics.
//
// Render and Banner write raw ANSI SGR sequences; their bytes are part of
// the display contract and do not depend on the terminal's colour profile.

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

const (
	styleFull  = "\x1b[30;42m"
	styleHalf  = "\x1b[30;43m"
	styleNone  = "\x1b[30;47m"
	styleReset = "\x1b[0m"
)

// Banner is the game title.
const Banner = "\x1b[30;41m W \x1b[30;42m O \x1b[30;43m R \x1b[30;44m D \x1b[30;45m L \x1b[30;46m E \x1b[0m"

// Render formats guess with one style marker per mark, followed by the
// letter, and a trailing reset. Segments are separated by single spaces.
func Render(guess string, marks game.Marks) string {
	segments := make([]string, 0, 2*len(marks)+1)
	for i, m := range marks {
		segments = append(segments, markStyle(m), guess[i:i+1])
	}
	segments = append(segments, styleReset)
	return strings.Join(segments, " ")
}

func markStyle(m game.Mark) string {
	switch m {
	case game.MarkFull:
		return styleFull
	case game.MarkHalf:
		return styleHalf
	case game.MarkNone:
		return styleNone
	default:
		panic(fmt.Sprintf("render: unknown mark %q", m))
	}
}

var (
	cGood  = lipgloss.Color("42")  // green
	cMuted = lipgloss.Color("244") // gray
	cGold  = lipgloss.Color("220") // gold

	title = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	key   = lipgloss.NewStyle().Foreground(cMuted)
	value = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

// Summary renders session statistics as a small block of lines.
func Summary(st store.Stats) string {
	var b strings.Builder
	b.WriteString(title.Render("Session"))
	b.WriteByte('\n')
	line := func(label string, v any) {
		fmt.Fprintf(&b, "%s %s\n", key.Render(label+":"), value.Render(fmt.Sprint(v)))
	}
	line("Played", st.Played)
	line("Won", fmt.Sprintf("%d (%d%%)", st.Wins, st.WinRate()))
	line("Streak", st.Streak)
	line("Best streak", st.MaxStreak)
	for i := 1; i < len(st.Distribution); i++ {
		if st.Distribution[i] == 0 {
			continue
		}
		line(fmt.Sprintf("Solved in %d", i), st.Distribution[i])
	}
	return b.String()
}
