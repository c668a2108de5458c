// internal/prompt/prompt.go
//
// Line-oriented input for the game loop.
//   - Guess: asks for a word until a valid one is typed.
//   - PlayAgain: asks "y"/"N" until one of them is typed exactly.
//
// Reads block until a full line arrives or ctx is cancelled. A closed or
// failing stream (input or output) is reported as *IOError; invalid text
// is never an error.

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// PlayAgainQuestion is printed before every play-again read.
const PlayAgainQuestion = "Playagain? [y/N]"

// IOError reports that the prompt could not read its answer or write its
// question, most often because the input stream was closed.
type IOError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *IOError) Error() string { return "prompt " + e.Op + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

type lineResult struct {
	line string
	err  error
}

// Prompter reads answers from in and writes prompts to out.
// It is used by one goroutine at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// pending holds a read abandoned by a cancelled context; the next
	// read collects it so no line is lost.
	pending chan lineResult
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Guess prompts with the attempt number and returns a canonical word.
// Invalid input prints an INFO line and prompts again.
func (p *Prompter) Guess(ctx context.Context, attempt int) (string, error) {
	for {
		if _, err := fmt.Fprintf(p.out, "%d ", attempt); err != nil {
			return "", &IOError{Op: "write", Err: err}
		}
		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		w, err := words.ValidateGuess(line)
		if err != nil {
			log.Debug().Str("input", line).Err(err).Msg("guess rejected")
			fmt.Fprintf(p.out, "INFO: %s\n", err)
			continue
		}
		return w, nil
	}
}

// PlayAgain returns true for "y" and false for "N". The match is exact and
// case-sensitive; anything else, including "Y" and "n", asks again.
func (p *Prompter) PlayAgain(ctx context.Context) (bool, error) {
	for {
		if _, err := fmt.Fprintln(p.out, PlayAgainQuestion); err != nil {
			return false, &IOError{Op: "write", Err: err}
		}
		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(line) {
		case "y":
			return true, nil
		case "N":
			return false, nil
		}
	}
}

// readLine returns the next line without its terminator. A final line
// with no newline is still returned; EOF after that is an IOError.
// Cancellation returns ctx.Err() unwrapped.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	var r lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r = <-p.pending:
		p.pending = nil
	}

	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return strings.TrimRight(r.line, "\r\n"), nil
		}
		return "", &IOError{Op: "read", Err: r.err}
	}
	return strings.TrimRight(r.line, "\r\n"), nil
}
