package words

import (
	"errors"
	"strings"
)

// Rejection reasons for a typed guess, checked in this order.
var (
	ErrNotAlphabetic = errors.New("Word should contain only alphabets")
	ErrWrongLength   = errors.New("Must provide word of length 5")
)

// ValidateGuess trims and uppercases a typed line and checks it is a
// playable word. The returned error is one of the rejection reasons above.
func ValidateGuess(line string) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(line))
	if !isAlpha(w) {
		return "", ErrNotAlphabetic
	}
	if len(w) != Length {
		return "", ErrWrongLength
	}
	return w, nil
}
