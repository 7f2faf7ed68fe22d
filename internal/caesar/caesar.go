// Package caesar implements a fixed-shift substitution cipher over the
// lowercase Latin alphabet.
package caesar

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is the ordered set of letters the cipher operates over.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Shift is the number of positions each letter is advanced.
const Shift = 3

// ErrInvalidCharacter is returned for input outside the alphabet.
var ErrInvalidCharacter = errors.New("caesar: character not in alphabet")

// ShiftLetter maps one lowercase letter to its shifted counterpart,
// wrapping past 'z'. Anything outside the alphabet fails with
// ErrInvalidCharacter.
func ShiftLetter(r rune) (rune, error) {
	if r < 'a' || r > 'z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
	}
	return 'a' + (r-'a'+Shift)%26, nil
}

// EncryptWord shifts every letter of word in order. The output has the
// same length and letter order as the input; an empty word encrypts to an
// empty word. The first invalid character aborts the whole word.
func EncryptWord(word string) (string, error) {
	out := &strings.Builder{}
	out.Grow(len(word))

	for i, r := range word {
		s, err := ShiftLetter(r)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", i, err)
		}
		out.WriteRune(s)
	}
	return out.String(), nil
}
