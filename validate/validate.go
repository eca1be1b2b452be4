package validate

import (
	"fmt"

	"github.com/lookalike-codec/lookalike"
)

// Result is the outcome of a ciphertext sanity check. It is a value, not
// an error: callers render Message however they like.
type Result struct {
	Valid    bool
	Message  string
	Position int // 1-based position of the first offending character
}

// Ciphertext checks that s is non-empty and drawn entirely from the
// alphabet. The first violation is reported with its 1-based position.
// Never fails.
func Ciphertext(s string) Result {
	if s == "" {
		return Result{Message: "ciphertext must not be empty"}
	}

	if pos, r, found := FirstInvalid(s); found {
		return Result{
			Message:  fmt.Sprintf("invalid character %q (position: %d)", r, pos),
			Position: pos,
		}
	}

	return Result{Valid: true}
}

// FirstInvalid returns the 1-based character position and value of the
// first character outside the alphabet. found is false when s is clean.
// Positions count characters, not bytes.
func FirstInvalid(s string) (pos int, r rune, found bool) {
	pos = 0
	for _, c := range s {
		pos++
		if c > 127 || !lookalike.IsSymbol(byte(c)) {
			return pos, c, true
		}
	}
	return 0, 0, false
}
