package monch

import (
	"errors"
	"fmt"
)

// ErrBacktrack signals that a combinator did not match and another
// alternative should be tried. It carries no location or message and must
// never reach a user; Or and the repetition combinators consume it.
var ErrBacktrack = errors.New("backtrack")

// snippetLen limits the amount of input echoed in a formatted Failure, to
// prevent wrapping in the console.
const snippetLen = 60

// Failure is a fatal parse error: the input is definitively wrong at the
// recorded location. Unlike a backtrack it aborts all enclosing
// alternation, propagating until the driver formats it or an enclosing
// combinator rewrites it (WithFailureInput, WithErrorContext).
type Failure struct {
	// Input is the remaining input at the point of failure.
	Input string
	// Message is the unadorned error message.
	Message string
}

// NewFailure creates a Failure for the given remaining input.
func NewFailure(input, message string) *Failure {
	return &Failure{Input: input, Message: message}
}

// NewFailureForTrailingInput creates the Failure reported whenever
// leftover, unexplained input remains after an otherwise successful parse.
func NewFailureForTrailingInput(input string) *Failure {
	return NewFailure(input, "Unexpected character.")
}

// Error renders the failure as the message, a truncated snippet of the
// input at the failure location, and a marker line.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s\n  %s\n  ~", f.Message, truncate(f.Input, snippetLen))
}

// truncate returns the first n characters of s without splitting a
// multi-byte code point.
func truncate(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// failure unwraps a *Failure from err, or nil if err is a backtrack.
func failure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}
