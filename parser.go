package monch

import "errors"

// A Parser consumes a prefix of its input and produces a value of type O.
//
// On success it returns the value and the unconsumed remainder of the
// input, which is always a suffix of (or equal to) the input it was given.
// On error it returns the input unchanged along with either ErrBacktrack
// or a *Failure.
type Parser[O any] func(input string) (value O, rest string, err error)

// WithFailureHandling converts a combinator into a terminal, caller-facing
// function over an input.
//
// The parse succeeds only if the combinator succeeds and consumes the
// entire input. Leftover input, or a backtrack reaching the top level,
// becomes a trailing-input Failure; a Failure from the combinator is
// returned as-is.
func WithFailureHandling[O any](combinator Parser[O]) func(input string) (O, error) {
	return func(input string) (O, error) {
		value, rest, err := combinator(input)
		switch {
		case errors.Is(err, ErrBacktrack):
			// nothing matched, from the very start
			var zero O
			return zero, NewFailureForTrailingInput(input)
		case err != nil:
			var zero O
			return zero, err
		case rest != "":
			var zero O
			return zero, NewFailureForTrailingInput(rest)
		}
		return value, nil
	}
}
