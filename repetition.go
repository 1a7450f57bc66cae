package monch

import "errors"

// ManyTill keeps running a combinator, collecting its values, until the
// condition matches the current input, the combinator backtracks, or the
// input is exhausted. The condition is only probed, never consumed. A
// Failure from either the combinator or the condition propagates.
//
// An element that succeeds without consuming input would loop forever, so
// it is reported as a Failure rather than retried.
func ManyTill[O, C any](combinator Parser[O], condition Parser[C]) Parser[[]O] {
	return func(input string) ([]O, string, error) {
		results := []O{}
		for input != "" {
			if _, _, err := condition(input); err == nil {
				break
			} else if !errors.Is(err, ErrBacktrack) {
				return nil, input, err
			}
			value, rest, err := combinator(input)
			if errors.Is(err, ErrBacktrack) {
				return results, input, nil
			}
			if err != nil {
				return nil, input, err
			}
			if len(rest) == len(input) {
				return nil, input, errNoProgress(input)
			}
			results = append(results, value)
			input = rest
		}
		return results, input, nil
	}
}

// Many0 applies the combinator zero or more times, returning all the
// collected values. It never backtracks.
func Many0[O any](combinator Parser[O]) Parser[[]O] {
	return ManyTill(combinator, func(input string) (struct{}, string, error) {
		return struct{}{}, input, ErrBacktrack
	})
}

// Many1 applies the combinator one or more times, backtracking as a whole
// if nothing was collected.
func Many1[O any](combinator Parser[O]) Parser[[]O] {
	return IfTrue(Many0(combinator), func(values []O) bool { return len(values) > 0 })
}

// SeparatedList collects values of a combinator separated by a separator.
// The list stops at the first backtrack of either, so a trailing separator
// is left unconsumed; an empty list is a success. Failures propagate.
func SeparatedList[O, S any](combinator Parser[O], separator Parser[S]) Parser[[]O] {
	return func(input string) ([]O, string, error) {
		results := []O{}
		for input != "" {
			value, rest, err := combinator(input)
			if errors.Is(err, ErrBacktrack) {
				return results, input, nil
			}
			if err != nil {
				return nil, input, err
			}
			if len(rest) == len(input) {
				return nil, input, errNoProgress(input)
			}
			results = append(results, value)
			input = rest

			_, rest, err = separator(input)
			if errors.Is(err, ErrBacktrack) {
				break
			}
			if err != nil {
				return nil, input, err
			}
			input = rest
		}
		return results, input, nil
	}
}

func errNoProgress(input string) error {
	return NewFailure(input, "Parser succeeded without consuming input.")
}
