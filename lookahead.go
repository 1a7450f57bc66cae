package monch

// CheckNot is a zero-width negative lookahead: it succeeds, consuming
// nothing, if the combinator would fail on the current input with either
// error kind, and backtracks if it would succeed.
func CheckNot[O any](combinator Parser[O]) Parser[struct{}] {
	return func(input string) (struct{}, string, error) {
		if _, _, err := combinator(input); err == nil {
			return struct{}{}, input, ErrBacktrack
		}
		return struct{}{}, input, nil
	}
}

// AssertExists runs the combinator and upgrades a backtrack into a Failure
// with the given message. This is the mechanism for treating a mandatory
// construct's absence as a hard error instead of silently falling through
// to an outer alternative.
func AssertExists[O any](combinator Parser[O], message string) Parser[O] {
	return Assert(combinator, func(_ O, _ string, err error) bool { return err == nil }, message)
}

// Assert runs the combinator and checks its outcome against the condition.
// An outcome that satisfies the condition is returned unchanged. Otherwise
// Assert raises a Failure carrying the message; if the outcome was itself
// a Failure, its message is appended and its location kept, so the most
// specific location wins.
func Assert[O any](combinator Parser[O], condition func(value O, rest string, err error) bool, message string) Parser[O] {
	return func(input string) (O, string, error) {
		value, rest, err := combinator(input)
		if condition(value, rest, err) {
			return value, rest, err
		}
		var zero O
		if f := failure(err); f != nil {
			return zero, input, NewFailure(f.Input, message+"\n\n"+f.Message)
		}
		return zero, input, NewFailure(input, message)
	}
}

// WithFailureInput rewrites the location of a Failure raised by the
// combinator to newInput, keeping the message. Useful for reporting a
// fatal error at the start of an enclosing construct rather than deep
// inside it. Successes and backtracks pass through untouched.
func WithFailureInput[O any](newInput string, combinator Parser[O]) Parser[O] {
	return func(input string) (O, string, error) {
		value, rest, err := combinator(input)
		if f := failure(err); f != nil {
			return value, rest, NewFailure(newInput, f.Message)
		}
		return value, rest, err
	}
}

// WithErrorContext prepends a message describing the enclosing construct
// to any Failure raised by the combinator, keeping its location. Contexts
// accumulate outermost-first, so message chains read outer-to-inner.
// Successes and backtracks pass through untouched.
func WithErrorContext[O any](combinator Parser[O], message string) Parser[O] {
	return func(input string) (O, string, error) {
		value, rest, err := combinator(input)
		if f := failure(err); f != nil {
			return value, rest, NewFailure(f.Input, message+"\n\n"+f.Message)
		}
		return value, rest, err
	}
}
