package monch

import "errors"

// Map transforms a combinator's success value through f. Errors pass
// through unchanged.
func Map[O, R any](combinator Parser[O], f func(O) R) Parser[R] {
	return func(input string) (R, string, error) {
		value, rest, err := combinator(input)
		if err != nil {
			var zero R
			return zero, input, err
		}
		return f(value), rest, nil
	}
}

// MapRes hands the entire outcome of a combinator, success or error, to f.
// It steps outside the Parser contract, letting callers build their own
// higher-level handling of a combinator's result.
func MapRes[O, R any](combinator Parser[O], f func(value O, rest string, err error) R) func(input string) R {
	return func(input string) R {
		return f(combinator(input))
	}
}

// Maybe maps a success to the value and a backtrack to nil with no input
// consumed. A Failure still propagates; only soft failures are absorbed.
func Maybe[O any](combinator Parser[O]) Parser[*O] {
	return func(input string) (*O, string, error) {
		value, rest, err := combinator(input)
		if errors.Is(err, ErrBacktrack) {
			return nil, input, nil
		}
		if err != nil {
			return nil, input, err
		}
		return &value, rest, nil
	}
}

// IfTrue succeeds with a combinator's value only if the condition holds
// for it, and backtracks otherwise.
func IfTrue[O any](combinator Parser[O], condition func(O) bool) Parser[O] {
	return func(input string) (O, string, error) {
		value, rest, err := combinator(input)
		if err != nil {
			var zero O
			return zero, input, err
		}
		if !condition(value) {
			var zero O
			return zero, input, ErrBacktrack
		}
		return value, rest, nil
	}
}

// Or tries a, and if it backtracks, tries b on the same input. A success
// or Failure from a is final: b is never attempted after a hard failure.
func Or[O any](a, b Parser[O]) Parser[O] {
	return func(input string) (O, string, error) {
		value, rest, err := a(input)
		if errors.Is(err, ErrBacktrack) {
			return b(input)
		}
		return value, rest, err
	}
}

// Or3 checks for any to match, in order.
func Or3[O any](a, b, c Parser[O]) Parser[O] {
	return Or(a, Or(b, c))
}

// Or4 checks for any to match, in order.
func Or4[O any](a, b, c, d Parser[O]) Parser[O] {
	return Or3(a, b, Or(c, d))
}

// Or5 checks for any to match, in order.
func Or5[O any](a, b, c, d, e Parser[O]) Parser[O] {
	return Or4(a, b, c, Or(d, e))
}

// Or6 checks for any to match, in order.
func Or6[O any](a, b, c, d, e, f Parser[O]) Parser[O] {
	return Or5(a, b, c, d, Or(e, f))
}

// Or7 checks for any to match, in order.
func Or7[O any](a, b, c, d, e, f, g Parser[O]) Parser[O] {
	return Or6(a, b, c, d, e, Or(f, g))
}

// Tuple holds the two values produced by Pair.
type Tuple[First, Second any] struct {
	First  First
	Second Second
}

// Pair runs first then second on the advanced input and returns both
// values. The first error from either aborts the pair.
func Pair[First, Second any](first Parser[First], second Parser[Second]) Parser[Tuple[First, Second]] {
	return func(input string) (Tuple[First, Second], string, error) {
		firstValue, rest, err := first(input)
		if err != nil {
			return Tuple[First, Second]{}, input, err
		}
		secondValue, rest, err := second(rest)
		if err != nil {
			return Tuple[First, Second]{}, input, err
		}
		return Tuple[First, Second]{firstValue, secondValue}, rest, nil
	}
}

// Preceded returns the second value and discards the first.
func Preceded[First, Second any](first Parser[First], second Parser[Second]) Parser[Second] {
	return Map(Pair(first, second), func(pair Tuple[First, Second]) Second { return pair.Second })
}

// Terminated returns the first value and discards the second.
func Terminated[First, Second any](first Parser[First], second Parser[Second]) Parser[First] {
	return Map(Pair(first, second), func(pair Tuple[First, Second]) First { return pair.First })
}

// Delimited returns the second value, delimited by the first and third.
func Delimited[First, Second, Third any](first Parser[First], second Parser[Second], third Parser[Third]) Parser[Second] {
	return func(input string) (Second, string, error) {
		_, rest, err := first(input)
		if err != nil {
			var zero Second
			return zero, input, err
		}
		value, rest, err := second(rest)
		if err != nil {
			var zero Second
			return zero, input, err
		}
		_, rest, err = third(rest)
		if err != nil {
			var zero Second
			return zero, input, err
		}
		return value, rest, nil
	}
}
