package monch

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NextChar consumes and returns the next character. Backtracks on empty
// input.
func NextChar(input string) (rune, string, error) {
	c, size := utf8.DecodeRuneInString(input)
	if size == 0 {
		return 0, input, ErrBacktrack
	}
	return c, input[size:], nil
}

// Ch recognises the character c.
func Ch(c rune) Parser[rune] {
	return IfTrue(NextChar, func(found rune) bool { return found == c })
}

// OneOf recognises any character in set.
func OneOf(set string) Parser[rune] {
	return func(input string) (rune, string, error) {
		c, rest, err := NextChar(input)
		if err != nil {
			return 0, input, err
		}
		if !strings.ContainsRune(set, c) {
			return 0, input, ErrBacktrack
		}
		return c, rest, nil
	}
}

// Tag recognises the literal string value, consuming exactly len(value)
// bytes. Backtracks if the input does not start with value; never fails
// hard.
func Tag(value string) Parser[string] {
	return func(input string) (string, string, error) {
		if !strings.HasPrefix(input, value) {
			return "", input, ErrBacktrack
		}
		return input[:len(value)], input[len(value):], nil
	}
}

// Substring runs a combinator for its effect on the input and returns the
// exact slice of the original input it consumed, discarding its value.
func Substring[O any](combinator Parser[O]) Parser[string] {
	return func(input string) (string, string, error) {
		_, rest, err := combinator(input)
		if err != nil {
			return "", input, err
		}
		consumed := len(input) - len(rest)
		return input[:consumed], rest, nil
	}
}

// SkipWhile consumes input while the condition holds. It always succeeds,
// possibly consuming nothing.
func SkipWhile(cond func(rune) bool) Parser[struct{}] {
	return func(input string) (struct{}, string, error) {
		for pos, c := range input {
			if !cond(c) {
				return struct{}{}, input[pos:], nil
			}
		}
		return struct{}{}, "", nil
	}
}

// TakeWhile consumes input while the condition holds and returns the
// consumed substring. It always succeeds, possibly with an empty match.
func TakeWhile(cond func(rune) bool) Parser[string] {
	return Substring(SkipWhile(cond))
}

// Whitespace consumes one or more whitespace characters. Backtracks if the
// input is empty or does not start with whitespace.
func Whitespace(input string) (string, string, error) {
	if input == "" {
		return "", input, ErrBacktrack
	}
	for pos, c := range input {
		if !unicode.IsSpace(c) {
			if pos == 0 {
				return "", input, ErrBacktrack
			}
			return input[:pos], input[pos:], nil
		}
	}
	return input, "", nil
}

// SkipWhitespace consumes any leading whitespace. Unlike Whitespace it
// never backtracks; a zero-length match is a success.
func SkipWhitespace(input string) (struct{}, string, error) {
	_, rest, err := Whitespace(input)
	if errors.Is(err, ErrBacktrack) {
		return struct{}{}, input, nil
	}
	if err != nil {
		return struct{}{}, input, err
	}
	return struct{}{}, rest, nil
}
