package monch

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNextChar(t *testing.T) {
	c, rest, err := NextChar("abc")
	assert.NoError(t, err)
	assert.Equal(t, 'a', c)
	assert.Equal(t, "bc", rest)
}

func TestNextCharMultiByte(t *testing.T) {
	c, rest, err := NextChar("éclair")
	assert.NoError(t, err)
	assert.Equal(t, 'é', c)
	assert.Equal(t, "clair", rest)
}

func TestNextCharEmpty(t *testing.T) {
	_, rest, err := NextChar("")
	assert.Equal(t, ErrBacktrack, err)
	assert.Equal(t, "", rest)
}

func TestCh(t *testing.T) {
	c, rest, err := Ch('a')("abc")
	assert.NoError(t, err)
	assert.Equal(t, 'a', c)
	assert.Equal(t, "bc", rest)

	_, rest, err = Ch('a')("bcd")
	assert.Equal(t, ErrBacktrack, err)
	assert.Equal(t, "bcd", rest)
}

func TestOneOf(t *testing.T) {
	c, rest, err := OneOf("+-")("-1")
	assert.NoError(t, err)
	assert.Equal(t, '-', c)
	assert.Equal(t, "1", rest)

	_, _, err = OneOf("+-")("1")
	assert.Equal(t, ErrBacktrack, err)

	_, _, err = OneOf("+-")("")
	assert.Equal(t, ErrBacktrack, err)
}

func TestTag(t *testing.T) {
	value, rest, err := Tag("ab")("abcdef")
	assert.NoError(t, err)
	assert.Equal(t, "ab", value)
	assert.Equal(t, "cdef", rest)
}

func TestTagNoMatch(t *testing.T) {
	_, rest, err := Tag("ab")("acdef")
	assert.Equal(t, ErrBacktrack, err)
	assert.Equal(t, "acdef", rest)

	_, _, err = Tag("ab")("a")
	assert.Equal(t, ErrBacktrack, err)
}

func TestTakeWhile(t *testing.T) {
	digits := TakeWhile(func(c rune) bool { return unicode.IsDigit(c) })

	value, rest, err := digits("123abc")
	assert.NoError(t, err)
	assert.Equal(t, "123", value)
	assert.Equal(t, "abc", rest)
}

func TestTakeWhileZeroMatch(t *testing.T) {
	digits := TakeWhile(unicode.IsDigit)

	value, rest, err := digits("abc")
	assert.NoError(t, err)
	assert.Equal(t, "", value)
	assert.Equal(t, "abc", rest)
}

func TestSkipWhile(t *testing.T) {
	_, rest, err := SkipWhile(unicode.IsDigit)("123abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", rest)

	_, rest, err = SkipWhile(unicode.IsDigit)("123")
	assert.NoError(t, err)
	assert.Equal(t, "", rest)
}

func TestSubstring(t *testing.T) {
	value, rest, err := Substring(Pair(Tag("ab"), Tag("cd")))("abcdef")
	assert.NoError(t, err)
	assert.Equal(t, "abcd", value)
	assert.Equal(t, "ef", rest)
}

func TestSubstringFidelity(t *testing.T) {
	// the returned value is always the consumed prefix of the input
	input := "key=value rest"
	combinator := Substring(Pair(TakeWhile(unicode.IsLetter), Tag("=")))
	value, rest, err := combinator(input)
	assert.NoError(t, err)
	assert.Equal(t, input[:len(input)-len(rest)], value)
}

func TestWhitespace(t *testing.T) {
	value, rest, err := Whitespace(" \t\nabc")
	assert.NoError(t, err)
	assert.Equal(t, " \t\n", value)
	assert.Equal(t, "abc", rest)
}

func TestWhitespaceBacktracks(t *testing.T) {
	_, _, err := Whitespace("abc")
	assert.Equal(t, ErrBacktrack, err)

	_, _, err = Whitespace("")
	assert.Equal(t, ErrBacktrack, err)
}

func TestWhitespaceToEnd(t *testing.T) {
	value, rest, err := Whitespace("   ")
	assert.NoError(t, err)
	assert.Equal(t, "   ", value)
	assert.Equal(t, "", rest)
}

func TestSkipWhitespace(t *testing.T) {
	_, rest, err := SkipWhitespace("  abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", rest)

	_, rest, err = SkipWhitespace("abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", rest)
}

func TestProgressInvariant(t *testing.T) {
	// a successful combinator always returns a suffix of its input
	input := "  123 abc,def"
	combinators := []Parser[string]{
		Tag("  "),
		TakeWhile(unicode.IsSpace),
		Substring(SkipWhitespace),
		Map(NextChar, func(c rune) string { return string(c) }),
		Whitespace,
	}
	for _, combinator := range combinators {
		_, rest, err := combinator(input)
		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(input, rest))
		assert.True(t, len(rest) <= len(input))
	}
}
