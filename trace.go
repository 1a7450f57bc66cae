package monch

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
)

// LogResult wraps a combinator, writing each input it sees and the outcome
// it produces to "w". For quick debugging of a grammar; the prefix tells
// invocations apart when several combinators are wrapped.
func LogResult[O any](w io.Writer, prefix string, combinator Parser[O]) Parser[O] {
	return func(input string) (O, string, error) {
		value, rest, err := combinator(input)
		fmt.Fprintf(w, "%s (input):  %q\n", prefix, input)
		if err != nil {
			fmt.Fprintf(w, "%s (error):  %v\n", prefix, err)
		} else {
			fmt.Fprintf(w, "%s (result): %s %q\n", prefix, repr.String(value, repr.Indent("  ")), rest)
		}
		return value, rest, err
	}
}
