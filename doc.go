// Package monch is a small backtracking parser-combinator toolkit for
// hand-writing recursive-descent parsers over strings, without a separate
// lexing stage.
//
// A combinator is a plain function from the remaining input to a value, the
// input left over after the match, and an error. Combinators are composed
// with ordinary higher-order functions:
//
//	ident := TakeWhile(unicode.IsLetter)
//	list := SeparatedList(ident, Tag(","))
//	parse := WithFailureHandling(list)
//
//	names, err := parse("a,b,c")
//
// Errors come in two kinds. A backtrack (ErrBacktrack) is a silent,
// recoverable "this alternative did not match" signal that drives Or and
// terminates repetition. A *Failure is fatal: it records where and why the
// parse went definitively wrong, and propagates through all enclosing
// alternation untouched. Assert and AssertExists are the only way to turn
// a backtrack into a Failure, used when a grammar has committed to a branch
// and a missing construct should produce an error message rather than fall
// through to an outer alternative:
//
//	keyValue := Pair(
//	    ident,
//	    Preceded(Tag("="), AssertExists(ident, "Expected a value.")),
//	)
//
// WithFailureHandling converts a combinator into a caller-facing function
// that requires all input to be consumed and renders any failure as a
// message, a snippet of the offending input, and a marker line.
//
// Combinators must be deterministic and free of side effects: lookahead
// may probe the same input that another branch later consumes. The only
// state is the input string threaded through the calls.
package monch
