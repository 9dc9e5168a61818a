// Package globre compiles shell-style glob patterns into regular expressions
// and wraps the result in a reusable matcher.
//
// A pattern is compiled once, producing an immutable [Pattern] that any
// number of goroutines can match against concurrently. Matching is a pure
// string test: nothing here touches the filesystem, and candidate names are
// matched exactly as given, without cleaning or normalisation.
//
// The pattern syntax is:
//
//	pattern:
//	    { term }
//	term:
//	    '*'        any run of characters within one path segment
//	    '**'       any number of whole path segments, when it forms a
//	               segment by itself; elsewhere it means two stars
//	    '?'        any single character
//	    '[' [ '!' | '^' ] { character | character '-' character } ']'
//	               character class, possibly negated, with ranges;
//	               must open and close within one path segment
//	    '{' pattern { ',' pattern } '}'
//	               alternation, matching any comma-separated branch
//	    '\' character
//	               the escaped character, literally
//	    '/'        path separator
//	    character  itself
//
// How far * and ? reach, and whether a leading dot in a path segment must be
// matched literally, are governed by [Option] values passed at compile time.
//
// Compilation failures are [*Error] values carrying the byte span of the
// offending construct.
package globre

import "strings"

// quotable is the pattern punctuation escaped by QuoteMeta.
const quotable = `\*?[]{},!`

// QuoteMeta returns a string that escapes all glob metacharacters in text;
// the result is a pattern matching exactly the literal text. Separators are
// deliberately not escaped, so quoted fragments can be joined into larger
// patterns with /.
func QuoteMeta(text string) string {
	b := make([]byte, 0, 2*len(text))
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(quotable, text[i]) >= 0 {
			b = append(b, '\\')
		}
		b = append(b, text[i])
	}
	return string(b)
}
