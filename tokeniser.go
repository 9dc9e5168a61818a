package globre

import (
	"fmt"
	"unicode/utf8"
)

// span delimits a half-open byte range [Start, End) within the source
// pattern.
type span struct {
	Start, End int
}

type tokenKind int

const (
	tokenLiteral    tokenKind = iota + 1 // run of literal characters
	tokenEscaped                         // one escaped character
	tokenSeparator                       // /
	tokenStar                            // *
	tokenDoubleStar                      // **
	tokenQuestion                        // ?
	tokenClassOpen                       // [
	tokenClassClose                      // ]
	tokenClassNegate                     // ! or ^ directly after [
	tokenClassRange                      // lo-hi between class brackets
	tokenBraceOpen                       // {
	tokenBraceComma                      // ,
	tokenBraceClose                      // }
)

// token is one positioned lexeme. Text holds the source text, except for
// escapes where it holds the escaped character alone. Lo and Hi are set only
// for class ranges.
type token struct {
	Kind   tokenKind
	Text   string
	Lo, Hi rune
	Span   span
}

func (t token) String() string {
	switch t.Kind {
	case tokenLiteral:
		return fmt.Sprintf("lit(%q)", t.Text)
	case tokenEscaped:
		return fmt.Sprintf("esc(%q)", t.Text)
	case tokenSeparator:
		return "sep"
	case tokenStar:
		return "star"
	case tokenDoubleStar:
		return "doublestar"
	case tokenQuestion:
		return "question"
	case tokenClassOpen:
		return "class-open"
	case tokenClassClose:
		return "class-close"
	case tokenClassNegate:
		return "class-negate"
	case tokenClassRange:
		return fmt.Sprintf("range(%q-%q)", t.Lo, t.Hi)
	case tokenBraceOpen:
		return "brace-open"
	case tokenBraceComma:
		return "brace-comma"
	case tokenBraceClose:
		return "brace-close"
	}
	return fmt.Sprintf("token(%d)", int(t.Kind))
}

// tokenise splits pattern into tokens. Runs of ordinary characters coalesce
// into single literal tokens. Class and brace punctuation is recognised here
// so the parser never re-reads the source, but balance is the parser's
// business; the only lexical error is an escape with nothing after it.
func tokenise(pattern string, cfg *config) ([]token, *Error) {
	var tks []token

	litStart := -1
	flush := func(end int) {
		if litStart < 0 {
			return
		}
		tks = append(tks, token{
			Kind: tokenLiteral,
			Text: pattern[litStart:end],
			Span: span{litStart, end},
		})
		litStart = -1
	}

	insideClass := false
	canNegate := false // ! or ^ here negates the class
	firstAtom := false // ] here is a literal member

	i := 0
	for i < len(pattern) {
		r, size := utf8.DecodeRuneInString(pattern[i:])

		if r == '\\' && cfg.allowEscaping {
			flush(i)
			if i+size >= len(pattern) {
				return nil, &Error{Kind: UnterminatedEscape, Start: i, End: len(pattern)}
			}
			_, esize := utf8.DecodeRuneInString(pattern[i+size:])
			tks = append(tks, token{
				Kind: tokenEscaped,
				Text: pattern[i+size : i+size+esize],
				Span: span{i, i + size + esize},
			})
			if insideClass {
				canNegate, firstAtom = false, false
			}
			i += size + esize
			continue
		}

		if insideClass {
			switch {
			case r == ']' && !firstAtom:
				flush(i)
				tks = append(tks, token{Kind: tokenClassClose, Text: "]", Span: span{i, i + 1}})
				insideClass = false
			case (r == '!' || r == '^') && canNegate:
				tks = append(tks, token{Kind: tokenClassNegate, Text: pattern[i : i+1], Span: span{i, i + 1}})
				canNegate = false
			case r == '/':
				// A class cannot span segments. Emit the separator and let
				// the parser report the class as unclosed.
				flush(i)
				tks = append(tks, token{Kind: tokenSeparator, Text: "/", Span: span{i, i + 1}})
				insideClass = false
			default:
				if lo, hi, end, ok := classRange(pattern, i, cfg.allowEscaping); ok {
					flush(i)
					tks = append(tks, token{Kind: tokenClassRange, Text: pattern[i:end], Lo: lo, Hi: hi, Span: span{i, end}})
					canNegate, firstAtom = false, false
					i = end
					continue
				}
				if litStart < 0 {
					litStart = i
				}
				canNegate, firstAtom = false, false
			}
			i += size
			continue
		}

		switch {
		case r == '/':
			flush(i)
			tks = append(tks, token{Kind: tokenSeparator, Text: "/", Span: span{i, i + 1}})
		case r == '*' && cfg.allowStar:
			flush(i)
			if cfg.allowDoubleStar && i+1 < len(pattern) && pattern[i+1] == '*' {
				tks = append(tks, token{Kind: tokenDoubleStar, Text: "**", Span: span{i, i + 2}})
				i += 2
				continue
			}
			tks = append(tks, token{Kind: tokenStar, Text: "*", Span: span{i, i + 1}})
		case r == '?' && cfg.allowQuestion:
			flush(i)
			tks = append(tks, token{Kind: tokenQuestion, Text: "?", Span: span{i, i + 1}})
		case r == '[' && cfg.allowCharClass:
			flush(i)
			tks = append(tks, token{Kind: tokenClassOpen, Text: "[", Span: span{i, i + 1}})
			insideClass = true
			canNegate, firstAtom = true, true
		case r == '{' && cfg.allowAlternation:
			flush(i)
			tks = append(tks, token{Kind: tokenBraceOpen, Text: "{", Span: span{i, i + 1}})
		case r == ',' && cfg.allowAlternation:
			flush(i)
			tks = append(tks, token{Kind: tokenBraceComma, Text: ",", Span: span{i, i + 1}})
		case r == '}' && cfg.allowAlternation:
			flush(i)
			tks = append(tks, token{Kind: tokenBraceClose, Text: "}", Span: span{i, i + 1}})
		default:
			if litStart < 0 {
				litStart = i
			}
		}
		i += size
	}
	flush(len(pattern))
	return tks, nil
}

// classRange reports whether a class range begins at offset i: a member, a
// dash, and a further member that is not ] or /. The high member may be
// escaped; ranges never start with an escape, so [\a-b] is three members.
// end is the offset just past the range.
func classRange(pattern string, i int, allowEscaping bool) (lo, hi rune, end int, ok bool) {
	lo, n := utf8.DecodeRuneInString(pattern[i:])
	j := i + n
	if j >= len(pattern) || pattern[j] != '-' {
		return 0, 0, 0, false
	}
	j++
	if j >= len(pattern) {
		return 0, 0, 0, false
	}
	hi, n = utf8.DecodeRuneInString(pattern[j:])
	if hi == ']' || hi == '/' {
		return 0, 0, 0, false
	}
	if hi == '\\' && allowEscaping {
		if j+n >= len(pattern) {
			return 0, 0, 0, false
		}
		j += n
		hi, n = utf8.DecodeRuneInString(pattern[j:])
	}
	return lo, hi, j + n, true
}
