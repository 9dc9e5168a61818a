package globre

import (
	"strings"

	"github.com/grafana/regexp"
)

// matchNothing is a class no character belongs to. It is emitted when option
// handling empties a class, for example [.] at the start of a segment under
// RequireLiteralLeadingDot.
const matchNothing = `[^\x00-\x{10FFFF}]`

// compiler renders a parsed pattern as regexp source. Rendering cannot fail:
// every node has a regexp form under every option set.
type compiler struct {
	cfg *config
}

// compileAST renders the whole pattern, anchored at both ends. The (?s) flag
// keeps the dot forms working on names that contain newlines.
func compileAST(ast *patternAST, cfg *config) string {
	c := compiler{cfg: cfg}
	var b strings.Builder
	b.WriteString("(?s")
	if !cfg.caseSensitive {
		b.WriteByte('i')
	}
	b.WriteString(")^")

	// A whole-segment ** owns one adjacent separator, so that matching zero
	// segments collapses the join: a/**/b must match a/b.
	segs := ast.segments
	skipSep := false
	for i, seg := range segs {
		if isDoubleStarSegment(seg) {
			first, last := i == 0, i == len(segs)-1
			switch {
			case first && last:
				b.WriteString(c.spanAll())
			case first:
				b.WriteString(c.spanPrefix()) // folds the separator after it
				skipSep = true
			case last:
				b.WriteString(c.spanSuffix()) // folds the separator before it
			default:
				b.WriteString(c.spanMiddle()) // folds the separator before it
			}
			continue
		}
		if i > 0 && !skipSep {
			b.WriteByte('/')
		}
		skipSep = false
		c.seq(&b, seg, true)
	}

	b.WriteByte('$')
	return b.String()
}

// seq renders one node sequence. atStart tracks whether the next node sits
// at the start of a path segment, where the leading-dot rule applies.
func (c compiler) seq(b *strings.Builder, nodes []node, atStart bool) {
	for _, n := range nodes {
		switch n.Kind {
		case nodeLiteral:
			b.WriteString(regexp.QuoteMeta(n.Lit))
			atStart = false

		case nodeSeparator:
			b.WriteByte('/')
			atStart = true

		case nodeAnyChar:
			b.WriteString(c.anyChar(atStart))
			atStart = false

		case nodeStar, nodeDoubleStar:
			// A double star reaching here was not a whole segment; it has
			// the reach of a single star.
			b.WriteString(c.anyRun(atStart))
			atStart = false

		case nodeClass:
			c.class(b, n, atStart)
			atStart = false

		case nodeAlternation:
			b.WriteString("(?:")
			for bi, br := range n.Branches {
				if bi > 0 {
					b.WriteByte('|')
				}
				c.seq(b, br, atStart)
			}
			b.WriteByte(')')
			atStart = false
		}
	}
}

// anyChar renders ? for a given position.
func (c compiler) anyChar(atStart bool) string {
	guard := c.cfg.requireLiteralLeadingDot && atStart
	switch {
	case c.cfg.requireLiteralSeparator && guard:
		return `[^/.]`
	case c.cfg.requireLiteralSeparator:
		return `[^/]`
	case guard:
		return `[^.]`
	default:
		return `.`
	}
}

// anyRun renders * for a given position. Under the leading-dot rule the run
// is either empty or starts with a permitted character.
func (c compiler) anyRun(atStart bool) string {
	guard := c.cfg.requireLiteralLeadingDot && atStart
	switch {
	case c.cfg.requireLiteralSeparator && guard:
		return `(?:[^/.][^/]*)?`
	case c.cfg.requireLiteralSeparator:
		return `[^/]*`
	case guard:
		return `(?:[^.].*)?`
	default:
		return `.*`
	}
}

// Renderings of a whole-segment **. These ignore RequireLiteralSeparator:
// crossing separators is the meaning of **, and without that option ** is
// star-equivalent anyway. Under the leading-dot rule every crossed segment
// must start with a permitted character.

func (c compiler) spanAll() string {
	if c.cfg.requireLiteralLeadingDot {
		return `(?:[^/.][^/]*(?:/[^/.][^/]*)*)?`
	}
	return `.*`
}

func (c compiler) spanPrefix() string {
	if c.cfg.requireLiteralLeadingDot {
		return `(?:[^/.][^/]*/)*`
	}
	return `(?:.*/)?`
}

func (c compiler) spanSuffix() string {
	if c.cfg.requireLiteralLeadingDot {
		return `(?:/[^/.][^/]*)*`
	}
	return `(?:/.*)?`
}

func (c compiler) spanMiddle() string {
	if c.cfg.requireLiteralLeadingDot {
		return `(?:/[^/.][^/]*)*`
	}
	return `(?:/[^/]*(?:/[^/]*)*)?`
}

// class renders a character class. The separator and leading-dot rules are
// applied by set arithmetic: forbidden characters are subtracted from plain
// classes and added to negated ones, since the engine has no lookaround.
func (c compiler) class(b *strings.Builder, n node, atStart bool) {
	guard := c.cfg.requireLiteralLeadingDot && atStart

	if n.Negated {
		b.WriteString("[^")
		if c.cfg.requireLiteralSeparator {
			writeClassRange(b, charRange{'/', '/'})
		}
		if guard {
			writeClassRange(b, charRange{'.', '.'})
		}
		for _, cr := range n.Set {
			writeClassRange(b, cr)
		}
		b.WriteByte(']')
		return
	}

	set := n.Set
	if c.cfg.requireLiteralSeparator {
		set = subtractRune(set, '/')
	}
	if guard {
		set = subtractRune(set, '.')
	}
	if len(set) == 0 {
		b.WriteString(matchNothing)
		return
	}
	b.WriteByte('[')
	for _, cr := range set {
		writeClassRange(b, cr)
	}
	b.WriteByte(']')
}

// subtractRune removes r from every range in set, splitting ranges that
// straddle it.
func subtractRune(set []charRange, r rune) []charRange {
	out := make([]charRange, 0, len(set)+1)
	for _, cr := range set {
		if r < cr.Lo || r > cr.Hi {
			out = append(out, cr)
			continue
		}
		if cr.Lo < r {
			out = append(out, charRange{cr.Lo, r - 1})
		}
		if r < cr.Hi {
			out = append(out, charRange{r + 1, cr.Hi})
		}
	}
	return out
}

func writeClassRange(b *strings.Builder, cr charRange) {
	writeClassRune(b, cr.Lo)
	if cr.Hi != cr.Lo {
		b.WriteByte('-')
		writeClassRune(b, cr.Hi)
	}
}

// writeClassRune writes one rune so the engine reads it literally inside a
// bracket expression.
func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', ']', '^', '-', '[':
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
