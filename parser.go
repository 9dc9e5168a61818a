package globre

// parser is a consuming reader over the token stream.
type parser struct {
	tks []token
	pos int
}

func (p *parser) next() (token, bool) {
	if p.pos >= len(p.tks) {
		return token{}, false
	}
	t := p.tks[p.pos]
	p.pos++
	return t, true
}

// parse assembles tokens into path segments of nodes, enforcing the grammar
// along the way. It fails on the first error; the returned *Error carries
// the span of the construct at fault.
func parse(tks []token) (*patternAST, *Error) {
	p := &parser{tks: tks}
	var segs [][]node
	var cur []node

	flush := func() {
		seg := finishSegment(cur)
		cur = nil
		// Consecutive ** segments collapse to one; a single ** already
		// matches any number of segments.
		if isDoubleStarSegment(seg) && len(segs) > 0 && isDoubleStarSegment(segs[len(segs)-1]) {
			return
		}
		segs = append(segs, seg)
	}

	for {
		t, ok := p.next()
		if !ok {
			break
		}
		if t.Kind == tokenSeparator {
			flush()
			continue
		}
		var err *Error
		cur, err = p.appendNode(cur, t, false)
		if err != nil {
			return nil, err
		}
	}
	flush()
	return &patternAST{segments: segs}, nil
}

// appendNode parses the construct beginning at t and appends it to seq.
func (p *parser) appendNode(seq []node, t token, insideAlt bool) ([]node, *Error) {
	switch t.Kind {
	case tokenLiteral, tokenEscaped:
		return mergeLiteral(seq, t.Text, t.Span), nil

	case tokenStar:
		return append(seq, node{Kind: nodeStar, Span: t.Span}), nil

	case tokenDoubleStar:
		if insideAlt {
			// A branch is never a whole segment, so ** here loses its
			// recursive meaning, same as when glued to other syntax.
			return append(seq, demoteDoubleStar(t.Span)...), nil
		}
		return append(seq, node{Kind: nodeDoubleStar, Span: t.Span}), nil

	case tokenQuestion:
		return append(seq, node{Kind: nodeAnyChar, Span: t.Span}), nil

	case tokenClassOpen:
		n, err := p.parseClass(t)
		if err != nil {
			return nil, err
		}
		return append(seq, n), nil

	case tokenBraceOpen:
		n, err := p.parseAlternation(t)
		if err != nil {
			return nil, err
		}
		return append(seq, n), nil

	default:
		// Stray , or } outside an alternation is an ordinary character.
		return mergeLiteral(seq, t.Text, t.Span), nil
	}
}

// mergeLiteral extends the trailing literal node, or starts one.
func mergeLiteral(seq []node, text string, sp span) []node {
	if n := len(seq); n > 0 && seq[n-1].Kind == nodeLiteral {
		seq[n-1].Lit += text
		seq[n-1].Span.End = sp.End
		return seq
	}
	return append(seq, node{Kind: nodeLiteral, Lit: text, Span: sp})
}

// demoteDoubleStar rewrites a ** that cannot be a whole segment as two
// ordinary stars covering the same source bytes.
func demoteDoubleStar(sp span) []node {
	return []node{
		{Kind: nodeStar, Span: span{sp.Start, sp.Start + 1}},
		{Kind: nodeStar, Span: span{sp.Start + 1, sp.End}},
	}
}

// finishSegment applies the whole-segment rule for **: anything glued to a
// ** within the segment demotes it to two ordinary stars.
func finishSegment(seg []node) []node {
	if len(seg) <= 1 {
		return seg
	}
	out := make([]node, 0, len(seg))
	for _, n := range seg {
		if n.Kind == nodeDoubleStar {
			out = append(out, demoteDoubleStar(n.Span)...)
			continue
		}
		out = append(out, n)
	}
	return out
}

// parseClass consumes tokens after a [ through the closing bracket. A class
// must close within its segment, so a separator or the end of the pattern
// reports it unclosed, pointing at the [.
func (p *parser) parseClass(open token) (node, *Error) {
	n := node{Kind: nodeClass, Span: open.Span}
	for {
		t, ok := p.next()
		if !ok {
			return node{}, &Error{Kind: UnclosedClass, Start: open.Span.Start, End: open.Span.End}
		}
		switch t.Kind {
		case tokenClassClose:
			n.Span.End = t.Span.End
			return n, nil

		case tokenClassNegate:
			n.Negated = true

		case tokenClassRange:
			if t.Lo > t.Hi {
				return node{}, &Error{Kind: InvalidRange, Start: t.Span.Start, End: t.Span.End}
			}
			n.Set = append(n.Set, charRange{Lo: t.Lo, Hi: t.Hi})

		case tokenSeparator:
			return node{}, &Error{Kind: UnclosedClass, Start: open.Span.Start, End: open.Span.End}

		default:
			for _, r := range t.Text {
				n.Set = append(n.Set, charRange{Lo: r, Hi: r})
			}
		}
	}
}

// parseAlternation consumes tokens after a { through the matching close
// brace. Branches may be empty; they may also contain separators, classes,
// and nested alternations.
func (p *parser) parseAlternation(open token) (node, *Error) {
	n := node{Kind: nodeAlternation, Span: open.Span}
	for {
		branch, end, err := p.parseBranch()
		if err != nil {
			return node{}, err
		}
		n.Branches = append(n.Branches, branch)
		switch end.Kind {
		case tokenBraceComma:
			continue
		case tokenBraceClose:
			n.Span.End = end.Span.End
			return n, nil
		default: // ran out of tokens
			return node{}, &Error{Kind: UnclosedAlternation, Start: open.Span.Start, End: open.Span.End}
		}
	}
}

// parseBranch parses one alternation branch, stopping at a comma, a closing
// brace, or the end of the pattern. The zero token reports the latter.
func (p *parser) parseBranch() ([]node, token, *Error) {
	var branch []node
	for {
		t, ok := p.next()
		if !ok {
			return branch, token{}, nil
		}
		switch t.Kind {
		case tokenBraceComma, tokenBraceClose:
			return branch, t, nil

		case tokenSeparator:
			branch = append(branch, node{Kind: nodeSeparator, Span: t.Span})

		default:
			var err *Error
			branch, err = p.appendNode(branch, t, true)
			if err != nil {
				return nil, token{}, err
			}
		}
	}
}
