package globre

import (
	"strings"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern, name string
		want          bool
	}{
		{"a/b", "a/b", true},
		{"a/b", "a/b/", false},
		{"a*b", "acccccb", true},
		{"a*b", "ab", true},
		{"a*b", "abc", false},
		{"a*b", "a/b", false},
		{"a/{b,c}/d", "a/c/d", true},
		{"a/{b,c}/d", "a/w/d", false},
		{"a/[bc]/d", "a/b/d", true},
		{"a/[bc]/d", "a/x/d", false},
		{"a/[bc]/d", "b/c/d", false},
		{"a/[!bc]/d", "a/b/d", false},
		{"a/[!bc]/d", "a/x/d", true},
		{"a/[^bc]/d", "a/c/d", false},
		{"a/[^bc]/d", "a/y/d", true},
		{"a?b", "acb", true},
		{"a?b", "accb", false},
		{"a?b", "a/b", false},

		// ** glued to anything in its segment means two ordinary stars.
		{"a**b", "acb", true},
		{"a**b", "acccb", true},
		{"a**b", "ab", true},
		{"a**b", "a/b", false},
		{"a**b", "a/c/b", false},

		// ** as a whole segment matches zero or more whole segments.
		{"a/**/b", "a/b", true},
		{"a/**/b", "a/c/b", true},
		{"a/**/b", "a/c/d/e/f/b", true},
		{"a/**/b", "a/b/c", false},
		{"a/**/b", "a/cb", false},
		{"a/**/**/b", "a/b", true},
		{"a/**/**/b", "a/x/y/b", true},
		{"**/b", "b", true},
		{"**/b", "x/b", true},
		{"**/b", "x/y/b", true},
		{"**/b", "xb", false},
		{"a/**", "a", true},
		{"a/**", "a/x", true},
		{"a/**", "a/x/y", true},
		{"a/**", "ab", false},

		{"*", "a", true},
		{"*", "abcde", true},
		{"*", "", true},
		{"*", "abc/", false},
		{"**", "a", true},
		{"**", "abc/", true},
		{"**", "", true},

		{"{a,b*}", "a", true},
		{"{a,b*}", "b", true},
		{"{a,b*}", "ac", false},
		{"{a,b*}", "bc", true},
		{"{a,b*}", "bcc/cc", false},

		// ** inside a branch also means two stars.
		{"{a,b**}", "bc", true},
		{"{a,b**}", "bcc/cc", false},

		{"{,a}{,a}{,a}{,a}{,a}b", "b", true},
		{"{,a}{,a}{,a}{,a}{,a}b", "aab", true},
		{"{,a}{,a}{,a}{,a}{,a}b", "aaaaab", true},
		{"{,a}{,a}{,a}{,a}{,a}b", "aaaaaab", false},
		{"{a/b,c}d", "a/bd", true},
		{"{b,[ab]c}/d", "ac/d", true},

		{"", "", true},
		{"", "a", false},
		{"/", "/", true},
		{"a//b", "a//b", true},
		{"a//b", "a/b", false},

		{"[a-f]0", "c0", true},
		{"[a-f]0", "g0", false},
		{"[!A-Fa-f0-9]", "z", true},
		{"[!A-Fa-f0-9]", "G", true},
		{"[!A-Fa-f0-9]", "b", false},
		{"[!A-Fa-f0-9]", "5", false},
		{"[]-]x", "]x", true},
		{"[]-]x", "-x", true},
		{"[]-]x", "ax", false},
		{"[][!]", "]", true},
		{"[][!]", "[", true},
		{"[][!]", "!", true},
		{"[][!]", "x", false},
		{"[[?*]", "[", true},
		{"[[?*]", "?", true},
		{"[[?*]", "*", true},
		{"[[?*]", "x", false},
		// Negated classes still refuse the separator.
		{"[!a]", "/", false},

		{"日*", "日本語", true},
		{"café/*", "café/au-lait", true},
	}

	for _, test := range tests {
		p, err := Compile(test.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", test.pattern, err)
		}

		if got, want := p.Match(test.name), test.want; got != want {
			t.Errorf("(%q).Match(%q) = %v, want %v", test.pattern, test.name, got, want)
		}
	}
}

func TestMatchOptions(t *testing.T) {
	tests := []struct {
		pattern string
		opts    []Option
		name    string
		want    bool
	}{
		{"readme.MD", nil, "README.md", false},
		{"readme.MD", []Option{CaseSensitive(false)}, "README.md", true},
		{"x[a-f]y", []Option{CaseSensitive(false)}, "xDy", true},

		{"a/*", nil, "a/b/c", false},
		{"a/*", []Option{RequireLiteralSeparator(false)}, "a/b/c", true},
		{"a?c", nil, "a/c", false},
		{"a?c", []Option{RequireLiteralSeparator(false)}, "a/c", true},

		{"*", nil, ".hidden", true},
		{"*", []Option{RequireLiteralLeadingDot(true)}, ".hidden", false},
		{"*", []Option{RequireLiteralLeadingDot(true)}, "shown", true},
		{"*", []Option{RequireLiteralLeadingDot(true)}, "", true},
		{".*", []Option{RequireLiteralLeadingDot(true)}, ".hidden", true},
		{"?x", []Option{RequireLiteralLeadingDot(true)}, ".x", false},
		{"*/b", []Option{RequireLiteralLeadingDot(true)}, ".a/b", false},
		{"a/*", []Option{RequireLiteralLeadingDot(true)}, "a/.b", false},
		{"a/.*", []Option{RequireLiteralLeadingDot(true)}, "a/.b", true},
		{"[.a]x", []Option{RequireLiteralLeadingDot(true)}, ".x", false},
		{"[.a]x", []Option{RequireLiteralLeadingDot(true)}, "ax", true},
		{"[!a]x", []Option{RequireLiteralLeadingDot(true)}, ".x", false},
		// The rule binds at segment starts only.
		{"x[.a]", []Option{RequireLiteralLeadingDot(true)}, "x.", true},
		{"a/**/b", []Option{RequireLiteralLeadingDot(true)}, "a/b", true},
		{"a/**/b", []Option{RequireLiteralLeadingDot(true)}, "a/x/b", true},
		{"a/**/b", []Option{RequireLiteralLeadingDot(true)}, "a/.x/b", false},
		{"a/**/b", nil, "a/.x/b", true},
		{"**", []Option{RequireLiteralLeadingDot(true)}, "a/b/c", true},
		{"**", []Option{RequireLiteralLeadingDot(true)}, "a/.b/c", false},
	}

	for _, test := range tests {
		p, err := Compile(test.pattern, test.opts...)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", test.pattern, err)
		}

		if got, want := p.Match(test.name), test.want; got != want {
			t.Errorf("(%q with %d options).Match(%q) = %v, want %v", test.pattern, len(test.opts), test.name, got, want)
		}
	}
}

func TestMatchFunc(t *testing.T) {
	got, err := Match("docs/**/*.md", "docs/guide/intro.md")
	if err != nil {
		t.Fatalf("Match(...) error = %v", err)
	}
	if !got {
		t.Errorf("Match(docs/**/*.md, docs/guide/intro.md) = false, want true")
	}

	if _, err := Match("docs/[", "anything"); err == nil {
		t.Errorf("Match(docs/[, anything) error = nil, want unclosed class")
	}
}

func TestMatchNeverNormalises(t *testing.T) {
	// Matching treats the name as given. Dot segments, doubled separators
	// and trailing separators are not cleaned away.
	tests := []struct {
		pattern, name string
		want          bool
	}{
		{"a/b", "a//b", false},
		{"a/b", "./a/b", false},
		{"a/b", "a/b/", false},
		{"a/*", "a/..", true},
		{"a/./b", "a/./b", true},
	}

	for _, test := range tests {
		p, err := Compile(test.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", test.pattern, err)
		}
		if got, want := p.Match(test.name), test.want; got != want {
			t.Errorf("(%q).Match(%q) = %v, want %v", test.pattern, test.name, got, want)
		}
	}
}

func TestMatchNewlines(t *testing.T) {
	// Nothing forbids newlines in names; wildcards treat them as ordinary
	// characters.
	p := MustCompile("a*b")
	if !p.Match("a\nb") {
		t.Errorf("(%q).Match(%q) = false, want true", "a*b", "a\nb")
	}
	q := MustCompile("**")
	if !q.Match("x\n/y") {
		t.Errorf("(%q).Match(%q) = false, want true", "**", "x\n/y")
	}
}

func TestMatchLongLiteral(t *testing.T) {
	name := strings.Repeat("very/", 50) + "deep.txt"
	p := MustCompile("very/**/deep.txt")
	if !p.Match(name) {
		t.Errorf("(%q).Match(50 segments) = false, want true", "very/**/deep.txt")
	}
}
