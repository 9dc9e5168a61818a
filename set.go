package globre

import "fmt"

// Set matches names against several patterns at once, such as an
// ignore-list or an include-list read from configuration. A Set is
// immutable after construction and safe for concurrent use.
type Set struct {
	patterns []*Pattern
}

// CompileSet compiles each pattern with the same options and collects the
// results. The first pattern that fails aborts the set; the returned error
// names the offending pattern and wraps the underlying [*Error].
func CompileSet(patterns []string, opts ...Option) (*Set, error) {
	ps := make([]*Pattern, 0, len(patterns))
	for _, src := range patterns {
		p, err := Compile(src, opts...)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", src, err)
		}
		ps = append(ps, p)
	}
	return &Set{patterns: ps}, nil
}

// Match reports whether any pattern in the set matches name.
func (s *Set) Match(name string) bool {
	for _, p := range s.patterns {
		if p.Match(name) {
			return true
		}
	}
	return false
}

// Which returns the indices of the patterns that match name, in the order
// the patterns were given, or nil when none do.
func (s *Set) Which(name string) []int {
	var out []int
	for i, p := range s.patterns {
		if p.Match(name) {
			out = append(out, i)
		}
	}
	return out
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int { return len(s.patterns) }

// Pattern returns the i'th compiled pattern of the set.
func (s *Set) Pattern(i int) *Pattern { return s.patterns[i] }
