package globre

// Match reports whether name matches the pattern. The name is compared as
// given: no cleaning, separator rewriting, or case folding happens outside
// what the compile options asked for, and matching never fails.
func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

// Match is a convenience that compiles pattern and matches name against it
// in one call. Use [Compile] and [Pattern.Match] separately to match many
// names against one pattern.
func Match(pattern, name string, opts ...Option) (bool, error) {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return false, err
	}
	return p.Match(name), nil
}
