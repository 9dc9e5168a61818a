package globre

import "io"

// Option functions optionally alter how a pattern is compiled.
type Option = func(*config)

// config is a bag of compilation options.
type config struct {
	caseSensitive            bool
	requireLiteralSeparator  bool
	requireLiteralLeadingDot bool

	allowEscaping    bool
	allowQuestion    bool
	allowStar        bool
	allowDoubleStar  bool
	allowAlternation bool
	allowCharClass   bool

	trace io.Writer
}

var defaultConfig = config{
	caseSensitive:           true,
	requireLiteralSeparator: true,

	allowEscaping:    true,
	allowQuestion:    true,
	allowStar:        true,
	allowDoubleStar:  true,
	allowAlternation: true,
	allowCharClass:   true,
}

// CaseSensitive changes whether literal characters and character classes
// match case-sensitively. Defaults to true.
func CaseSensitive(enable bool) Option {
	return func(o *config) { o.caseSensitive = enable }
}

// RequireLiteralSeparator changes whether wildcards refuse to match the /
// separator. When enabled, * and ? stay within one path segment, and only **
// crosses segment boundaries. When disabled, * and ? match separators too,
// and ** is equivalent to *. Defaults to true.
func RequireLiteralSeparator(enable bool) Option {
	return func(o *config) { o.requireLiteralSeparator = enable }
}

// RequireLiteralLeadingDot changes whether a dot at the start of a path
// segment must be matched literally. When enabled, a segment beginning with
// a wildcard cannot match a name beginning with ".", so patterns such as *
// skip hidden files the way a shell does. Defaults to false.
func RequireLiteralLeadingDot(enable bool) Option {
	return func(o *config) { o.requireLiteralLeadingDot = enable }
}

// AllowEscaping changes how the escape character \ is processed. If
// disabled, \ is treated as a literal backslash, and a trailing backslash is
// no longer an error. Defaults to true.
func AllowEscaping(enable bool) Option {
	return func(o *config) { o.allowEscaping = enable }
}

// AllowQuestion changes how ? is processed. If disabled, ? is treated as a
// literal. Defaults to true.
func AllowQuestion(enable bool) Option {
	return func(o *config) { o.allowQuestion = enable }
}

// AllowStar changes how * is processed. If disabled, * is treated as a
// literal, which also disables **. Defaults to true.
func AllowStar(enable bool) Option {
	return func(o *config) { o.allowStar = enable }
}

// AllowDoubleStar changes how ** is processed. If disabled, ** is treated as
// two single stars, which together still match within one path segment.
// Defaults to true.
func AllowDoubleStar(enable bool) Option {
	return func(o *config) { o.allowDoubleStar = enable }
}

// AllowAlternation changes how brace alternations {a,b,...} are processed.
// If disabled, braces and commas are treated as literals. Defaults to true.
func AllowAlternation(enable bool) Option {
	return func(o *config) { o.allowAlternation = enable }
}

// AllowCharClass changes how character classes [...] are processed. If
// disabled, square brackets are treated as literals. Defaults to true.
func AllowCharClass(enable bool) Option {
	return func(o *config) { o.allowCharClass = enable }
}

// WithTrace sets a writer that receives a line-oriented log of each
// compilation stage: the token stream, the segment count, and the emitted
// regexp. Useful for debugging surprising patterns. Defaults to nil (no
// trace).
func WithTrace(w io.Writer) Option {
	return func(o *config) { o.trace = w }
}

// fingerprint returns a compact identity for the option set, for use in
// cache keys. The trace writer is excluded because it does not affect the
// compiled result.
func (c *config) fingerprint() string {
	flags := [...]bool{
		c.caseSensitive,
		c.requireLiteralSeparator,
		c.requireLiteralLeadingDot,
		c.allowEscaping,
		c.allowQuestion,
		c.allowStar,
		c.allowDoubleStar,
		c.allowAlternation,
		c.allowCharClass,
	}
	b := make([]byte, len(flags))
	for i, f := range flags {
		if f {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
