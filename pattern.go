package globre

import (
	"encoding"
	"fmt"

	"github.com/grafana/regexp"
	"gopkg.in/yaml.v3"
)

// Pattern is a compiled glob pattern. It is immutable and safe for
// concurrent use by multiple goroutines.
type Pattern struct {
	glob  string
	regex string
	re    *regexp.Regexp
}

// Compile translates pattern into a regexp and prepares it for matching.
// Errors are always of type [*Error] and report the byte span of the
// offending construct; see [ErrorKind] for the possible failures.
func Compile(pattern string, opts ...Option) (*Pattern, error) {
	cfg := defaultConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	p, cerr := compileWith(pattern, &cfg)
	if cerr != nil {
		return nil, cerr
	}
	return p, nil
}

// MustCompile calls Compile, and panics if the pattern does not compile.
// It simplifies the safe initialisation of global variables from constant
// patterns.
func MustCompile(pattern string, opts ...Option) *Pattern {
	p, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// compileWith runs the tokenise, parse, translate, and engine-compile stages
// under one resolved configuration.
func compileWith(pattern string, cfg *config) (*Pattern, *Error) {
	tks, lerr := tokenise(pattern, cfg)
	if lerr != nil {
		return nil, lerr
	}
	if cfg.trace != nil {
		fmt.Fprintf(cfg.trace, "tokenised %q into %d tokens: %v\n", pattern, len(tks), tks)
	}

	ast, perr := parse(tks)
	if perr != nil {
		return nil, perr
	}
	if cfg.trace != nil {
		fmt.Fprintf(cfg.trace, "parsed %d segments\n", len(ast.segments))
	}

	src := compileAST(ast, cfg)
	if cfg.trace != nil {
		fmt.Fprintf(cfg.trace, "emitted regexp %s\n", src)
	}

	re, err := regexp.Compile(src)
	if err != nil {
		// The translator emits valid syntax for every parsed pattern, so
		// reaching this is a bug here, not in the caller's pattern.
		return nil, &Error{Kind: EngineRejected, Start: 0, End: len(pattern), Detail: err.Error()}
	}

	return &Pattern{glob: pattern, regex: src, re: re}, nil
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string { return p.glob }

// Regexp returns the regexp source the pattern translated to.
func (p *Pattern) Regexp() string { return p.regex }

var (
	_ encoding.TextMarshaler   = (*Pattern)(nil)
	_ encoding.TextUnmarshaler = (*Pattern)(nil)
	_ yaml.Marshaler           = (*Pattern)(nil)
	_ yaml.Unmarshaler         = (*Pattern)(nil)
)

// MarshalText marshals the pattern as its source text, so compiled patterns
// can sit directly in JSON configuration structs.
func (p *Pattern) MarshalText() ([]byte, error) {
	return []byte(p.glob), nil
}

// UnmarshalText compiles the pattern in text with default options.
func (p *Pattern) UnmarshalText(text []byte) error {
	q, err := Compile(string(text))
	if err != nil {
		return err
	}
	*p = *q
	return nil
}

// MarshalYAML marshals the pattern as its source text.
func (p *Pattern) MarshalYAML() (any, error) {
	return p.glob, nil
}

// UnmarshalYAML compiles the pattern in value with default options.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	q, err := Compile(s)
	if err != nil {
		return err
	}
	*p = *q
	return nil
}
