// The globre command compiles glob patterns and tests names against them.
//
// Example:
//
//	$ globre regexp 'src/**/*.go'
//	(?s)^src(?:/[^/]*(?:/[^/]*)*)?/[^/]*\.go$
//
//	$ globre match 'src/**/*.go' src/a/b.go docs/readme.md
//	   match  src/a/b.go
//	no match  docs/readme.md
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/globre/globre"
)

// errReported signals a failure already printed to stderr.
var errReported = errors.New("already reported")

func main() {
	var flags struct {
		ignoreCase        bool
		matchSeparators   bool
		requireLeadingDot bool
	}

	opts := func() []globre.Option {
		var o []globre.Option
		if flags.ignoreCase {
			o = append(o, globre.CaseSensitive(false))
		}
		if flags.matchSeparators {
			o = append(o, globre.RequireLiteralSeparator(false))
		}
		if flags.requireLeadingDot {
			o = append(o, globre.RequireLiteralLeadingDot(true))
		}
		return o
	}

	root := &cobra.Command{
		Use:           "globre",
		Short:         "Compile glob patterns and test names against them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "match case-insensitively")
	root.PersistentFlags().BoolVar(&flags.matchSeparators, "match-separators", false, "let * and ? match the / separator")
	root.PersistentFlags().BoolVar(&flags.requireLeadingDot, "require-leading-dot", false, "only match hidden names with a literal dot")

	root.AddCommand(
		matchCommand(opts),
		regexpCommand(opts),
		explainCommand(opts),
		quoteCommand(),
	)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func matchCommand(opts func() []globre.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "match pattern name [name...]",
		Short: "Test names against a pattern",
		Long: `Match tests each name against the pattern and prints a verdict per name.
It exits nonzero if any name does not match.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := globre.Compile(args[0], opts()...)
			if err != nil {
				printDiagnostic(cmd.ErrOrStderr(), args[0], err)
				return errReported
			}
			misses := 0
			for _, name := range args[1:] {
				if p.Match(name) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", color.GreenString("   match"), name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", color.RedString("no match"), name)
					misses++
				}
			}
			if misses > 0 {
				return errReported
			}
			return nil
		},
	}
}

func regexpCommand(opts func() []globre.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "regexp pattern",
		Short: "Print the regexp a pattern compiles to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := globre.Compile(args[0], opts()...)
			if err != nil {
				printDiagnostic(cmd.ErrOrStderr(), args[0], err)
				return errReported
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Regexp())
			return nil
		},
	}
}

func explainCommand(opts func() []globre.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "explain pattern",
		Short: "Show each compilation stage of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := append(opts(), globre.WithTrace(cmd.OutOrStdout()))
			if _, err := globre.Compile(args[0], o...); err != nil {
				printDiagnostic(cmd.ErrOrStderr(), args[0], err)
				return errReported
			}
			return nil
		},
	}
}

func quoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quote text",
		Short: "Escape glob metacharacters in text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), globre.QuoteMeta(args[0]))
			return nil
		},
	}
}

// printDiagnostic echoes the pattern with a marker under the span the error
// reports. Marker columns are byte positions, close enough for a debugging
// aid.
func printDiagnostic(w io.Writer, pattern string, err error) {
	fmt.Fprintln(w, err)
	var perr *globre.Error
	if !errors.As(err, &perr) {
		return
	}
	marker := strings.Repeat(" ", perr.Start) + "^"
	if n := perr.End - perr.Start; n > 1 {
		marker += strings.Repeat("~", n-1)
	}
	fmt.Fprintf(w, "  %s\n  %s\n", pattern, color.New(color.FgRed, color.Bold).Sprint(marker))
}
