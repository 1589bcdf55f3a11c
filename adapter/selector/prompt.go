package selector

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/swatchdog/swatchdog/domain"
	"github.com/swatchdog/swatchdog/pkg/logger"
)

// PromptSelector is the fallback used when fzf is not installed: it prints a
// numbered list and reads the chosen numbers from a readline prompt.
type PromptSelector struct {
	out io.Writer
}

var _ domain.Selector = (*PromptSelector)(nil)

func NewPromptSelector() *PromptSelector {
	return &PromptSelector{out: os.Stderr}
}

func (p *PromptSelector) Select(ctx context.Context, options []string, opts domain.SelectOptions) ([]string, error) {
	candidates := filterOptions(options, opts.Query)
	if len(candidates) == 0 {
		logger.Logger(ctx).Warn().Msgf("nothing matches %q", opts.Query)
		return nil, domain.ErrSelectionAborted
	}
	renderOptions(p.out, candidates, opts)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          color.New(color.FgCyan).Sprint("> "),
		InterruptPrompt: "^C",
		Stdout:          p.out,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create prompt")
	}
	defer rl.Close()

	red := color.New(color.FgRed).SprintFunc()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil, domain.ErrSelectionAborted
		}
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			return nil, domain.ErrSelectionAborted
		}

		choices, err := parseSelection(line, candidates, opts.Multi)
		if err != nil {
			fmt.Fprintf(p.out, "%s %v\n", red("Error:"), err)
			continue
		}
		return choices, nil
	}
}

// filterOptions keeps the options containing every word of query, ignoring case.
func filterOptions(options []string, query string) []string {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return options
	}
	var out []string
	for _, o := range options {
		lower := strings.ToLower(o)
		matched := true
		for _, t := range terms {
			if !strings.Contains(lower, t) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, o)
		}
	}
	return out
}

func renderOptions(w io.Writer, options []string, opts domain.SelectOptions) {
	if opts.Header != "" {
		fmt.Fprintln(w, color.New(color.FgHiBlack).Sprint(opts.Header))
	}
	index := color.New(color.FgYellow).SprintFunc()
	for i, o := range options {
		fmt.Fprintf(w, "%s %s\n", index(fmt.Sprintf("%3d)", i+1)), o)
	}
	if opts.Multi {
		fmt.Fprintln(w, "Enter one or more numbers separated by spaces or commas.")
	}
}

// parseSelection turns "1 3" or "1,3" into the matching options, in the order typed.
func parseSelection(line string, options []string, multi bool) ([]string, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, domain.ErrSelectionAborted
	}
	if !multi && len(fields) > 1 {
		return nil, fmt.Errorf("%w: pick exactly one option", domain.ErrUnknownSelection)
	}

	seen := make(map[int]bool, len(fields))
	choices := make([]string, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(options) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSelection, f)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		choices = append(choices, options[n-1])
	}
	return choices, nil
}
