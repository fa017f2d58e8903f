// Package batch renders many speaker names at once.
package batch

import (
	"context"
	"strings"

	"github.com/jusunglee/voicename/internal/preview"
	"github.com/jusunglee/voicename/internal/transliteration"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

type Options struct {
	Language preview.Language
	// Notation, when set, replaces the language's own notation for names.
	Notation    *transliteration.Notation
	Preview     bool   // speak the greeting line instead of Text
	Text        string // text each voice is asked to say when not previewing
	Description string // used by the korean preview line
	Concurrency int
}

type Result struct {
	Input string
	Name  string // display name in the target language
	// Speech is what the voice would say. Empty when neither Preview nor
	// Text is set.
	Speech string
	// Warning is set when Text still contains Hangul for a non-korean language.
	Warning error
}

// Clean trims each line and drops the blank ones.
func Clean(lines []string) []string {
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != ""
	})
}

// Run renders names in parallel. Results keep the order of names. It stops
// early only if ctx is cancelled.
func Run(ctx context.Context, names []string, opts Options) ([]Result, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	results := make([]Result, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = render(name, opts)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func render(name string, opts Options) Result {
	r := Result{Input: name}
	if opts.Notation != nil {
		r.Name = transliteration.Transliterate(preview.PureName(name), *opts.Notation)
	} else {
		r.Name = preview.DisplayName(name, opts.Language)
	}
	if opts.Preview || opts.Text != "" {
		speaker := preview.Speaker{Name: name, Description: opts.Description}
		r.Speech, r.Warning = preview.Speech(speaker, opts.Language, opts.Text, opts.Preview)
	}
	return r
}
