// voicename prints how a Korean voice name is spoken in another language.
// Names come from the arguments, or one per line on stdin when there are none.
//
//	voicename --language japanese 김민수 "이서연(기쁨)"
//	voicename --language english --preview < names.txt
//	voicename --language english --text "Welcome back." 김민수
//
// With --preview or --text each line is the name, a tab, and what the voice
// would say.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jusunglee/voicename/internal/batch"
	"github.com/jusunglee/voicename/internal/logger"
	"github.com/jusunglee/voicename/internal/preview"
	"github.com/jusunglee/voicename/internal/transliteration"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("voicename")
	var (
		languageName = fs.StringEnumLong("language", "Target synthesis language", languageChoices()...)
		notationName = fs.StringLong("notation", "", "Override the language's notation for names (romanization, katakana)")
		showPreview  = fs.BoolLong("preview", "Also print the preview line each voice would speak")
		text         = fs.StringLong("text", "", "Text each voice is asked to say; warns if it is Korean for another language")
		description  = fs.StringLong("description", "", "Voice description used by the korean preview line")
		concurrency  = fs.Int64Long("concurrency", 4, "Number of names rendered in parallel")
		logLevel     = fs.StringLong("log-level", "info", "Log level (debug, info, warn, error)")
		logFormat    = fs.StringLong("log-format", "pretty", "Log format (pretty, json)")
	)

	err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("VOICENAME"))
	if errors.Is(err, ff.ErrHelp) {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return nil
	}
	if err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init(logger.Options{Format: *logFormat, Level: *logLevel})

	lang, err := preview.ParseLanguage(*languageName)
	if err != nil {
		return err
	}

	notation, err := parseNotation(*notationName)
	if err != nil {
		return err
	}

	names := fs.GetArgs()
	if len(names) == 0 {
		log.Debug("no names given, reading stdin")
		names, err = readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	names = batch.Clean(names)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := batch.Run(ctx, names, batch.Options{
		Language:    lang,
		Notation:    notation,
		Preview:     *showPreview,
		Text:        *text,
		Description: *description,
		Concurrency: int(*concurrency),
	})
	if err != nil {
		return fmt.Errorf("rendering names: %w", err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	warned := writeResults(w, log, results, lang)
	log.Debug("done", "count", len(results), "warnings", warned, "language", lang)
	return nil
}

// parseNotation returns nil for an empty name, meaning the language decides.
func parseNotation(name string) (*transliteration.Notation, error) {
	if name == "" {
		return nil, nil
	}
	n, err := transliteration.ParseNotation(name)
	if err != nil {
		return nil, fmt.Errorf("parsing notation: %w", err)
	}
	return &n, nil
}

// writeResults prints one line per result and logs a warning for each result
// whose text would be rejected. It returns the number of warnings.
func writeResults(w io.Writer, log *slog.Logger, results []batch.Result, lang preview.Language) int {
	warned := 0
	for _, r := range results {
		if r.Warning != nil {
			log.Warn("text to speak contains hangul", "input", r.Input, "language", lang, "error", r.Warning)
			warned++
		}
		if r.Speech == "" {
			fmt.Fprintln(w, r.Name)
		} else {
			fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Speech)
		}
	}
	return warned
}

// languageChoices lists the language names with english first, since the
// first choice is the flag's default.
func languageChoices() []string {
	return append([]string{preview.English.String()}, lo.Without(preview.LanguageNames(), preview.English.String())...)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
