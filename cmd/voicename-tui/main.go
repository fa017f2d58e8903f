// voicename-tui is an interactive preview of how a voice introduces itself
// in each synthesis language. Type a speaker name and cycle languages with Tab.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jusunglee/voicename/internal/logger"
	"github.com/jusunglee/voicename/internal/preview"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("voicename-tui")
	var (
		languageName = fs.StringEnumLong("language", "Initially selected language", preview.LanguageNames()...)
		description  = fs.StringLong("description", "", "Voice description used by the korean preview line")
		logLevel     = fs.StringLong("log-level", "warn", "Log level (debug, info, warn, error)")
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

	// The TUI owns stdout, so logs go to stderr.
	log := logger.Init(logger.Options{Level: *logLevel, Writer: os.Stderr})

	lang, err := preview.ParseLanguage(*languageName)
	if err != nil {
		return err
	}

	log.Debug("starting preview", "language", lang)
	p := tea.NewProgram(initialModel(lang, *description))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
