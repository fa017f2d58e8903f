package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/voicename/internal/preview"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

type model struct {
	input       textinput.Model // speaker name
	text        textinput.Model // text to speak; empty means preview
	languages   []preview.Language
	current     int
	description string
}

func initialModel(lang preview.Language, description string) model {
	ti := textinput.New()
	ti.Placeholder = "김민수(기쁨)"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	text := textinput.New()
	text.Placeholder = "text to speak (empty for the preview line)"
	text.CharLimit = 256
	text.Width = 40

	m := model{
		input:       ti,
		text:        text,
		languages:   preview.Languages(),
		description: description,
	}
	for i, l := range m.languages {
		if l == lang {
			m.current = i
		}
	}
	return m
}

func (m model) language() preview.Language {
	return m.languages[m.current]
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.current = (m.current + 1) % len(m.languages)
			return m, nil
		case tea.KeyShiftTab:
			m.current = (m.current + len(m.languages) - 1) % len(m.languages)
			return m, nil
		case tea.KeyUp, tea.KeyDown:
			return m.toggleFocus()
		}
	}

	var cmd tea.Cmd
	if m.text.Focused() {
		m.text, cmd = m.text.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) toggleFocus() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.text.Focused() {
		m.text.Blur()
		cmd = m.input.Focus()
	} else {
		m.input.Blur()
		cmd = m.text.Focus()
	}
	return m, cmd
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Voice name preview"))
	s.WriteString("\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(m.text.View())
	s.WriteString("\n\n")
	s.WriteString(m.renderResult())
	s.WriteString("\n\n")
	s.WriteString(subtleStyle.Render("tab/shift+tab: language • ↑/↓: switch field • esc: quit"))

	return boxStyle.Render(s.String())
}

func (m model) renderTabs() string {
	tabs := make([]string, len(m.languages))
	for i, l := range m.languages {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(l.String())
		} else {
			tabs[i] = tabStyle.Render(l.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) renderResult() string {
	name := m.input.Value()
	if strings.TrimSpace(name) == "" {
		return subtleStyle.Render("Type a speaker name.")
	}

	lang := m.language()
	text := m.text.Value()
	isPreview := strings.TrimSpace(text) == ""
	speech, err := preview.Speech(preview.Speaker{Name: name, Description: m.description}, lang, text, isPreview)

	label := "Speech"
	if isPreview {
		label = "Preview"
	}
	rows := []string{
		row("Name", preview.PureName(name)),
		row("Spoken", preview.DisplayName(name, lang)),
		row(label, speech),
	}
	if err != nil {
		rows = append(rows, warnStyle.Render(fmt.Sprintf("⚠ %v", err)))
	}
	return strings.Join(rows, "\n")
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
