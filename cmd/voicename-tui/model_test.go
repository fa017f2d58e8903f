package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/voicename/internal/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m model, text string) model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m model, key tea.KeyType) model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: key})
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func TestInitialModelSelectsLanguage(t *testing.T) {
	m := initialModel(preview.Japanese, "")
	assert.Equal(t, preview.Japanese, m.language())
}

func TestTabCyclesLanguages(t *testing.T) {
	m := initialModel(preview.Korean, "")

	m = press(t, m, tea.KeyTab)
	assert.Equal(t, preview.English, m.language())

	m = press(t, m, tea.KeyShiftTab)
	m = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, preview.Taiwanese, m.language())
}

func TestViewShowsTransliteration(t *testing.T) {
	m := initialModel(preview.Japanese, "")
	m = typeText(t, m, "김민수(기쁨)")

	assert.Equal(t, "김민수(기쁨)", m.input.Value())
	view := m.View()
	assert.Contains(t, view, "キムミンス")
	assert.Contains(t, view, "こんにちは。私はキムミンスです。")
}

func TestViewPromptsWhenEmpty(t *testing.T) {
	m := initialModel(preview.English, "")
	assert.Contains(t, m.View(), "Type a speaker name.")
}

func TestEscQuits(t *testing.T) {
	m := initialModel(preview.English, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDownMovesTypingToText(t *testing.T) {
	m := initialModel(preview.English, "")
	m = typeText(t, m, "김민수")
	m = press(t, m, tea.KeyDown)
	m = typeText(t, m, "Good morning.")

	assert.Equal(t, "김민수", m.input.Value())
	assert.Equal(t, "Good morning.", m.text.Value())

	view := m.View()
	assert.Contains(t, view, "Gim-min-su")
	assert.Contains(t, view, "Good morning.")
	assert.NotContains(t, view, "Hello. I am")
	assert.NotContains(t, view, "⚠")

	m = press(t, m, tea.KeyUp)
	m = typeText(t, m, "!")
	assert.Equal(t, "김민수!", m.input.Value())
}

func TestViewWarnsOnHangulText(t *testing.T) {
	m := initialModel(preview.Japanese, "")
	m = typeText(t, m, "김민수")
	m = press(t, m, tea.KeyDown)
	m = typeText(t, m, "안녕하세요")

	view := m.View()
	assert.Contains(t, view, "⚠")
	assert.Contains(t, view, "not korean")

	m = press(t, m, tea.KeyShiftTab)
	m = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, preview.Korean, m.language())
	assert.NotContains(t, m.View(), "⚠")
}
