// Package preview builds the spoken preview line for a voice: it strips the
// emotion suffix from the speaker's name, renders that name in the target
// language's script and slots it into a short greeting.
package preview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jusunglee/voicename/internal/transliteration"
	"github.com/samber/lo"
)

// Language is a synthesis target language.
type Language int

const (
	Korean Language = iota
	English
	Japanese
	Taiwanese
)

var (
	ErrUnknownLanguage     = errors.New("unknown language")
	ErrHangulInForeignText = errors.New("text contains Hangul but the language is not korean")
)

var languageNames = map[Language]string{
	Korean:    "korean",
	English:   "english",
	Japanese:  "japanese",
	Taiwanese: "taiwanese",
}

// Languages returns every language in display order.
func Languages() []Language {
	return []Language{Korean, English, Japanese, Taiwanese}
}

// LanguageNames returns the wire names of Languages, in the same order.
func LanguageNames() []string {
	return lo.Map(Languages(), func(l Language, _ int) string {
		return l.String()
	})
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

func ParseLanguage(s string) (Language, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Languages() {
		if l.String() == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Notation reports how names are rendered for l. Korean keeps names as they
// are and reports false.
func (l Language) Notation() (transliteration.Notation, bool) {
	switch l {
	case English, Taiwanese:
		return transliteration.Romanization, true
	case Japanese:
		return transliteration.Katakana, true
	default:
		return 0, false
	}
}

// Speaker is the part of a voice catalogue entry the preview needs.
type Speaker struct {
	Name        string
	Description string
}

// PureName drops a parenthetical suffix such as "(happy)" from a speaker name.
func PureName(speakerName string) string {
	name, _, _ := strings.Cut(speakerName, "(")
	return strings.TrimSpace(name)
}

// DisplayName is the speaker's name as it should be spoken in l.
func DisplayName(speakerName string, l Language) string {
	name := PureName(speakerName)
	if n, ok := l.Notation(); ok {
		return transliteration.Transliterate(name, n)
	}
	return name
}

// Line returns the sentence a voice speaks when previewed in l.
func Line(s Speaker, l Language) string {
	switch l {
	case English:
		return fmt.Sprintf("Hello. I am %s.", DisplayName(s.Name, l))
	case Japanese:
		return fmt.Sprintf("こんにちは。私は%sです。", DisplayName(s.Name, l))
	case Taiwanese:
		return "你好。這是我聲音的預覽。"
	default:
		return fmt.Sprintf("안녕하세요. 저는 %s 목소리의 %s입니다.", s.Description, s.Name)
	}
}

// Speech returns what a voice is asked to say. With isPreview it is the
// greeting from Line. Otherwise it is text, checked with Check, since text is
// typed by the user and may still be Korean.
func Speech(s Speaker, l Language, text string, isPreview bool) (string, error) {
	if isPreview {
		return Line(s, l), nil
	}
	return text, Check(text, l)
}

// ContainsHangul reports whether text has any precomposed Hangul syllable.
func ContainsHangul(text string) bool {
	return lo.ContainsBy([]rune(text), transliteration.IsSyllable)
}

// Check returns ErrHangulInForeignText when text still holds Hangul but l is
// not Korean. Synthesis servers reject such requests.
func Check(text string, l Language) error {
	if l != Korean && ContainsHangul(text) {
		return fmt.Errorf("%w: language=%s", ErrHangulInForeignText, l)
	}
	return nil
}
