package transliteration

import (
	"errors"
	"fmt"
	"strings"
)

// Notation selects the script a Korean name is rendered in.
type Notation int

const (
	Romanization Notation = iota
	Katakana
)

// ErrUnknownNotation is returned by ParseNotation for unrecognized names.
var ErrUnknownNotation = errors.New("unknown notation")

func (n Notation) String() string {
	switch n {
	case Romanization:
		return "romanization"
	case Katakana:
		return "katakana"
	default:
		return fmt.Sprintf("Notation(%d)", int(n))
	}
}

// ParseNotation accepts "romanization"/"roman" and "katakana"/"kana" in any case.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "romanization", "roman":
		return Romanization, nil
	case "katakana", "kana":
		return Katakana, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNotation, s)
	}
}

// Transliterate renders the Hangul syllables of name in the given notation.
// Everything else in name is copied unchanged. It is safe for concurrent use.
func Transliterate(name string, n Notation) string {
	switch n {
	case Romanization:
		return Romanize(name)
	case Katakana:
		return ToKatakana(name)
	default:
		return name
	}
}
