package transliteration

import "unicode/utf8"

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
	jongN      = 28
	jungN      = 21
	choN       = 19
)

// Syllable holds the jamo indices of a precomposed Hangul syllable.
// Cho is the leading consonant, Jung the vowel and Jong the trailing
// consonant (0 when the syllable has none).
type Syllable struct {
	Cho  int
	Jung int
	Jong int
}

// Decode splits r into its jamo indices. It reports false for anything
// outside U+AC00..U+D7A3; callers copy such runes through unchanged.
func Decode(r rune) (Syllable, bool) {
	if r < hangulBase || r > hangulEnd {
		return Syllable{}, false
	}
	code := int(r) - hangulBase
	return Syllable{
		Cho:  code / jongN / jungN,
		Jung: (code / jongN) % jungN,
		Jong: code % jongN,
	}, true
}

// Rune recomposes the syllable into its code point.
func (s Syllable) Rune() rune {
	return rune(hangulBase + (s.Cho*jungN+s.Jung)*jongN + s.Jong)
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulEnd
}

// scan calls fn with each rune of text and the bytes it was decoded from.
// An invalid byte arrives as utf8.RuneError with raw holding that one byte,
// so copying raw keeps malformed input intact.
func scan(text string, fn func(r rune, raw string)) {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		fn(r, text[i:i+size])
		i += size
	}
}
