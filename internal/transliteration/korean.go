package transliteration

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Latin approximations for spoken previews. Not Revised Romanization:
// ㄲ is K and a silent ㅇ is O.
var (
	choRoman = [choN]string{
		"G", "K", "N", "D", "T", "R", "M", "B", "P",
		"S", "SS", "O", "J", "JJ", "CH", "K", "T", "P", "H",
	}
	jungRoman = [jungN]string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	jongRoman = [jongN]string{
		"", "k", "k", "ks", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
		"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

// Romanize renders every Hangul syllable in text in Latin letters, joining
// consecutive syllables with hyphens. Other runes and invalid UTF-8 bytes
// are kept as they are. The
// result is lowercased with only its first letter capitalized, so "가나"
// becomes "Ga-na".
func Romanize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	rendered := 0
	scan(text, func(r rune, raw string) {
		s, ok := Decode(r)
		if !ok {
			b.WriteString(raw)
			return
		}
		if rendered > 0 {
			b.WriteByte('-')
		}
		b.WriteString(choRoman[s.Cho])
		b.WriteString(jungRoman[s.Jung])
		if s.Jong != 0 {
			b.WriteString(jongRoman[s.Jong])
		}
		rendered++
	})
	return capitalizeFirst(b.String())
}

// capitalizeFirst lowercases s and then uppercases its first letter. Invalid
// UTF-8 bytes are left as they are. Casers carry state, so a fresh one is
// built per call.
func capitalizeFirst(s string) string {
	s = lowerValid(s)
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + cases.Upper(language.Und).String(string(r)) + s[i+utf8.RuneLen(r):]
		}
	}
	return s
}

// lowerValid lowercases the well-formed runs of s and copies invalid bytes
// between them unchanged.
func lowerValid(s string) string {
	lower := cases.Lower(language.Und)
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		n := validPrefix(s)
		b.WriteString(lower.String(s[:n]))
		if n == len(s) {
			break
		}
		b.WriteByte(s[n])
		s = s[n+1:]
	}
	return b.String()
}

// validPrefix returns the length of the longest well-formed UTF-8 prefix of s.
func validPrefix(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}
