package transliteration

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRomanize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"가", "Ga"},
		{"가나", "Ga-na"},
		{"페이커", "Pe-oi-keo"},
		{"김치", "Gim-chi"},
		{"김민수", "Gim-min-su"},
		{"철수", "Cheol-su"},
		{"한", "Han"},
		{"짱", "Jjang"},
		{"닭", "Dalg"},
		{"힣", "Hih"},
		{"가-1", "Ga-1"},
		{"(가)", "(Ga)"},
		{"김 민수", "Gim -min-su"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Romanize(tt.input), "Romanize(%q)", tt.input)
	}
}

func TestRomanizeLeadingConsonantsAreDistinct(t *testing.T) {
	// 짜 차 카 타 파 하: the five consonants after ㅈ each get their own entry.
	got := Romanize("짜차카타파하")
	assert.Equal(t, "Jja-cha-ka-ta-pa-ha", got)
}

func TestToKatakana(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"가", "カ"},
		{"가나", "カナ"},
		{"한", "ハン"},
		{"김민수", "キムミンス"},
		{"철수", "ジョルス"},
		{"박", "パク"},
		{"닭", "タ"},
		{"짱", "ジャン"},
		{"힣", "ヒプ"},
		{"왜", "・"},
		{"서연", "ソ・ン"},
		{"가-1", "カ-1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToKatakana(tt.input), "ToKatakana(%q)", tt.input)
	}
}

func TestToKatakanaAppendsNForJong4(t *testing.T) {
	for cho := range choN {
		for jung := range jungN {
			s := Syllable{Cho: cho, Jung: jung, Jong: 4}
			got := ToKatakana(string(s.Rune()))
			base := ToKatakana(string(Syllable{Cho: cho, Jung: jung}.Rune()))
			require.Equal(t, base+"ン", got, "syllable %q", s.Rune())
		}
	}
}

func TestConsonantSeriesCoverEveryLeadingConsonant(t *testing.T) {
	all := lo.FlatMap(consonantSeries, func(s kanaSeries, _ int) []int {
		return s.cho
	})
	assert.Len(t, all, choN)
	assert.ElementsMatch(t, lo.Range(choN), lo.Uniq(all))
}

func TestKanaTableSeriesShareRows(t *testing.T) {
	for _, group := range [][]int{{0, 1, 15}, {3, 4, 16}, {7, 8, 17}, {9, 10}, {12, 13, 14}} {
		for _, cho := range group[1:] {
			assert.Equal(t, kanaTable[group[0]], kanaTable[cho], "cho %d should share a row with %d", cho, group[0])
		}
	}
}

func TestCodaKanaIsTotal(t *testing.T) {
	audible := lo.Filter(lo.Range(jongN), func(j int, _ int) bool {
		return codaKana[j] != ""
	})
	assert.Equal(t, []int{1, 4, 7, 8, 16, 17, 21, 24, 27}, audible)
}

func TestPassthroughWithoutHangul(t *testing.T) {
	tests := []struct {
		input     string
		wantRoman string
	}{
		{"Faker", "Faker"},
		{"hello WORLD", "Hello world"},
		{"  spaced out", "  Spaced out"},
		{"123-456", "123-456"},
		{"(happy)", "(Happy)"},
		{"42 ABC", "42 Abc"},
		{"ÉCOLE", "École"},
		{"ㄱㅏ", "ㄱㅏ"},
		{"カタカナ", "カタカナ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantRoman, Romanize(tt.input), "Romanize(%q)", tt.input)
		assert.Equal(t, tt.input, ToKatakana(tt.input), "ToKatakana(%q)", tt.input)
	}
}

func TestInvalidUTF8IsCopiedThrough(t *testing.T) {
	tests := []struct {
		input     string
		wantRoman string
		wantKana  string
	}{
		{"ab\xffcd", "Ab\xffcd", "ab\xffcd"},
		{"\xff가", "\xffGa", "\xffカ"},
		{"가\xfe나", "Ga\xfe-na", "カ\xfeナ"},
		{"\xc3", "\xc3", "\xc3"},
		{"AB\x80\x80CD", "Ab\x80\x80cd", "AB\x80\x80CD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantRoman, Romanize(tt.input), "Romanize(%q)", tt.input)
		assert.Equal(t, tt.wantKana, ToKatakana(tt.input), "ToKatakana(%q)", tt.input)
	}
}

func TestReplacementCharacterIsNotMistakenForInvalidInput(t *testing.T) {
	assert.Equal(t, "\uFFFDGa", Romanize("\uFFFD가"))
	assert.Equal(t, "\uFFFDカ", ToKatakana("\uFFFD가"))
}

func TestTransliterateDispatch(t *testing.T) {
	assert.Equal(t, "Gim-min-su", Transliterate("김민수", Romanization))
	assert.Equal(t, "キムミンス", Transliterate("김민수", Katakana))
	assert.Equal(t, "김민수", Transliterate("김민수", Notation(42)))
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		input string
		want  Notation
	}{
		{"romanization", Romanization},
		{"Roman", Romanization},
		{"katakana", Katakana},
		{" KANA ", Katakana},
	}
	for _, tt := range tests {
		got, err := ParseNotation(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want, lo.Must(ParseNotation(got.String())))
	}

	_, err := ParseNotation("hiragana")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownNotation)
}

func TestTransliterateIsDeterministicAcrossGoroutines(t *testing.T) {
	names := []string{"김민수", "이서연", "박지훈", "최유나", "한", "가-1", "Faker"}
	want := make(map[string][2]string, len(names))
	for _, n := range names {
		want[n] = [2]string{Transliterate(n, Romanization), Transliterate(n, Katakana)}
	}

	var eg errgroup.Group
	for range 32 {
		eg.Go(func() error {
			for _, n := range names {
				assert.Equal(t, want[n][0], Transliterate(n, Romanization))
				assert.Equal(t, want[n][1], Transliterate(n, Katakana))
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
