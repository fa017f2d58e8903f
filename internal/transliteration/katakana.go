package transliteration

import "strings"

const (
	kanaFiller  = "ー"
	kanaUnknown = "・"
)

// Vowel indices that have a kana rendering. Every other vowel column is
// left as kanaFiller.
var kanaColumns = [10]int{0, 2, 4, 5, 8, 12, 13, 17, 18, 20}

type kanaSeries struct {
	cho  []int
	kana [len(kanaColumns)]string
}

// consonantSeries groups leading consonants that share one kana row, since
// Japanese has no plain/aspirated/tense contrast. Rows follow kanaColumns:
// a, ya, eo, e, o, yo, u, yu, eu, i.
var consonantSeries = []kanaSeries{
	{[]int{0, 1, 15}, [10]string{"カ", "キャ", "コ", "ケ", "コ", "キョ", "ク", "キュ", "ク", "キ"}},
	{[]int{2}, [10]string{"ナ", "ニャ", "ノ", "ネ", "ノ", "ニョ", "ヌ", "ニュ", "ヌ", "ニ"}},
	{[]int{3, 4, 16}, [10]string{"タ", "チャ", "ト", "テ", "ト", "チョ", "トゥ", "チュ", "トゥ", "ティ"}},
	{[]int{5}, [10]string{"ラ", "リャ", "ロ", "レ", "ロ", "リョ", "ル", "リュ", "ル", "リ"}},
	{[]int{6}, [10]string{"マ", "ミャ", "モ", "メ", "モ", "ミョ", "ム", "ミュ", "ム", "ミ"}},
	{[]int{7, 8, 17}, [10]string{"パ", "ピャ", "ポ", "ペ", "ポ", "ピョ", "プ", "ピュ", "プ", "ピ"}},
	{[]int{9, 10}, [10]string{"サ", "シャ", "ソ", "セ", "ソ", "ショ", "ス", "シュ", "ス", "シ"}},
	{[]int{11}, [10]string{"ア", "ヤ", "オ", "エ", "オ", "ヨ", "ウ", "ユ", "ウ", "イ"}},
	{[]int{12, 13, 14}, [10]string{"ジャ", "ジャ", "ジョ", "ジェ", "ジョ", "ジョ", "ジュ", "ジュ", "ジュ", "ジ"}},
	{[]int{18}, [10]string{"ハ", "ヒャ", "ホ", "ヘ", "ホ", "ヒョ", "フ", "ヒュ", "フ", "ヒ"}},
}

// codaKana is the mora appended for each trailing consonant. Most codas
// have no audible mora and map to "".
var codaKana = [jongN]string{
	1:  "ク",
	4:  "ン",
	7:  "ッ",
	8:  "ル",
	16: "ム",
	17: "プ",
	21: "ン",
	24: "ク",
	27: "プ",
}

var kanaTable = buildKanaTable()

func buildKanaTable() [choN][jungN]string {
	var t [choN][jungN]string
	for cho := range t {
		for jung := range t[cho] {
			t[cho][jung] = kanaFiller
		}
	}
	for _, series := range consonantSeries {
		for _, cho := range series.cho {
			for i, jung := range kanaColumns {
				t[cho][jung] = series.kana[i]
			}
		}
	}
	return t
}

// ToKatakana approximates every Hangul syllable in text with katakana.
// Syllables whose vowel has no kana come out as "・". Other runes, and any
// invalid UTF-8 bytes, are kept as they are.
func ToKatakana(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	scan(text, func(r rune, raw string) {
		s, ok := Decode(r)
		if !ok {
			b.WriteString(raw)
			return
		}
		kana := kanaTable[s.Cho][s.Jung]
		if kana == kanaFiller {
			kana = kanaUnknown
		}
		b.WriteString(kana)
		b.WriteString(codaKana[s.Jong])
	})
	return b.String()
}
