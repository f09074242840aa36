// Package kana classifies Japanese characters and converts between scripts.
package kana

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// katakana and hiragana blocks are 0x60 apart for the letters ァ..ヶ / ぁ..ゖ.
const kanaOffset = 0x60

var (
	toHiragana = runes.Map(func(r rune) rune {
		if r >= 0x30A1 && r <= 0x30F6 {
			return r - kanaOffset
		}
		return r
	})
	toKatakana = runes.Map(func(r rune) rune {
		if r >= 0x3041 && r <= 0x3096 {
			return r + kanaOffset
		}
		return r
	})
)

// IsKanji reports whether r is a CJK ideograph.
func IsKanji(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// IsKatakana reports whether r is a katakana letter, including the
// prolonged sound mark ー and the phonetic extensions. The middle dot ・ is
// punctuation, not a letter.
func IsKatakana(r rune) bool {
	switch {
	case r >= 0x30A1 && r <= 0x30FA:
		return true
	case r >= 0x30FC && r <= 0x30FF:
		return true
	case r >= 0x31F0 && r <= 0x31FF:
		return true
	}
	return false
}

// IsHiragana reports whether r is in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= 0x3041 && r <= 0x309F
}

// IsKatakanaWord reports whether s is non-empty and made only of katakana.
func IsKatakanaWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKatakana(r) {
			return false
		}
	}
	return true
}

// StartsWithKanji reports whether the first character of s is a kanji.
func StartsWithKanji(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	return IsKanji(r)
}

// ToHiragana maps katakana letters to hiragana, leaving everything else.
func ToHiragana(s string) string {
	out, _, err := transform.String(toHiragana, s)
	if err != nil {
		return s
	}
	return out
}

// ToKatakana maps hiragana letters to katakana, leaving everything else.
func ToKatakana(s string) string {
	out, _, err := transform.String(toKatakana, s)
	if err != nil {
		return s
	}
	return out
}

// Romanize transliterates a kana string to lower-case Hepburn romaji.
// Contracted sounds (キョ kyo, シャ sha, ファ fa) are folded, the small ッ
// doubles the next consonant and ー repeats the previous vowel. Characters
// outside the katakana letters go through unidecode.
func Romanize(s string) string {
	if s == "" {
		return ""
	}
	rs := []rune(ToKatakana(norm.NFKC.String(s)))

	var b strings.Builder
	last := ""
	double := false
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch r {
		case sokuon:
			double = true
			continue
		case prolonged:
			if v := lastVowel(last); v != "" {
				b.WriteString(v)
			}
			continue
		}

		syl := romanOf(r)
		if isKanaLetter(r) && i+1 < len(rs) {
			if c, ok := contract(syl, rs[i+1]); ok {
				syl = c
				i++
			}
		}
		if double {
			syl = geminate(syl)
			double = false
		}
		b.WriteString(syl)
		last = syl
	}
	return strings.ToLower(strings.Join(strings.Fields(b.String()), ""))
}

const (
	sokuon    = 'ッ'
	prolonged = 'ー'
)

// unidecode follows Nihon-shiki for these.
var hepburn = map[rune]string{
	'ジ': "ji",
	'ヂ': "ji",
	'ヅ': "zu",
	'フ': "fu",
}

var (
	smallY     = map[rune]string{'ャ': "a", 'ュ': "u", 'ョ': "o"}
	smallVowel = map[rune]string{'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o"}
)

func romanOf(r rune) string {
	if v, ok := hepburn[r]; ok {
		return v
	}
	return unidecode.Unidecode(string(r))
}

func isKanaLetter(r rune) bool {
	if _, ok := smallY[r]; ok {
		return false
	}
	if _, ok := smallVowel[r]; ok {
		return false
	}
	return r >= 0x30A1 && r <= 0x30FA && r != sokuon
}

// contract folds syl with a following small kana.
func contract(syl string, next rune) (string, bool) {
	if v, ok := smallY[next]; ok {
		base, found := strings.CutSuffix(syl, "i")
		if !found || base == "" {
			return "", false
		}
		switch base {
		case "sh", "ch", "j":
			return base + v, true
		}
		return base + "y" + v, true
	}
	if v, ok := smallVowel[next]; ok {
		if syl == "" || !isVowel(syl[len(syl)-1]) {
			return "", false
		}
		base := syl[:len(syl)-1]
		switch {
		case base != "":
		case syl == "i":
			base = "y"
		default:
			base = "w"
		}
		return base + v, true
	}
	return "", false
}

func geminate(syl string) string {
	if syl == "" || isVowel(syl[0]) || syl == "n" {
		return syl
	}
	if strings.HasPrefix(syl, "ch") {
		return "t" + syl
	}
	return syl[:1] + syl
}

func lastVowel(syl string) string {
	syl = strings.ToLower(strings.TrimSpace(syl))
	if syl == "" || !isVowel(syl[len(syl)-1]) {
		return ""
	}
	return syl[len(syl)-1:]
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

// Head returns the first n characters of s, or s itself when shorter.
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Len counts characters, not bytes.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
