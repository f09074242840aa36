package generator

import (
	"yuragi/internal/kana"
	"yuragi/internal/model"
)

// heads are the head forms one token contributes to a combination.
//
//	v1  first two characters of the surface
//	v2  first character of the surface, only when it is a kanji
//	v3  first two characters of the katakana pronunciation (Token.Kana)
//	v4  v3 in hiragana
//
// roman is the whole pronunciation romanized, empty without one.
type heads struct {
	v1, v2, v3, v4 string
	roman          string
	kanji          bool
	reading        bool
}

func headsOf(t model.Token) heads {
	h := heads{v1: kana.Head(t.Surface, 2)}
	if kana.StartsWithKanji(t.Surface) {
		h.kanji = true
		h.v2 = kana.Head(t.Surface, 1)
	}
	if t.HasReading() {
		h.reading = true
		h.v3 = kana.Head(t.Kana(), 2)
		h.v4 = kana.ToHiragana(h.v3)
		h.roman = kana.Romanize(t.Kana())
	}
	return h
}

// Combine builds acronym candidates from every ordered pair of tokens
// (i before j), mixing the head forms of both. For ボク、運命の人です the
// pair ボク/運命 yields ボク運 among others. Tokens should already be
// noise-filtered. The result keeps enumeration order and duplicates.
func Combine(tokens []model.Token) []string {
	hs := make([]heads, len(tokens))
	for i, t := range tokens {
		hs[i] = headsOf(t)
	}
	out := make([]string, 0)
	for i := range hs {
		for j := i + 1; j < len(hs); j++ {
			out = combinePair(out, hs[i], hs[j])
		}
	}
	return out
}

// CombineUnique is Combine with duplicates removed, first occurrence kept.
func CombineUnique(tokens []model.Token) []string {
	return dedupe(Combine(tokens))
}

func combinePair(out []string, a, b heads) []string {
	out = append(out, a.v1+b.v1)

	if a.kanji {
		out = append(out, a.v2+b.v1)
		if a.reading {
			out = append(out, a.v3+b.v1)
			if b.kanji {
				out = append(out, a.v3+b.v2)
			}
			out = append(out, a.v4+b.v1)
			if b.kanji {
				out = append(out, a.v4+b.v2)
			}
		}
	}

	if b.kanji {
		out = append(out, a.v1+b.v2)
		if b.reading {
			out = append(out, a.v1+b.v3)
			if a.kanji {
				out = append(out, a.v2+b.v3)
			}
			out = append(out, a.v1+b.v4)
			if a.kanji {
				out = append(out, a.v2+b.v4)
			}
		}
	}

	if a.reading && b.reading {
		out = append(out, a.v3+b.v3, a.v4+b.v4)
	}

	// romanized cross terms; a missing reading contributes ""
	return append(out,
		a.v1+b.roman,
		a.v3+b.roman,
		a.roman+b.v1,
		a.roman+b.v3,
		a.roman+b.roman,
	)
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
