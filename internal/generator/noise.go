package generator

import (
	"strings"

	"yuragi/internal/model"
)

// noisePOS covers particles, auxiliary verbs and symbols. Matching is by
// substring, so 助詞 also catches every particle subtype spelled into POS.
var noisePOS = []string{"助詞", "助動詞", "記号"}

const dependent = "非自立"

// FilterNoise drops tokens that never head a nickname: particles,
// auxiliary verbs, symbols and dependent nouns or verbs (こと, もの,
// しまう, ちゃう). Order is kept.
//
// Positional extraction needs the particles, so it must run on the
// unfiltered sequence.
func FilterNoise(tokens []model.Token) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	for _, t := range tokens {
		if isNoise(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func isNoise(t model.Token) bool {
	for _, p := range noisePOS {
		if strings.Contains(t.POS, p) {
			return true
		}
	}
	return t.POS1 == dependent
}
