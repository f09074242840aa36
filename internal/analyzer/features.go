package analyzer

import (
	"bufio"
	"strings"
)

// minReadingFeatures is the feature count of an IPA record that carries a
// reading: pos,pos1,pos2,pos3,ctype,cform,lemma,reading,pronunciation.
const minReadingFeatures = 9

const (
	eosSentinel = "EOS"
	placeholder = "*"
)

// FromFeatures builds a Token from a surface form and an IPA-layout
// feature record. Unknown words carry only seven features and get no
// reading, as do records whose reading is the "*" placeholder.
func FromFeatures(surface string, features []string) Token {
	t := Token{Surface: surface}
	field := func(i int) string {
		if i < len(features) {
			return features[i]
		}
		return ""
	}
	t.POS = field(0)
	t.POS1 = field(1)
	t.POS2 = field(2)
	t.POS3 = field(3)
	t.ConjugationType = field(4)
	t.ConjugationForm = field(5)
	t.Lemma = field(6)
	if t.Lemma == "" || t.Lemma == placeholder {
		t.Lemma = surface
	}
	if len(features) >= minReadingFeatures {
		if r := features[7]; r != placeholder {
			t.Reading = r
		}
		if p := features[8]; p != placeholder {
			t.Pronunciation = p
		}
	}
	return t
}

// ParseMeCab converts MeCab default-format output ("surface\tf1,f2,...")
// into tokens. The EOS sentinel and blank lines are dropped.
func ParseMeCab(output string) []Token {
	out := make([]Token, 0)
	sc := bufio.NewScanner(strings.NewReader(output))
	pos := 0
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || line == eosSentinel {
			continue
		}
		surface, rest, ok := strings.Cut(line, "\t")
		if !ok || surface == "" {
			continue
		}
		t := FromFeatures(surface, strings.Split(rest, ","))
		t.Start = pos
		pos += len([]rune(surface))
		t.End = pos
		out = append(out, t)
	}
	return out
}
