// Package extract picks words out of an analyzed title by position and
// part of speech. It must see the unfiltered token sequence: particles are
// the boundary markers.
package extract

import (
	"yuragi/internal/model"
)

// Token is the analyzer token.
type Token = model.Token

const (
	posNoun     = "名詞"
	posParticle = "助詞"

	subPronoun    = "代名詞"
	subProperNoun = "固有名詞"
	subSuffix     = "接尾"
	subNumber     = "数"

	subCaseParticle = "格助詞"
	subBindParticle = "係助詞"
	topicParticle   = "は"
	subjectParticle = "が"
)

// Subjects returns each word directly followed by a subject marker: は or
// が tagged as a case or binding particle. In 恋がヘタでも生きてます the
// subject is 恋. A marker at the start of the title has no subject.
func Subjects(tokens []Token) []string {
	out := make([]string, 0)
	for i, t := range tokens {
		if i == 0 || !isSubjectMarker(t) {
			continue
		}
		out = append(out, tokens[i-1].Surface)
	}
	return out
}

func isSubjectMarker(t Token) bool {
	if t.Surface != topicParticle && t.Surface != subjectParticle {
		return false
	}
	return t.POS == posParticle && (t.POS1 == subCaseParticle || t.POS1 == subBindParticle)
}

// Pronouns returns nouns classified as pronouns.
func Pronouns(tokens []Token) []string {
	return nounsOf(tokens, subPronoun)
}

// ProperNouns returns nouns classified as proper nouns.
func ProperNouns(tokens []Token) []string {
	return nounsOf(tokens, subProperNoun)
}

// Suffixes returns suffix nouns such as さん or 係.
func Suffixes(tokens []Token) []string {
	return nounsOf(tokens, subSuffix)
}

// Numbers returns numeral nouns.
func Numbers(tokens []Token) []string {
	return nounsOf(tokens, subNumber)
}

func nounsOf(tokens []Token, sub string) []string {
	out := make([]string, 0)
	for _, t := range tokens {
		if t.POS == posNoun && t.POS1 == sub {
			out = append(out, t.Surface)
		}
	}
	return out
}
