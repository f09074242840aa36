package model

import (
	"github.com/goccy/go-json"
)

// Group names produced by the generators.
const (
	GroupDivided        = "divided"
	GroupUniqueKatakana = "unique_katakana"
	GroupCombined       = "combined"
	GroupSubject        = "subject"
	GroupPronoun        = "pronoun"
	GroupProperNoun     = "proper_noun"
	GroupSuffix         = "suffix"
	GroupNumber         = "number"
)

// Token represents a morpheme produced by the analyzer.
type Token struct {
	Surface         string `json:"surface"`
	POS             string `json:"pos,omitempty"`
	POS1            string `json:"pos1,omitempty"`
	POS2            string `json:"pos2,omitempty"`
	POS3            string `json:"pos3,omitempty"`
	ConjugationType string `json:"conjugation_type,omitempty"`
	ConjugationForm string `json:"conjugation_form,omitempty"`
	Lemma           string `json:"lemma,omitempty"`
	Reading         string `json:"reading,omitempty"`
	Pronunciation   string `json:"pronunciation,omitempty"`
	Start           int    `json:"start"`
	End             int    `json:"end"`
}

// HasReading reports whether the analyzer supplied a usable katakana reading.
func (t Token) HasReading() bool {
	return t.Kana() != ""
}

// Kana returns the terminal reading field: the pronunciation when present,
// otherwise the reading. Long vowels are spelled as spoken (トーキョー).
func (t Token) Kana() string {
	if t.Pronunciation != "" {
		return t.Pronunciation
	}
	return t.Reading
}

// CandidateGroup is a named, ordered list of nickname candidates.
type CandidateGroup struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// CandidateSet holds the groups of one generation run in generator order.
type CandidateSet struct {
	Groups []CandidateGroup `json:"groups"`
}

// Group returns the words of the named group, or nil if absent.
func (s CandidateSet) Group(name string) []string {
	for _, g := range s.Groups {
		if g.Name == name {
			return g.Words
		}
	}
	return nil
}

// Map returns the grouped form: group name -> words. Never nil.
func (s CandidateSet) Map() map[string][]string {
	out := make(map[string][]string, len(s.Groups))
	for _, g := range s.Groups {
		words := g.Words
		if words == nil {
			words = []string{}
		}
		out[g.Name] = words
	}
	return out
}

// Flatten unions every group into one deduplicated list, keeping the
// first-seen order across groups.
func (s CandidateSet) Flatten() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, g := range s.Groups {
		for _, w := range g.Words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// MarshalJSON encodes the set in its grouped form.
func (s CandidateSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}
