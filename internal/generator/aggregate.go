package generator

import (
	"yuragi/internal/kana"
	"yuragi/internal/model"
)

// DefaultMinLength is the shortest candidate kept.
const DefaultMinLength = 3

// FilterShort drops words shorter than minLen characters. A nil input yields
// an empty, non-nil slice.
func FilterShort(words []string, minLen int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if kana.Len(w) >= minLen {
			out = append(out, w)
		}
	}
	return out
}

// Aggregate applies the length floor to every group and returns them as a
// set, keeping group order.
func Aggregate(groups []model.CandidateGroup, minLen int) model.CandidateSet {
	set := model.CandidateSet{Groups: make([]model.CandidateGroup, 0, len(groups))}
	for _, g := range groups {
		set.Groups = append(set.Groups, model.CandidateGroup{
			Name:  g.Name,
			Words: FilterShort(g.Words, minLen),
		})
	}
	return set
}
