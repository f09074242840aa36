package generator

import (
	"strings"

	"yuragi/internal/kana"
)

// DefaultDividedMaxLength is the exclusive upper bound on segment length.
const DefaultDividedMaxLength = 8

// DivideTitle splits a raw title on spaces and punctuation and keeps the
// segments shorter than maxLen characters.
//
//	DivideTitle("CRISIS 公安機動捜査隊特捜班", 8) // [CRISIS]
func DivideTitle(text string, maxLen int) []string {
	out := make([]string, 0)
	for _, seg := range strings.FieldsFunc(text, isDivider) {
		if kana.Len(seg) < maxLen {
			out = append(out, seg)
		}
	}
	return out
}

func isDivider(r rune) bool {
	switch r {
	case ' ', '　', ',', '.', '、', '。':
		return true
	}
	return false
}
