package analyzer

import (
	"context"
)

// Static is an Analyzer that replays recorded MeCab output, keyed by
// dictionary and input text. Unknown texts analyze to no tokens.
// It is used for fixtures where results must not depend on dictionary
// versions.
type Static struct {
	outputs map[Dictionary]map[string]string
}

// NewStatic returns an empty Static analyzer.
func NewStatic() *Static {
	return &Static{
		outputs: make(map[Dictionary]map[string]string),
	}
}

// Add records the MeCab output for text under dictionary d. Add is not
// safe to call once analysis has started.
func (s *Static) Add(d Dictionary, text, output string) *Static {
	if s.outputs[d] == nil {
		s.outputs[d] = make(map[string]string)
	}
	s.outputs[d][text] = output
	return s
}

// Analyze implements Analyzer. Every call parses afresh so callers never
// share token slices.
func (s *Static) Analyze(ctx context.Context, text string, d Dictionary) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseMeCab(s.outputs[d][text]), nil
}
