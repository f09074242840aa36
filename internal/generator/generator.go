// Package generator derives nickname candidates from a title.
//
// An Engine runs a list of independent Generators over one Input. Each
// generator produces one named group; the engine then applies the length
// floor to every group.
package generator

import (
	"context"
	"errors"
	"fmt"

	"yuragi/internal/analyzer"
	"yuragi/internal/extract"
	"yuragi/internal/model"
)

// ErrUnknownGroup is returned for a generator name that is not registered.
var ErrUnknownGroup = errors.New("unknown candidate group")

// DefaultGroups are the groups an Engine produces unless configured.
var DefaultGroups = []string{model.GroupDivided, model.GroupUniqueKatakana, model.GroupCombined}

// Generator produces one named group of candidates.
type Generator interface {
	Name() string
	Generate(ctx context.Context, in *Input) ([]string, error)
}

// Input is the per-call state shared by the generators of one run. It is
// never reused across calls.
type Input struct {
	// Title is the raw title text.
	Title string
	// Normalized is Title without subtitle and series markers.
	Normalized string

	analyzer analyzer.Analyzer
	tokens   []model.Token
	analyzed bool
	raw      []model.Token
	rawDone  bool
}

// NewInput prepares the input of one generation run.
func NewInput(title, normalized string, a analyzer.Analyzer) *Input {
	return &Input{Title: title, Normalized: normalized, analyzer: a}
}

// Tokens returns the standard-dictionary tokens of the normalized title,
// analyzing on first use.
func (in *Input) Tokens(ctx context.Context) ([]model.Token, error) {
	if in.analyzed {
		return in.tokens, nil
	}
	toks, err := in.analyzer.Analyze(ctx, in.Normalized, analyzer.Standard)
	if err != nil {
		return nil, err
	}
	in.tokens, in.analyzed = toks, true
	return toks, nil
}

// RawTokens returns the standard-dictionary tokens of the raw title,
// analyzing on first use.
func (in *Input) RawTokens(ctx context.Context) ([]model.Token, error) {
	if in.rawDone {
		return in.raw, nil
	}
	toks, err := in.analyzer.Analyze(ctx, in.Title, analyzer.Standard)
	if err != nil {
		return nil, err
	}
	in.raw, in.rawDone = toks, true
	return toks, nil
}

// Analyzer returns the analyzer of this run.
func (in *Input) Analyzer() analyzer.Analyzer {
	return in.analyzer
}

// DividedGenerator splits the raw title on spaces and punctuation.
type DividedGenerator struct {
	MaxLength int
}

func (DividedGenerator) Name() string { return model.GroupDivided }

func (g DividedGenerator) Generate(_ context.Context, in *Input) ([]string, error) {
	maxLen := g.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultDividedMaxLength
	}
	return DivideTitle(in.Title, maxLen), nil
}

// UniqueKatakanaGenerator yields the lone katakana word of the normalized
// title under each dictionary configuration.
type UniqueKatakanaGenerator struct{}

func (UniqueKatakanaGenerator) Name() string { return model.GroupUniqueKatakana }

func (UniqueKatakanaGenerator) Generate(ctx context.Context, in *Input) ([]string, error) {
	return UniqueKatakana(ctx, in.analyzer, in.Normalized)
}

// CombinedGenerator pairs the head forms of content tokens.
type CombinedGenerator struct{}

func (CombinedGenerator) Name() string { return model.GroupCombined }

func (CombinedGenerator) Generate(ctx context.Context, in *Input) ([]string, error) {
	toks, err := in.Tokens(ctx)
	if err != nil {
		return nil, err
	}
	return Combine(FilterNoise(toks)), nil
}

// TokenGenerator applies a positional extractor to the unfiltered tokens of
// the raw title.
type TokenGenerator struct {
	Group   string
	Extract func([]model.Token) []string
}

func (g TokenGenerator) Name() string { return g.Group }

func (g TokenGenerator) Generate(ctx context.Context, in *Input) ([]string, error) {
	toks, err := in.RawTokens(ctx)
	if err != nil {
		return nil, err
	}
	return g.Extract(toks), nil
}

// Named builds generators for the given group names, in order. An empty
// list selects DefaultGroups.
func Named(names []string, dividedMaxLength int) ([]Generator, error) {
	if len(names) == 0 {
		names = DefaultGroups
	}
	out := make([]Generator, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		g, err := byName(name, dividedMaxLength)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func byName(name string, dividedMaxLength int) (Generator, error) {
	switch name {
	case model.GroupDivided:
		return DividedGenerator{MaxLength: dividedMaxLength}, nil
	case model.GroupUniqueKatakana:
		return UniqueKatakanaGenerator{}, nil
	case model.GroupCombined:
		return CombinedGenerator{}, nil
	case model.GroupSubject:
		return TokenGenerator{Group: name, Extract: extract.Subjects}, nil
	case model.GroupPronoun:
		return TokenGenerator{Group: name, Extract: extract.Pronouns}, nil
	case model.GroupProperNoun:
		return TokenGenerator{Group: name, Extract: extract.ProperNouns}, nil
	case model.GroupSuffix:
		return TokenGenerator{Group: name, Extract: extract.Suffixes}, nil
	case model.GroupNumber:
		return TokenGenerator{Group: name, Extract: extract.Numbers}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}
