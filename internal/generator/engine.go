package generator

import (
	"context"
	"fmt"
	"log/slog"

	"yuragi/internal/analyzer"
	"yuragi/internal/model"
	"yuragi/internal/normalize"
)

// Engine generates nickname candidates for titles. It holds no per-title
// state and is safe for concurrent use when its analyzer is.
type Engine struct {
	analyzer   analyzer.Analyzer
	normalizer *normalize.Normalizer
	generators []Generator
	minLength  int
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithGenerators replaces the default generators.
func WithGenerators(gens ...Generator) Option {
	return func(e *Engine) {
		e.generators = gens
	}
}

// WithNormalizer replaces the default normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(e *Engine) {
		if n != nil {
			e.normalizer = n
		}
	}
}

// WithMinLength sets the shortest candidate kept.
func WithMinLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minLength = n
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine returns an engine producing the divided, unique_katakana and
// combined groups.
func NewEngine(a analyzer.Analyzer, opts ...Option) *Engine {
	e := &Engine{
		analyzer:   a,
		normalizer: normalize.New(),
		generators: []Generator{
			DividedGenerator{MaxLength: DefaultDividedMaxLength},
			UniqueKatakanaGenerator{},
			CombinedGenerator{},
		},
		minLength: DefaultMinLength,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Groups lists the group names the engine produces, in order.
func (e *Engine) Groups() []string {
	names := make([]string, 0, len(e.generators))
	for _, g := range e.generators {
		names = append(names, g.Name())
	}
	return names
}

// Generate runs every generator over title and applies the length floor.
// Linguistically empty titles give empty groups; only analyzer failures
// are returned as errors.
func (e *Engine) Generate(ctx context.Context, title string) (model.CandidateSet, error) {
	in := NewInput(title, e.normalizer.Clean(title), e.analyzer)

	groups := make([]model.CandidateGroup, 0, len(e.generators))
	for _, g := range e.generators {
		words, err := g.Generate(ctx, in)
		if err != nil {
			return model.CandidateSet{}, fmt.Errorf("generate %s: %w", g.Name(), err)
		}
		groups = append(groups, model.CandidateGroup{Name: g.Name(), Words: words})
	}

	set := Aggregate(groups, e.minLength)
	e.logger.Debug("nicknames_generated",
		slog.String("title", title),
		slog.String("normalized", in.Normalized),
		slog.Int("candidates", len(set.Flatten())),
	)
	return set, nil
}

// GenerateCombined returns only the combined group, deduplicated and
// length-filtered.
func (e *Engine) GenerateCombined(ctx context.Context, title string) ([]string, error) {
	in := NewInput(title, e.normalizer.Clean(title), e.analyzer)
	toks, err := in.Tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", model.GroupCombined, err)
	}
	return FilterShort(CombineUnique(FilterNoise(toks)), e.minLength), nil
}

// Title binds a title to an engine and keeps the last generated result.
type Title struct {
	engine *Engine
	text   string
	result model.CandidateSet
}

// NewTitle prepares text for generation.
func (e *Engine) NewTitle(text string) *Title {
	return &Title{engine: e, text: text}
}

// Text returns the raw title.
func (t *Title) Text() string { return t.text }

// Generate computes and stores the candidates, replacing any earlier result.
func (t *Title) Generate(ctx context.Context) (model.CandidateSet, error) {
	set, err := t.engine.Generate(ctx, t.text)
	if err != nil {
		return model.CandidateSet{}, err
	}
	t.result = set
	return set, nil
}

// Groups returns group name -> candidates. Before Generate it is empty.
func (t *Title) Groups() map[string][]string {
	return t.result.Map()
}

// Candidates returns every candidate once. Before Generate it is empty.
func (t *Title) Candidates() []string {
	return t.result.Flatten()
}
