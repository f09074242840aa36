package generator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"yuragi/internal/analyzer"
	"yuragi/internal/kana"
	"yuragi/internal/model"
)

// UniqueKatakana tokenizes text with every dictionary configuration and,
// per configuration, yields the katakana-only token when it is the only
// one. Two or more katakana words dilute the signal, so they yield nothing.
// The result holds at most one entry per configuration, in configuration
// order; entries may coincide.
func UniqueKatakana(ctx context.Context, a analyzer.Analyzer, text string) ([]string, error) {
	found := make([][]string, len(analyzer.Dictionaries))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range analyzer.Dictionaries {
		g.Go(func() error {
			toks, err := a.Analyze(gctx, text, d)
			if err != nil {
				return fmt.Errorf("analyze with %s dictionary: %w", d, err)
			}
			found[i] = katakanaWords(toks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(found))
	for _, words := range found {
		if len(words) == 1 {
			out = append(out, words[0])
		}
	}
	return out, nil
}

func katakanaWords(tokens []model.Token) []string {
	var words []string
	for _, t := range tokens {
		if kana.IsKatakanaWord(t.Surface) {
			words = append(words, t.Surface)
		}
	}
	return words
}
