// Package analyzer turns text into ordered morpheme tokens.
package analyzer

import (
	"context"
	"errors"
	"fmt"

	"yuragi/internal/model"
)

// Token represents a token / morpheme produced by the analyzer.
type Token = model.Token

// ErrDictionary reports an analyzer that cannot load a dictionary.
// There is no fallback dictionary, so callers must surface it.
var ErrDictionary = errors.New("analyzer: dictionary unavailable")

// Dictionary selects a dictionary configuration.
type Dictionary int

const (
	// Standard is the general vocabulary (IPA dictionary).
	Standard Dictionary = iota
	// Extended has broader coverage of proper nouns and loanwords (UniDic).
	Extended
)

// Dictionaries lists every configuration in the order extractors visit them.
var Dictionaries = []Dictionary{Standard, Extended}

func (d Dictionary) String() string {
	switch d {
	case Standard:
		return "standard"
	case Extended:
		return "extended"
	}
	return fmt.Sprintf("dictionary(%d)", int(d))
}

// ParseDictionary maps a configuration name back to a Dictionary.
func ParseDictionary(s string) (Dictionary, error) {
	switch s {
	case "standard", "ipa", "":
		return Standard, nil
	case "extended", "uni":
		return Extended, nil
	}
	return Standard, fmt.Errorf("unknown dictionary %q", s)
}

// Analyzer tokenizes text with the selected dictionary. Implementations
// must return tokens in text order and must never include sentinel or
// blank tokens.
type Analyzer interface {
	Analyze(ctx context.Context, text string, dict Dictionary) ([]Token, error)
}
