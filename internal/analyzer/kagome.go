package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Loader returns a dictionary. A nil result means the dictionary is missing.
type Loader func() *dict.Dict

// Kagome is an Analyzer backed by the kagome tokenizer. Dictionaries are
// loaded on first use; a load failure sticks and is never retried.
type Kagome struct {
	logger *slog.Logger
	slots  map[Dictionary]*slot
}

type slot struct {
	load Loader
	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

// Option configures a Kagome analyzer.
type Option func(*Kagome)

// WithLoader replaces the loader of one dictionary configuration.
func WithLoader(d Dictionary, load Loader) Option {
	return func(k *Kagome) {
		k.slots[d] = &slot{load: load}
	}
}

// WithLogger sets the logger used for dictionary loading.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kagome) {
		if l != nil {
			k.logger = l
		}
	}
}

// NewKagome returns an analyzer using the IPA dictionary as the standard
// vocabulary and UniDic as the extended one.
func NewKagome(opts ...Option) *Kagome {
	k := &Kagome{
		logger: slog.Default(),
		slots: map[Dictionary]*slot{
			Standard: {load: ipa.Dict},
			Extended: {load: uni.Dict},
		},
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Warm loads every dictionary up front so misconfiguration shows at startup.
func (k *Kagome) Warm() error {
	for _, d := range Dictionaries {
		if _, err := k.tokenizer(d); err != nil {
			return err
		}
	}
	return nil
}

// Analyze tokenizes text in normal mode with the selected dictionary.
func (k *Kagome) Analyze(ctx context.Context, text string, d Dictionary) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := k.tokenizer(d)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return []Token{}, nil
	}
	return convertKagomeTokens(t.Tokenize(text)), nil
}

func (k *Kagome) tokenizer(d Dictionary) (*tokenizer.Tokenizer, error) {
	s, ok := k.slots[d]
	if !ok {
		return nil, fmt.Errorf("%w: %s not configured", ErrDictionary, d)
	}
	s.once.Do(func() {
		s.tok, s.err = newTokenizer(s.load)
		if s.err != nil {
			s.err = fmt.Errorf("%w: %s: %v", ErrDictionary, d, s.err)
			k.logger.Error("dictionary_load_failed", slog.String("dictionary", d.String()), slog.Any("error", s.err))
			return
		}
		k.logger.Debug("dictionary_loaded", slog.String("dictionary", d.String()))
	})
	return s.tok, s.err
}

func newTokenizer(load Loader) (tok *tokenizer.Tokenizer, err error) {
	if load == nil {
		return nil, fmt.Errorf("no loader")
	}
	// the embedded dictionaries panic when their archive cannot be read
	defer func() {
		if r := recover(); r != nil {
			tok, err = nil, fmt.Errorf("load panicked: %v", r)
		}
	}()
	d := load()
	if d == nil {
		return nil, fmt.Errorf("empty dictionary")
	}
	return tokenizer.New(d, tokenizer.OmitBosEos())
}

func convertKagomeTokens(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY || strings.TrimSpace(kt.Surface) == "" {
			continue
		}
		t := Token{
			Surface: kt.Surface,
			Start:   kt.Start,
			End:     kt.End,
		}
		pos := kt.POS()
		for i, p := range pos {
			switch i {
			case 0:
				t.POS = p
			case 1:
				t.POS1 = p
			case 2:
				t.POS2 = p
			case 3:
				t.POS3 = p
			}
		}
		t.ConjugationType, _ = kt.InflectionalType()
		t.ConjugationForm, _ = kt.InflectionalForm()
		lemma, _ := kt.BaseForm()
		if lemma == "" || lemma == placeholder {
			lemma = kt.Surface
		}
		t.Lemma = lemma
		if len(kt.Features()) >= minReadingFeatures {
			if r, ok := kt.Reading(); ok && r != placeholder {
				t.Reading = r
			}
			if p, ok := kt.Pronunciation(); ok && p != placeholder {
				t.Pronunciation = p
			}
			// UniDic exposes no reading through kagome, only the pronunciation
			if t.Reading == "" {
				t.Reading = t.Pronunciation
			}
		}
		out = append(out, t)
	}
	return out
}
