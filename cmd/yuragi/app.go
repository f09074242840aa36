package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"yuragi/internal/analyzer"
	"yuragi/internal/config"
	"yuragi/internal/generator"
	"yuragi/internal/logger"
	"yuragi/internal/normalize"
	"yuragi/internal/store"
)

// app carries what the subcommands share. analyzer is set up lazily so
// commands that never tokenize do not load a dictionary.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	analyzer   analyzer.Analyzer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "yuragi",
		Short:         "Generate nickname candidates for Japanese titles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file or directory containing yuragi.yaml")

	root.AddCommand(
		generateCmd(a),
		tokensCmd(a),
		indexCmd(a),
		lookupCmd(a),
		serveCmd(a),
	)
	return root
}

func (a *app) load(logOut io.Writer) error {
	_ = godotenv.Load()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	l, err := logger.NewWithWriter(logOut, cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, l
	return nil
}

func (a *app) getAnalyzer() analyzer.Analyzer {
	if a.analyzer == nil {
		a.analyzer = analyzer.NewKagome(analyzer.WithLogger(a.logger))
	}
	return a.analyzer
}

func (a *app) engine() (*generator.Engine, error) {
	return newEngine(a.cfg.Generator, a.getAnalyzer(), a.logger)
}

func (a *app) openStore(path string) (*store.Store, error) {
	if path == "" {
		path = a.cfg.Store.Path
	}
	return store.Open(path)
}

func newEngine(cfg config.GeneratorConfig, an analyzer.Analyzer, l *slog.Logger) (*generator.Engine, error) {
	gens, err := generator.Named(cfg.Groups, cfg.DividedMaxLength)
	if err != nil {
		return nil, err
	}
	n := normalize.New(
		normalize.WithSubtitleDelimiters(cfg.SubtitleDelimiters...),
		normalize.WithSeriesMarkers(cfg.SeriesMarkers...),
	)
	return generator.NewEngine(an,
		generator.WithGenerators(gens...),
		generator.WithNormalizer(n),
		generator.WithMinLength(cfg.MinLength),
		generator.WithLogger(l),
	), nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
