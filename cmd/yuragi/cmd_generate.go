package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yuragi/internal/ingest"
	"yuragi/internal/logger"
)

type generateOutput struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Candidates []string            `json:"candidates,omitempty"`
	Groups     map[string][]string `json:"groups,omitempty"`
}

func generateCmd(a *app) *cobra.Command {
	var (
		debug    bool
		combined bool
		dump     string
	)
	cmd := &cobra.Command{
		Use:   "generate TITLE...",
		Short: "Print nickname candidates for each title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}
			if dump != "" {
				if err := logger.InitLogs(dump); err != nil {
					return fmt.Errorf("init dump dir: %w", err)
				}
			}

			for _, arg := range args {
				title, err := ingest.NewTitle(arg)
				if err != nil {
					return fmt.Errorf("title %q: %w", arg, err)
				}
				out := generateOutput{ID: title.ID, Title: title.Text}

				switch {
				case combined:
					words, err := e.GenerateCombined(cmd.Context(), title.Text)
					if err != nil {
						return err
					}
					out.Candidates = words
				default:
					t := e.NewTitle(title.Text)
					if _, err := t.Generate(cmd.Context()); err != nil {
						return err
					}
					if debug || !a.cfg.Generator.Flatten {
						out.Groups = t.Groups()
					} else {
						out.Candidates = t.Candidates()
					}
				}

				if err := printJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
				if dump != "" {
					if err := logger.LogJSON(dump, title.ID, out); err != nil {
						return fmt.Errorf("dump %s: %w", title.ID, err)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "print candidates grouped by generator")
	cmd.Flags().BoolVar(&combined, "combined", false, "print only the deduplicated combined group")
	cmd.Flags().StringVar(&dump, "dump", "", "also write each result as JSON into this directory")
	return cmd
}
