package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"yuragi/internal/ingest"
)

func indexCmd(a *app) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "index FILE",
		Short: "Generate candidates for every title in FILE and store them as aliases",
		Long:  "FILE holds one title per line; blank lines and lines starting with # are skipped. Use - for stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			titles, err := ingest.ReadTitles(r)
			if err != nil {
				return err
			}

			e, err := a.engine()
			if err != nil {
				return err
			}
			st, err := a.openStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			var aliases int
			p := ingest.NewPipeline(e, a.cfg.Ingest.Workers, a.cfg.Ingest.Buffer)
			err = p.Run(cmd.Context(), titles, func(res ingest.Result) error {
				n, err := st.Save(cmd.Context(), res.Title, res.Candidates)
				if err != nil {
					return err
				}
				aliases += n
				a.logger.Debug("title_indexed", slog.String("title", res.Title.Text), slog.Int("aliases", n))
				return nil
			})
			if err != nil {
				return err
			}

			a.logger.Info("index_complete", slog.Int("titles", len(titles)), slog.Int("aliases", aliases))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "indexed %d titles, %d aliases\n", len(titles), aliases)
			return err
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "alias database path (default from config)")
	return cmd
}
