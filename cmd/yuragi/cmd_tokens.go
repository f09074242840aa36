package main

import (
	"github.com/spf13/cobra"

	"yuragi/internal/analyzer"
)

func tokensCmd(a *app) *cobra.Command {
	var (
		extended bool
		merge    bool
	)
	cmd := &cobra.Command{
		Use:   "tokens TITLE",
		Short: "Print the morphological analysis of a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := analyzer.Standard
			if extended {
				d = analyzer.Extended
			}
			toks, err := a.getAnalyzer().Analyze(cmd.Context(), args[0], d)
			if err != nil {
				return err
			}
			if merge {
				return printJSON(cmd.OutOrStdout(), analyzer.MergeInflections(toks))
			}
			return printJSON(cmd.OutOrStdout(), toks)
		},
	}
	cmd.Flags().BoolVar(&extended, "extended", false, "use the extended dictionary")
	cmd.Flags().BoolVar(&merge, "merge", false, "join verbs with their auxiliaries")
	return cmd
}
