package main

import (
	"github.com/spf13/cobra"
)

func lookupCmd(a *app) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "lookup ALIAS",
		Short: "Print the titles an alias was generated for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			matches, err := st.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), matches)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "alias database path (default from config)")
	return cmd
}
