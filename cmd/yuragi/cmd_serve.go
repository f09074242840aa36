package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"yuragi/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			// fail before listening if a dictionary cannot be loaded
			if w, ok := a.getAnalyzer().(interface{ Warm() error }); ok {
				if err := w.Warm(); err != nil {
					return err
				}
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			st, err := a.openStore("")
			if err != nil {
				return err
			}
			defer st.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(e, st, a.logger).Run(ctx, addr, a.cfg.Server.Mode)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
