package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flemzord/chatwrapped/internal/archive"
	"github.com/flemzord/chatwrapped/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <archive>",
		Short: "Serve wrapped statistics over a local HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Serve.Addr = addr
			}

			files, err := archive.Open(args[0])
			if err != nil {
				return err
			}

			srv := server.New(logger, cfg, files)
			if err := srv.Start(); err != nil {
				return err
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			return srv.Stop(context.Background())
		},
	}
	cmd.Flags().String("addr", "", "Listen address (overrides configuration)")
	return cmd
}
