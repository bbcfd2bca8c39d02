package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-go/folio/internal/config"
	"github.com/vango-go/folio/internal/dev"
)

func serveCmd() *cobra.Command {
	var port int
	var host string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development server with live reload",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadOrDefault(cwd)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Port = port
			}
			if host != "" {
				cfg.Host = host
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			info("serving on http://%s", cfg.Addr())
			return dev.NewServer(cfg, logger).Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "override the configured port")
	cmd.Flags().StringVar(&host, "host", "", "override the configured host")
	return cmd
}
