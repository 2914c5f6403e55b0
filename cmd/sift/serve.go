package main

import (
	"github.com/Veraticus/sift/internal/common"
	"github.com/Veraticus/sift/internal/config"
	"github.com/Veraticus/sift/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [PATH...]",
		Short: "Serve the organizer HTTP API",
		Long: `Start the HTTP API used by the browser UI. Files under the optional paths are
organized before the server starts accepting requests.

Metrics are exposed on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			org, err := newOrganizer(cfg)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				report, err := ingest(cmd.Context(), org, args, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				common.LogInfo("Preloaded files", common.Fields{
					"added":  len(report.Added),
					"failed": len(report.Failed),
				})
			}

			srv := server.New(org, server.Config{
				Addr:           cfg.Server.Addr,
				AllowedOrigins: cfg.Server.AllowedOrigins,
				MaxUploadBytes: cfg.Server.MaxUploadBytes,
				ReadTimeout:    server.DefaultConfig().ReadTimeout,
				WriteTimeout:   server.DefaultConfig().WriteTimeout,
				Debug:          cfg.Logging.Level == "debug",
			})
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().String("addr", config.DefaultConfig().Server.Addr, "listen address")
	_ = viper.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))

	return cmd
}
