package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-numfmt/internal/httpapi"
	"github.com/goliatone/go-numfmt/internal/httpserver"
)

func (a *app) newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the formatting HTTP API",
		Long: `Serve the formatting HTTP API until interrupted.

Configuration is read from NUMFMT_ environment variables (and a .env file in
the working directory). --addr overrides NUMFMT_ADDR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			formatter, err := newFormatter(cfg)
			if err != nil {
				return err
			}

			logger.WithField("locales", formatter.Locales()).
				WithField("locale_file", cfg.LocaleFile).
				Debug("formatter ready")

			srv := httpserver.New(
				httpserver.WithAddr(cfg.HTTP.Addr),
				httpserver.WithTimeouts(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.IdleTimeout),
				httpserver.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
				httpserver.WithLogger(logger),
			)

			return srv.Run(cmd.Context(), httpapi.New(formatter, logger, httpapi.WithAllowedOrigins(cfg.HTTP.CORSOrigins()...)).Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default :8003)")

	return cmd
}
