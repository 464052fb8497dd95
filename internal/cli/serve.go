package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-holiday/internal/config"
	"github.com/tartampluch/go-holiday/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve date differences and holiday calendars over HTTP",
		Long: `Serve date differences and holiday calendars over HTTP.

Routes:
  GET /diff?start=&end=&include_end_day=&every_started=
  GET /holidays/{country}?year=
  GET /calendar/{country}?year=     (text/calendar feed)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.settings.Server.Addr
			}
			srv := server.New(addr, a.builder, a.gen, a.clock)
			if err := srv.Start(cmd.Context()); err != nil {
				return err
			}
			slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompCLI)
			return nil
		},
	}

	c.Flags().StringVar(&addr, config.FlagAddr, "", config.FlagDescAddr)
	return c
}
