package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-holiday/internal/config"
)

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Printing the version needs neither settings nor logging.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.stdout, config.MsgVersionOutput,
				config.AppName,
				config.Version,
				config.Commit,
				config.Date,
				runtime.GOOS,
				runtime.GOARCH,
			)
		},
	}
}
