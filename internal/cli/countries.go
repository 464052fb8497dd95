package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-holiday/internal/config"
)

func countriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the countries with a holiday pattern",
		Long: `List the countries with a holiday pattern.

Every pattern is loaded and validated. Remote pattern URLs cannot be listed;
only the pattern directory and the built-in data are scanned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			codes, err := a.patterns.Countries(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, a.out.title.Render(a.tr.Plural(config.TKeyCountries, len(codes))))

			var failed error
			for _, code := range codes {
				p, err := a.patterns.Load(cmd.Context(), code)
				if err != nil {
					fmt.Fprintf(a.stdout, "  %s  %s\n", code, a.out.err.Render(err.Error()))
					if failed == nil {
						failed = err
					}
					continue
				}
				fmt.Fprintf(a.stdout, "  %s  %s\n", a.out.date.Render(code),
					a.out.muted.Render(fmt.Sprintf("%d fixed, %d movable", len(p.Static), len(p.Dynamic))))
			}
			return failed
		},
	}
}
