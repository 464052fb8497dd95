package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/config"
	"github.com/tartampluch/go-holiday/internal/datediff"
)

func diffCmd(a *app) *cobra.Command {
	var opts datediff.Options

	c := &cobra.Command{
		Use:   "diff START [END]",
		Short: "Show the days, months and years between two dates",
		Long: `Show the days, months and years between two dates.

Dates accept YYYY-MM-DD, YYYYMMDD, DD.MM.YYYY, RFC 3339 and the keywords
today, yesterday and tomorrow. END defaults to today.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			end := config.KeywordToday
			if len(args) == 2 {
				end = args[1]
			}

			s, err := caldate.ParseWithClock(args[0], a.clock)
			if err != nil {
				return err
			}
			e, err := caldate.ParseWithClock(end, a.clock)
			if err != nil {
				return err
			}

			res, err := datediff.NewCalculator(s, e, opts).Result()
			if err != nil {
				return err
			}
			a.printDiff(s, e, res)
			return nil
		},
	}

	c.Flags().BoolVar(&opts.IncludeEndDay, config.FlagIncludeEndDay, false, config.FlagDescIncludeEndDay)
	c.Flags().BoolVar(&opts.IncludeEveryStartedPeriod, config.FlagEveryStarted, false, config.FlagDescEveryStarted)
	return c
}

func (a *app) printDiff(start, end caldate.Date, res datediff.Result) {
	title := a.tr.Msg(config.TKeyDiffTitle, map[string]any{"Start": start.String(), "End": end.String()})
	fmt.Fprintln(a.stdout, a.out.title.Render(title))
	fmt.Fprintf(a.stdout, "  %s\n", a.tr.Plural(config.TKeyDiffDays, res.Days))
	fmt.Fprintf(a.stdout, "  %s\n", a.tr.Plural(config.TKeyDiffMonths, res.Months))
	fmt.Fprintf(a.stdout, "  %s\n", a.tr.Plural(config.TKeyDiffYears, res.Years))
}
