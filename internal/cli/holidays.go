package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/config"
	"github.com/tartampluch/go-holiday/internal/holiday"
	"github.com/tartampluch/go-holiday/internal/pattern"
)

type holidaysOutput struct {
	Country  string         `json:"country"`
	Year     int            `json:"year"`
	Easter   holiday.Easter `json:"easter"`
	Holidays holiday.List   `json:"holidays"`
}

func holidaysCmd(a *app) *cobra.Command {
	var year int
	var format string

	c := &cobra.Command{
		Use:   "holidays [COUNTRY]",
		Short: "List the public holidays of a country",
		Long: `List the public holidays of a country for one year.

COUNTRY is a two-letter code such as CZ. It defaults to the country of the
settings file. A year of 0 selects the current year.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			country := a.settings.Holidays.Country
			if len(args) == 1 {
				country = args[0]
			}

			switch format {
			case config.FormatText, config.FormatJSON, config.FormatICS:
			default:
				return fmt.Errorf("%s: %q", config.ErrUnknownFormat, format)
			}

			code, err := pattern.NormalizeCountry(country)
			if err != nil {
				return err
			}
			if year == config.CurrentYear {
				year = caldate.Today(a.clock).Year
			}

			list, err := a.builder.Holidays(cmd.Context(), code, year)
			if err != nil {
				return err
			}

			switch format {
			case config.FormatJSON:
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(holidaysOutput{Country: code, Year: year, Easter: holiday.EasterDates(year), Holidays: list}); err != nil {
					return fmt.Errorf("%s: %w", config.ErrJSONEncode, err)
				}
			case config.FormatICS:
				data, err := a.gen.Calendar(cmd.Context(), code, list)
				if err != nil {
					return err
				}
				if _, err := a.stdout.Write(data); err != nil {
					return err
				}
			default:
				a.printHolidays(code, year, list)
			}
			return nil
		},
	}

	c.Flags().IntVar(&year, config.FlagYear, config.CurrentYear, config.FlagDescYear)
	c.Flags().StringVar(&format, config.FlagFormat, config.FormatText, config.FlagDescFormat)
	return c
}

func (a *app) printHolidays(code string, year int, list holiday.List) {
	data := map[string]any{"Country": code, "Year": year}
	if len(list) == 0 {
		fmt.Fprintln(a.stdout, a.out.muted.Render(a.tr.Msg(config.TKeyHolidaysEmpty, data)))
		return
	}

	fmt.Fprintln(a.stdout, a.out.title.Render(a.tr.Msg(config.TKeyHolidaysTitle, data)))
	for _, e := range list {
		fmt.Fprintf(a.stdout, "  %s  %s\n", a.out.date.Render(e.Date.String()), e.Name)
	}
}
