// Package cli implements the go-holiday command line.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/config"
	"github.com/tartampluch/go-holiday/internal/engine"
	"github.com/tartampluch/go-holiday/internal/holiday"
	"github.com/tartampluch/go-holiday/internal/i18n"
	"github.com/tartampluch/go-holiday/internal/pattern"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	clock     caldate.Clock
	logToFile bool

	// Global flags.
	configPath  string
	lang        string
	patternsDir string
	patternURL  string
	debug       bool

	settings config.Settings
	tr       *i18n.Translator
	patterns *pattern.Cache
	builder  *holiday.Builder
	gen      *engine.Generator
	out      styles
	logClose io.Closer
}

func newApp(stdout, stderr io.Writer, clock caldate.Clock) *app {
	if clock == nil {
		clock = caldate.RealClock{}
	}
	return &app{stdout: stdout, stderr: stderr, clock: clock}
}

// Execute runs the command line with os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	a := newApp(os.Stdout, os.Stderr, nil)
	a.logToFile = true
	return a.run(ctx, os.Args[1:])
}

func (a *app) run(ctx context.Context, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)

	if a.logClose != nil {
		_ = a.logClose.Close()
	}

	if err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyError, err,
		)
		_, _ = io.WriteString(a.stderr, newStyles(a.stderr).err.Render("Error: "+err.Error())+"\n")
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.BinaryName,
		Short:         "Date differences and public holiday lists",
		Long:          "go-holiday computes the calendar distance between two dates and builds\nper-country public holiday lists from fixed dates and Easter.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, config.FlagConfig, "", config.FlagDescConfig)
	pf.BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)
	pf.StringVar(&a.lang, config.FlagLang, "", config.FlagDescLang)
	pf.StringVar(&a.patternsDir, config.FlagPatterns, "", config.FlagDescPatterns)
	pf.StringVar(&a.patternURL, config.FlagPatternURL, "", config.FlagDescPatternURL)

	cmd.AddCommand(
		diffCmd(a),
		holidaysCmd(a),
		countriesCmd(a),
		serveCmd(a),
		versionCmd(a),
	)
	return cmd
}

// setup loads settings, applies flag overrides, and wires the services.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	if a.lang != "" {
		s.General.Language = a.lang
	}
	if a.patternsDir != "" {
		s.Patterns.Dir = a.patternsDir
	}
	if a.patternURL != "" {
		s.Patterns.URL = a.patternURL
	}
	a.settings = s

	a.logClose = setupLogging(a.stderr, s.LogLevel(), a.debug, a.logToFile)
	logStartupInfo(cmd.Name())

	a.tr = i18n.New(s.General.Language)
	a.patterns = pattern.NewCache(newSource(s.Patterns))
	a.builder = holiday.NewBuilder(a.patterns, a.clock)
	a.gen = &engine.Generator{Clock: a.clock, CalendarName: a.tr.CalendarName}
	a.out = newStyles(a.stdout)
	return nil
}

// newSource orders the configured sources: directory, then URL, then the
// patterns compiled into the binary.
func newSource(s config.PatternSettings) pattern.Chain {
	var chain pattern.Chain
	if s.Dir != "" {
		chain = append(chain, pattern.Dir(s.Dir))
	}
	if s.URL != "" {
		chain = append(chain, pattern.NewHTTPSource(s.URL))
	}
	return append(chain, pattern.Embedded())
}
