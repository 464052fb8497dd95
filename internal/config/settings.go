package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings holds the runtime configuration read from an optional TOML file.
// Command-line flags take precedence over values found here.
type Settings struct {
	General  GeneralSettings `toml:"general"`
	Patterns PatternSettings `toml:"patterns"`
	Server   ServerSettings  `toml:"server"`
	Holidays HolidaySettings `toml:"holidays"`
}

// GeneralSettings holds language and logging preferences.
type GeneralSettings struct {
	Language string `toml:"language"`
	LogLevel string `toml:"log_level"`
}

// PatternSettings configures additional pattern sources consulted before the embedded data.
type PatternSettings struct {
	Dir string `toml:"dir"`
	URL string `toml:"url"`
}

// ServerSettings configures the HTTP front end.
type ServerSettings struct {
	Addr string `toml:"addr"`
}

// HolidaySettings holds defaults for the holidays command.
type HolidaySettings struct {
	Country string `toml:"country"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	s := Settings{}
	s.applyDefaults()
	return s
}

// LoadSettings reads a TOML settings file. A missing file is not an error:
// the defaults are returned instead.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return DefaultSettings(), nil
	}

	path = os.ExpandEnv(path)
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsDecode, err)
	}

	s.applyDefaults()
	slog.Debug(MsgSettingsLoaded,
		LogKeyComponent, CompSettings,
		LogKeyPath, path,
	)
	return s, nil
}

// DecodeSettings parses settings from TOML text.
func DecodeSettings(data string) (Settings, error) {
	var s Settings
	if _, err := toml.Decode(data, &s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsDecode, err)
	}
	s.applyDefaults()
	return s, nil
}

// LogLevel maps the textual log level to a slog level. Unknown values fall back to Info.
func (s Settings) LogLevel() slog.Level {
	switch strings.ToLower(s.General.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *Settings) applyDefaults() {
	if s.General.Language == "" {
		s.General.Language = DefaultLanguage
	}
	if s.General.LogLevel == "" {
		s.General.LogLevel = DefaultLogLevel
	}
	if s.Server.Addr == "" {
		s.Server.Addr = DefaultAddr
	}
	if s.Holidays.Country == "" {
		s.Holidays.Country = DefaultCountry
	}
}
