// Package i18n translates the labels printed by the CLI and the calendar name
// of generated feeds. Holiday names themselves come from pattern files and are
// never translated.
package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-holiday/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Translator resolves translation keys for one language.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	lang      string
	languages []string
}

// New loads the embedded locales and selects lang. Unknown languages fall
// back to English.
func New(lang string) *Translator {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	t := &Translator{bundle: bundle}

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}
		code := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		t.languages = append(t.languages, code)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, code,
		)
	}

	t.SetLanguage(lang)
	return t
}

// SetLanguage switches the active language.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	t.lang = lang
	t.localizer = goi18n.NewLocalizer(t.bundle, lang, config.DefaultLanguage)
}

// Language returns the requested language tag.
func (t *Translator) Language() string { return t.lang }

// Languages lists the locales found in the embedded files.
func (t *Translator) Languages() []string { return t.languages }

// Msg translates key with optional template data.
// The key itself is returned when no translation exists.
func (t *Translator) Msg(key string, data map[string]any) string {
	return t.localize(&goi18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

// Plural translates a counted key. Count is available to the template.
func (t *Translator) Plural(key string, count int) string {
	return t.localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]any{"Count": count},
		PluralCount:  count,
	})
}

// CalendarName returns the localized feed name of country.
func (t *Translator) CalendarName(country string) string {
	return t.Msg(config.TKeyCalName, map[string]any{"Country": country})
}

func (t *Translator) localize(lc *goi18n.LocalizeConfig) string {
	if t == nil || t.localizer == nil {
		return lc.MessageID
	}
	msg, err := t.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return lc.MessageID
	}
	return msg
}
