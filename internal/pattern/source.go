package pattern

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/tartampluch/go-holiday/internal/config"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Source resolves the pattern of a country. Implementations return an error
// matching ErrNotFound when they have no pattern for the code.
type Source interface {
	Load(ctx context.Context, country string) (*Pattern, error)
}

// Lister is implemented by sources that can enumerate their countries.
type Lister interface {
	Countries(ctx context.Context) ([]string, error)
}

// FSSource reads <CC>.yaml files from a directory of an fs.FS.
type FSSource struct {
	FS   fs.FS
	Dir  string
	Name string // Used in logs only.
}

// Embedded returns the source backed by the patterns compiled into the binary.
func Embedded() *FSSource {
	return &FSSource{FS: dataFS, Dir: config.PatternDataDir, Name: "embedded"}
}

// Dir returns a source reading pattern files from a directory on disk.
func Dir(dir string) *FSSource {
	return &FSSource{FS: os.DirFS(dir), Dir: ".", Name: dir}
}

// Load implements Source.
func (s *FSSource) Load(_ context.Context, country string) (*Pattern, error) {
	code, err := NormalizeCountry(country)
	if err != nil {
		return nil, err
	}

	file := path.Join(s.Dir, code+config.PatternExt)
	data, err := fs.ReadFile(s.FS, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Country: code}
		}
		return nil, fmt.Errorf("%s %s: %w", config.ErrPatternRead, file, err)
	}

	p, err := Decode(code, data)
	if err != nil {
		return nil, err
	}
	slog.Debug(config.MsgPatternLoaded,
		config.LogKeyComponent, config.CompPattern,
		config.LogKeySource, s.Name,
		config.LogKeyCountry, code,
		config.LogKeyStatic, len(p.Static),
		config.LogKeyDynamic, len(p.Dynamic),
	)
	return p, nil
}

// Countries implements Lister. Only files named like a country code count.
func (s *FSSource) Countries(_ context.Context) ([]string, error) {
	entries, err := fs.ReadDir(s.FS, s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s: %w", config.ErrPatternRead, s.Dir, err)
	}

	var codes []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, config.PatternExt) {
			continue
		}
		code := strings.TrimSuffix(name, config.PatternExt)
		if countryRe.MatchString(code) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes, nil
}

// Chain consults its sources in order and returns the first pattern found.
// A source failing with anything other than ErrNotFound stops the search.
type Chain []Source

// Load implements Source.
func (c Chain) Load(ctx context.Context, country string) (*Pattern, error) {
	code, err := NormalizeCountry(country)
	if err != nil {
		return nil, err
	}
	for _, src := range c {
		p, err := src.Load(ctx, code)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, &NotFoundError{Country: code}
}

// Countries implements Lister by merging every listing source.
func (c Chain) Countries(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var codes []string
	for _, src := range c {
		l, ok := src.(Lister)
		if !ok {
			continue
		}
		list, err := l.Countries(ctx)
		if err != nil {
			return nil, err
		}
		for _, code := range list {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	sort.Strings(codes)
	return codes, nil
}
