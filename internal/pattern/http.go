package pattern

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tartampluch/go-holiday/internal/config"
)

// HTTPSource downloads <BaseURL>/<CC>.yaml pattern files.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource creates a source with the configured timeout. The base URL is
// validated on each load, not here.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// Load implements Source. A 404 response is reported as ErrNotFound.
func (s *HTTPSource) Load(ctx context.Context, country string) (*Pattern, error) {
	code, err := NormalizeCountry(country)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}
	u = u.JoinPath(code + config.PatternExt)

	// Query parameters may carry tokens; keep them out of the logs.
	safeURL := u.Scheme + "://" + u.Host + u.Path
	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompPattern),
		slog.String(config.LogKeyURL, safeURL),
	)
	log.Debug(config.MsgPatternFetch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error during fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Country: code, Err: fmt.Errorf("GET %s: %s", safeURL, resp.Status)}
	}
	if resp.StatusCode != http.StatusOK {
		log.Warn("Server returned error status",
			slog.Int(config.LogKeyStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("server returned unexpected status: %d %s", resp.StatusCode, strings.TrimSpace(resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxHTTPResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPatternRead, err)
	}

	return Decode(code, data)
}
