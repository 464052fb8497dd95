// Package server exposes date differences, holiday lists and holiday
// calendars over HTTP.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/config"
	"github.com/tartampluch/go-holiday/internal/datediff"
	"github.com/tartampluch/go-holiday/internal/engine"
	"github.com/tartampluch/go-holiday/internal/holiday"
	"github.com/tartampluch/go-holiday/internal/pattern"
)

// cacheItem stores a rendered response and its validator.
type cacheItem struct {
	data        []byte
	etag        string
	contentType string
}

type cacheKey struct {
	route   string
	country string
	year    int
}

type cacheMap map[cacheKey]*cacheItem

// DiffResponse is the JSON body of the diff endpoint.
type DiffResponse struct {
	Start caldate.Date `json:"start"`
	End   caldate.Date `json:"end"`
	datediff.Result
}

// HolidaysResponse is the JSON body of the holidays endpoint.
type HolidaysResponse struct {
	Country  string         `json:"country"`
	Year     int            `json:"year"`
	Easter   holiday.Easter `json:"easter"`
	Holidays holiday.List   `json:"holidays"`
}

// Server serves the HTTP API. Holiday responses are cached per country and
// year since they never change for a loaded pattern.
type Server struct {
	Addr      string
	Builder   *holiday.Builder
	Generator *engine.Generator
	Clock     caldate.Clock

	// cache is replaced copy-on-write so readers never lock.
	cache   atomic.Pointer[cacheMap]
	metrics *metrics
}

// New creates a server bound to addr.
func New(addr string, builder *holiday.Builder, gen *engine.Generator, clock caldate.Clock) *Server {
	if clock == nil {
		clock = caldate.RealClock{}
	}
	return &Server{Addr: addr, Builder: builder, Generator: gen, Clock: clock, metrics: newMetrics()}
}

// Handler returns the routing table of the API, including the Prometheus
// scrape endpoint.
func (s *Server) Handler() http.Handler {
	if s.metrics == nil {
		s.metrics = newMetrics()
	}
	mux := http.NewServeMux()
	mux.Handle(config.RouteDiff, s.metrics.instrument(config.RouteDiff, readOnly(s.handleDiff)))
	mux.Handle(config.RouteHolidays, s.metrics.instrument(config.RouteHolidays, readOnly(s.handleHolidays)))
	mux.Handle(config.RouteCalendar, s.metrics.instrument(config.RouteCalendar, readOnly(s.handleCalendar)))
	mux.Handle(config.RouteMetrics, s.metrics.handler())
	return mux
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s.Addr == "" {
		return errors.New(config.ErrAddrRequired)
	}

	srv := &http.Server{
		Addr:         s.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyAddr, s.Addr,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

func readOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set(config.HeaderAllow, config.AllowedMethods)
			http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	includeEnd, err := parseFlag(q.Get(config.QueryIncludeEnd))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	everyStarted, err := parseFlag(q.Get(config.QueryEveryStarted))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	start, err := caldate.ParseWithClock(q.Get(config.QueryStart), s.Clock)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	endValue := q.Get(config.QueryEnd)
	if endValue == "" {
		endValue = config.KeywordToday
	}
	end, err := caldate.ParseWithClock(endValue, s.Clock)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	calc := datediff.NewCalculator(start, end, datediff.Options{
		IncludeEndDay:             includeEnd,
		IncludeEveryStartedPeriod: everyStarted,
	})
	res, err := calc.Result()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	item, err := jsonItem(DiffResponse{Start: start, End: end, Result: res})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	serve(w, r, item)
}

func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	key, err := s.listKey(r, config.RouteHolidays)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	item, err := s.cached(key, func() (*cacheItem, error) {
		list, err := s.Builder.Holidays(r.Context(), key.country, key.year)
		if err != nil {
			return nil, err
		}
		return jsonItem(HolidaysResponse{
			Country:  key.country,
			Year:     key.year,
			Easter:   holiday.EasterDates(key.year),
			Holidays: list,
		})
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	serve(w, r, item)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	key, err := s.listKey(r, config.RouteCalendar)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	item, err := s.cached(key, func() (*cacheItem, error) {
		list, err := s.Builder.Holidays(r.Context(), key.country, key.year)
		if err != nil {
			return nil, err
		}
		data, err := s.Generator.Calendar(r.Context(), key.country, list)
		if err != nil {
			return nil, err
		}
		return newItem(data, config.MimeTextCalendar), nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	serve(w, r, item)
}

// listKey resolves the country path value and the year query of r.
func (s *Server) listKey(r *http.Request, route string) (cacheKey, error) {
	code, err := pattern.NormalizeCountry(r.PathValue(config.PathCountry))
	if err != nil {
		return cacheKey{}, err
	}

	year := caldate.Today(s.Clock).Year
	if v := r.URL.Query().Get(config.QueryYear); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil {
			return cacheKey{}, fmt.Errorf("%w: %q", holiday.ErrInvalidYear, v)
		}
		if year == config.CurrentYear {
			year = caldate.Today(s.Clock).Year
		}
	}
	return cacheKey{route: route, country: code, year: year}, nil
}

// cached returns the stored item for key or builds and stores it.
// Failures are not stored, nor are years outside config.CacheYearWindow,
// so the cache stays bounded by the number of known countries.
func (s *Server) cached(key cacheKey, build func() (*cacheItem, error)) (*cacheItem, error) {
	if m := s.cache.Load(); m != nil {
		if item, ok := (*m)[key]; ok {
			s.metrics.CacheHits.Inc()
			return item, nil
		}
	}

	item, err := build()
	if err != nil {
		return nil, err
	}
	if !s.cacheable(key) {
		return item, nil
	}

	for {
		old := s.cache.Load()
		next := make(cacheMap)
		if old != nil {
			for k, v := range *old {
				next[k] = v
			}
		}
		next[key] = item
		if s.cache.CompareAndSwap(old, &next) {
			s.metrics.CacheEntries.Set(float64(len(next)))
			break
		}
	}

	slog.Debug(config.MsgResponseCached,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyPath, key.route,
		config.LogKeyCountry, key.country,
		config.LogKeyYear, key.year,
		config.LogKeySizeBytes, len(item.data),
		config.LogKeyETag, item.etag,
	)
	return item, nil
}

func (s *Server) cacheable(key cacheKey) bool {
	delta := key.year - caldate.Today(s.Clock).Year
	return delta >= -config.CacheYearWindow && delta <= config.CacheYearWindow
}

func newItem(data []byte, contentType string) *cacheItem {
	hash := sha256.Sum256(data)
	return &cacheItem{
		data:        data,
		etag:        fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:])),
		contentType: contentType,
	}
}

func jsonItem(v any) (*cacheItem, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrJSONEncode, err)
	}
	return newItem(data, config.MimeJSON), nil
}

// serve writes item with validators and honours If-None-Match.
func serve(w http.ResponseWriter, r *http.Request, item *cacheItem) {
	w.Header().Set(config.HeaderContentType, item.contentType)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

// fail maps err onto a status code and writes it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	slog.Warn(config.MsgRequestFailed,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyPath, r.URL.Path,
		config.LogKeyStatus, status,
		config.LogKeyError, err,
	)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = config.HTTPMsgInternalErr
	}
	http.Error(w, msg, status)
}

// StatusFor returns the HTTP status reported for err.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, caldate.ErrDateParse),
		errors.Is(err, datediff.ErrInvalidRange),
		errors.Is(err, holiday.ErrInvalidYear),
		errors.Is(err, errInvalidFlag):
		return http.StatusBadRequest
	case errors.Is(err, pattern.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

var errInvalidFlag = errors.New(config.ErrInvalidFlag)

func parseFlag(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %q", errInvalidFlag, v)
	}
	return b, nil
}
