package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used by remote pattern sources.
var UserAgent = "Go-Holiday/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go Holiday"
	AppID          = "com.github.tartampluch.go-holiday"
	BinaryName     = "go-holiday"
	LogFileName    = "app.log"
	SettingsFile   = "go-holiday.toml"
	DefaultAddr    = "127.0.0.1:18081"
	DefaultCountry = "CZ"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig        = "config"
	FlagDebug         = "debug"
	FlagLang          = "lang"
	FlagPatterns      = "patterns"
	FlagPatternURL    = "pattern-url"
	FlagYear          = "year"
	FlagFormat        = "format"
	FlagAddr          = "addr"
	FlagIncludeEndDay = "include-end-day"
	FlagEveryStarted  = "every-started"

	FlagDescConfig        = "Path to a TOML settings file"
	FlagDescDebug         = "Enable debug logging"
	FlagDescLang          = "Language of the labels (en, fr, cs)"
	FlagDescPatterns      = "Directory with additional <CC>.yaml holiday patterns"
	FlagDescPatternURL    = "Base URL serving <CC>.yaml holiday patterns"
	FlagDescYear          = "Year of the holiday list (0 = current year)"
	FlagDescFormat        = "Output format: text, json or ics"
	FlagDescAddr          = "Listen address of the HTTP server"
	FlagDescIncludeEndDay = "Count the end day itself as elapsed time"
	FlagDescEveryStarted  = "Count every started month or year as a full one"

	MsgVersionOutput = "%s version %s (%s, %s) %s/%s\n"
)

// Output formats of the holidays command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatICS  = "ics"
)

// SupportedLanguages lists the label languages shipped in internal/i18n (ISO 639-1).
var SupportedLanguages = []string{"en", "fr", "cs"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyDiffTitle     = "diff_title"      // Requires Start, End
	TKeyDiffDays      = "diff_days"       // Requires Count
	TKeyDiffMonths    = "diff_months"     // Requires Count
	TKeyDiffYears     = "diff_years"      // Requires Count
	TKeyHolidaysTitle = "holidays_title"  // Requires Country, Year
	TKeyHolidaysEmpty = "holidays_empty"  // Requires Country, Year
	TKeyCountries     = "countries_title" // Requires Count
	TKeyEasterTitle   = "easter_title"    // Requires Year
	TKeyCalName       = "calendar_name"   // Requires Country
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	DefaultLogLevel = "info"
	UIDNamespace    = "go-holiday-v1" // Namespace seed for deterministic event UIDs
	CurrentYear     = 0
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Holiday//Engine//EN"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goholiday"
	ICalTransp  = "TRANSPARENT"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTEnd      = "DTEND"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"
	PropTransp     = "TRANSP"
	PropCategories = "CATEGORIES"

	ICalCategory       = "Holiday"
	DefaultICalRefresh = 24 * time.Hour

	// FormatUID expects the hashed base, the date and the domain.
	FormatUID = "%s-%s@%s"

	// StubVCalendar is the minimal valid iCalendar object used when a list is empty.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats & Patterns
// -----------------------------------------------------------------------------

const (
	DateFormatISO      = "2006-01-02"
	DateFormatBasic    = "20060102"
	DateFormatDateTime = "2006-01-02T15:04:05"
	DateFormatSpaced   = "2006-01-02 15:04:05"
	DateFormatRFC3339  = time.RFC3339
	DateFormatDotted   = "02.01.2006"
	DateFormatDottedS  = "2.1.2006"
	MonthDayFormat     = "01-02"

	KeywordToday     = "today"
	KeywordYesterday = "yesterday"
	KeywordTomorrow  = "tomorrow"

	PatternExt     = ".yaml"
	PatternDataDir = "data"
	CountryPattern = `^[A-Z]{2}$`
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 1 * 1024 * 1024 // 1MB, patterns are tiny
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"

	RouteDiff     = "/diff"
	RouteHolidays = "/holidays/{country}"
	RouteCalendar = "/calendar/{country}"
	RouteMetrics  = "/metrics"

	// CacheYearWindow bounds the years, around the current one, whose
	// responses are kept in memory.
	CacheYearWindow = 10
	PathCountry   = "country"

	QueryStart        = "start"
	QueryEnd          = "end"
	QueryYear         = "year"
	QueryIncludeEnd   = "include_end_day"
	QueryEveryStarted = "every_started"

	MetricsNamespace = "go_holiday"
	MetricsSubsystem = "http"
	MetricLabelRoute = "route"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderAllow        = "Allow"
	HeaderXContentType = "X-Content-Type-Options"
	HeaderUserAgent    = "User-Agent"
	HeaderIfNoneMatch  = "If-None-Match"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidRange    = "start date is after end date"
	ErrDateParse       = "unable to parse date"
	ErrPatternNotFound = "holiday pattern not found"
	ErrPatternFormat   = "holiday pattern has bad format"
	ErrPatternDecode   = "failed to decode holiday pattern"
	ErrPatternRead     = "failed to read holiday pattern"
	ErrSettingsDecode  = "failed to decode settings file"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrAddrRequired    = "server address is required"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrJSONEncode      = "failed to encode JSON response"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrWriteResp       = "failed to write response body"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrUnknownFormat   = "unknown output format"
	ErrInvalidYear     = "invalid year"
	ErrInvalidFlag     = "invalid boolean parameter"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgResponseCached = "Response cached"
	MsgPatternLoaded  = "Holiday pattern loaded"
	MsgPatternCached  = "Holiday pattern served from cache"
	MsgPatternMissing = "Holiday pattern not available"
	MsgPatternFetch   = "Fetching holiday pattern"
	MsgListBuilt      = "Holiday list built"
	MsgDiffComputed   = "Date difference computed"
	MsgCalendarBuilt  = "Calendar generation successful"
	MsgSettingsLoaded = "Settings loaded"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgRequestFailed  = "Request failed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyAddr      = "addr"
	LogKeyCountry   = "country"
	LogKeyYear      = "year"
	LogKeyStart     = "start"
	LogKeyEnd       = "end"
	LogKeyDays      = "days"
	LogKeyMonths    = "months"
	LogKeyYears     = "years"
	LogKeyStatic    = "static"
	LogKeyDynamic   = "dynamic"
	LogKeyCount     = "count"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeySource    = "source"
	LogKeyPath      = "path"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompCLI      = "cli"
	CompDiff     = "datediff"
	CompHoliday  = "holiday"
	CompPattern  = "pattern"
	CompEngine   = "engine"
	CompServer   = "server"
	CompI18n     = "i18n"
	CompSettings = "settings"
)
