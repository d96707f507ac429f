package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL       = "localhost:8081"
	defaultAuthSecret    = "dev-secret-key"
	defaultPhotoMaxMB    = 10
	defaultHTTPTimeout   = 10 * time.Second
	defaultSMHIURL       = "https://opendata-download-metfcst.smhi.se"
	defaultOWMURL        = "https://api.openweathermap.org"
	defaultOverpassURL   = "https://overpass-api.de/api/interpreter"
	defaultClientDBFile  = "fishlog.db"
	defaultServerDBFile  = "fishlog-server.db"
	defaultPublicPageLen = 100
)

type Config struct {
	// Server-side settings
	DatabaseDSN    string `env:"DATABASE_URI"`
	AuthSecret     string `env:"AUTH_SECRET"`
	PhotoMaxSizeMB int    `env:"PHOTO_MAX_MB"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL     string        `env:"-"`
	UseRemote     bool          `env:"USE_REMOTE"` // удалённый бэкенд сконфигурирован
	ClientDBPath  string        `env:"CLIENT_DB_PATH"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT"`
	PublicPageLen int           `env:"PUBLIC_PAGE_LEN"`
	Version       bool          `env:"-"` // show client version and exit (flag only)

	// Внешние сервисы (погода, геоданные)
	SMHIURL           string `env:"SMHI_URL"`
	OpenWeatherMapURL string `env:"OWM_URL"`
	OpenWeatherMapKey string `env:"OPENWEATHERMAP_API_KEY"`
	OverpassURL       string `env:"OVERPASS_URL"`
}

// RemoteConfigured сообщает, включён ли удалённый бэкенд для клиента.
func (c *Config) RemoteConfigured() bool {
	return c != nil && c.UseRemote && c.ServerURL != ""
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.IntVar(&cfg.PhotoMaxSizeMB, "photo-max-mb", cfg.PhotoMaxSizeMB, "максимальный размер фото, МБ")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the FishLog server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.BoolVar(&cfg.UseRemote, "remote", cfg.UseRemote, "use the remote backend instead of local storage")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP client timeout")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	applyDefaults(cfg)
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func applyDefaults(cfg *Config) {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if cfg.PhotoMaxSizeMB <= 0 {
		cfg.PhotoMaxSizeMB = defaultPhotoMaxMB
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.PublicPageLen <= 0 {
		cfg.PublicPageLen = defaultPublicPageLen
	}
	if cfg.SMHIURL == "" {
		cfg.SMHIURL = defaultSMHIURL
	}
	if cfg.OpenWeatherMapURL == "" {
		cfg.OpenWeatherMapURL = defaultOWMURL
	}
	if cfg.OverpassURL == "" {
		cfg.OverpassURL = defaultOverpassURL
	}

	// Fill client/server file defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(home, defaultClientDBFile)
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = filepath.Join(home, defaultServerDBFile)
	}
}
