// Package config holds the run configuration and its defaults. Values are
// layered: struct defaults, an optional JSON file, IMGDL_* environment
// variables, then command line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"

	"github.com/rojanmagar2001/goimgdl/internal/domain"
)

const (
	EnvPrefix = "IMGDL"

	DefaultDir          = "img"
	DefaultTimeout      = 10 * time.Second
	DefaultMaxRedirects = 5
	DefaultDownloader   = "aria2c"
	DefaultLogLevel     = "info"
)

var (
	ErrMissingSource     = errors.New("either --url or --html must be specified")
	ErrConflictingSource = errors.New("--url and --html are mutually exclusive")
)

type Config struct {
	URL  string `json:"url" env:"URL"`
	HTML string `json:"html" env:"HTML"`

	Dir            string `json:"dir" env:"DIR" default:"img"`
	Proxy          string `json:"proxy" env:"PROXY"`
	ProxyDownloads bool   `json:"aria2c_proxy" env:"ARIA2C_PROXY"`

	// UserAgent is accepted but the page request always sends
	// domain.DefaultUserAgent.
	UserAgent    string        `json:"user_agent" env:"USER_AGENT"`
	Timeout      time.Duration `json:"timeout" env:"TIMEOUT" default:"10s"`
	MaxRedirects int           `json:"max_redirects" env:"MAX_REDIRECTS" default:"5"`

	Downloader string `json:"downloader" env:"DOWNLOADER" default:"aria2c"`

	LogLevel string `json:"log_level" env:"LOG_LEVEL" default:"info"`
	LogFile  string `json:"log_file" env:"LOG_FILE"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Dir:          DefaultDir,
		UserAgent:    domain.DefaultUserAgent,
		Timeout:      DefaultTimeout,
		MaxRedirects: DefaultMaxRedirects,
		Downloader:   DefaultDownloader,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads defaults, the optional file and the environment.
func Load(file string) (Config, error) {
	cfg := Default()

	var files []string
	if file != "" {
		files = []string{file}
	}

	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags:          true,
		EnvPrefix:          EnvPrefix,
		Files:              files,
		FailOnFileNotFound: true,
		AllowUnknownEnvs:   true,
	})
	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	// aconfig has no default for the user agent; keep the browser string.
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultUserAgent
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.URL == "" && c.HTML == "":
		return ErrMissingSource
	case c.URL != "" && c.HTML != "":
		return ErrConflictingSource
	}
	return nil
}

// Source returns the page source selected by the configuration.
func (c Config) Source() (domain.Source, error) {
	if err := c.Validate(); err != nil {
		return domain.Source{}, err
	}
	if c.URL != "" {
		return domain.NewRemoteSource(c.URL), nil
	}
	return domain.NewLocalSource(c.HTML), nil
}
