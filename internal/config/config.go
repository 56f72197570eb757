package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string `env:"LF_API_BASE_URL" envDefault:"http://localhost:3000/api"`
	LogLevel   string `env:"LF_LOG_LEVEL" envDefault:"info"`

	ListenAddr string `env:"LF_LISTEN_ADDR" envDefault:":8080"`

	// Optional static token; when set it overrides any stored session
	// token on every call.
	APIToken string `env:"LF_API_TOKEN"`

	// TokenFilePath backs CLI sessions. Empty means a default under the
	// user config dir.
	TokenFilePath string `env:"LF_TOKEN_FILE"`

	HTTPTimeoutSec int `env:"LF_HTTP_TIMEOUT_SEC" envDefault:"30"`
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("LF_API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("LF_LISTEN_ADDR must not be empty")
	}

	if c.HTTPTimeoutSec < 0 {
		return fmt.Errorf("LF_HTTP_TIMEOUT_SEC cannot be negative")
	}

	return nil
}

// DefaultTokenFile resolves the token file path, falling back to
// <user-config-dir>/libfront/token.json.
func (c *Config) DefaultTokenFile() string {
	if c.TokenFilePath != "" {
		return c.TokenFilePath
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "libfront", "token.json")
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{}
		if err := env.Parse(cfg); err != nil {
			log.Fatalf("failed to parse config: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("config validation failed: %v", err)
		}
	})
	return cfg
}
