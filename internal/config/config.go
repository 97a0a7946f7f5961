package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Session store backends
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	// API is the external school REST service the dashboard renders against.
	API struct {
		BaseURL string `yaml:"base_url" env:"API_BASE_URL"`
		Timeout string `yaml:"timeout" env:"API_TIMEOUT"`
	} `yaml:"api"`

	Session struct {
		Store      string `yaml:"store" env:"SESSION_STORE"`
		CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		TTL        string `yaml:"ttl" env:"SESSION_TTL"`
		Secure     bool   `yaml:"secure" env:"SESSION_SECURE"`
	} `yaml:"session"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	UI struct {
		FlashTTL string `yaml:"flash_ttl" env:"UI_FLASH_TTL"`
		PageSize int    `yaml:"page_size" env:"UI_PAGE_SIZE"`
	} `yaml:"ui"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Path    string `yaml:"path" env:"METRICS_PATH"`
	} `yaml:"metrics"`

	// Stub configures the in-memory development REST backend.
	Stub struct {
		Port          string `yaml:"port" env:"STUB_PORT"`
		JWTSecret     string `yaml:"jwt_secret" env:"STUB_JWT_SECRET"`
		TokenTTL      string `yaml:"token_ttl" env:"STUB_TOKEN_TTL"`
		AdminEmail    string `yaml:"admin_email" env:"STUB_ADMIN_EMAIL"`
		AdminPassword string `yaml:"admin_password" env:"STUB_ADMIN_PASSWORD"`
		// The demo school and its admin are seeded when SchoolAdminEmail is set.
		SchoolAdminEmail    string `yaml:"school_admin_email" env:"STUB_SCHOOL_ADMIN_EMAIL"`
		SchoolAdminPassword string `yaml:"school_admin_password" env:"STUB_SCHOOL_ADMIN_PASSWORD"`
	} `yaml:"stub"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "15s"

	config.API.BaseURL = "http://localhost:5000"
	config.API.Timeout = "15s"

	config.Session.Store = SessionStoreMemory
	config.Session.CookieName = "sms_session"
	config.Session.TTL = "12h"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "schooldash"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.UI.FlashTTL = "3s"
	config.UI.PageSize = 25

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"

	config.Stub.Port = "5000"
	config.Stub.TokenTTL = "12h"
	config.Stub.JWTSecret = "stub-development-secret"
	config.Stub.AdminEmail = "superadmin@schooldash.dev"
	config.Stub.AdminPassword = "admin123"
	config.Stub.SchoolAdminEmail = "admin@school.com"
	config.Stub.SchoolAdminPassword = "admin123"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	u, err := url.Parse(config.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api base url %q must be an absolute URL", config.API.BaseURL)
	}

	switch config.Session.Store {
	case SessionStoreMemory:
	case SessionStorePostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres session store")
		}
	default:
		return fmt.Errorf("unknown session store %q", config.Session.Store)
	}

	if config.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	durations := map[string]string{
		"server read timeout":  config.Server.ReadTimeout,
		"server write timeout": config.Server.WriteTimeout,
		"api timeout":          config.API.Timeout,
		"session ttl":          config.Session.TTL,
		"ui flash ttl":         config.UI.FlashTTL,
		"stub token ttl":       config.Stub.TokenTTL,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.UI.PageSize <= 0 {
		return fmt.Errorf("ui page size must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
