// Package config provides configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// Listing and search defaults.
const (
	DefaultPageLimitValue = 25
	SearchMaxLimitValue   = 100
)

// Config holds all configuration for the server and CLI.
type Config struct {
	SiteName  string // ATLASSIAN_SITE_NAME, e.g. "acme" for acme.atlassian.net
	UserEmail string // ATLASSIAN_USER_EMAIL
	APIToken  string // ATLASSIAN_API_TOKEN
	BaseURL   string // CONFLUENCE_BASE_URL, overrides the site-name derived URL

	HTTPClientTimeout time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 10000ms (10s)

	DefaultPageLimit int // DEFAULT_PAGE_LIMIT, default 25
	SearchMaxLimit   int // SEARCH_MAX_LIMIT, default 100

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		SiteName:  getEnvString("ATLASSIAN_SITE_NAME", ""),
		UserEmail: getEnvString("ATLASSIAN_USER_EMAIL", ""),
		APIToken:  getEnvString("ATLASSIAN_API_TOKEN", ""),
		BaseURL:   getEnvString("CONFLUENCE_BASE_URL", ""),

		HTTPClientTimeout: getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", 10000),

		DefaultPageLimit: getEnvInt("DEFAULT_PAGE_LIMIT", DefaultPageLimitValue),
		SearchMaxLimit:   getEnvInt("SEARCH_MAX_LIMIT", SearchMaxLimitValue),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// ResolveBaseURL returns the Confluence base URL, deriving it from the site
// name when no explicit URL is configured.
func (c *Config) ResolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}
	if c.SiteName == "" {
		return "", errors.New("set CONFLUENCE_BASE_URL or ATLASSIAN_SITE_NAME")
	}
	return fmt.Sprintf("https://%s.atlassian.net/wiki", c.SiteName), nil
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
