// Package config holds the settings shared by the agrirent CLI and the
// browser console.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/me/agrirent/internal/session"
)

// Session store kinds.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvAPIURL       = "AGRIRENT_API_URL"
	EnvSessionStore = "AGRIRENT_SESSION_STORE"
)

// ConsoleConfig holds configuration for both front ends.
type ConsoleConfig struct {
	APIURL        string        `yaml:"api_url"`        // backend base URL including /api
	Addr          string        `yaml:"addr"`           // console listen address (default "127.0.0.1:8090")
	LogLevel      string        `yaml:"log_level"`      // debug, info, warn, error
	LogFormat     string        `yaml:"log_format"`     // text, json
	LogFile       string        `yaml:"log_file"`       // optional rotating log file
	SessionStore  string        `yaml:"session_store"`  // file, sqlite, memory
	SessionPath   string        `yaml:"session_path"`   // default ~/.agrirent/session.{json,db}
	HTTPTimeout   time.Duration `yaml:"http_timeout"`   // per backend request
	SecureCookies bool          `yaml:"secure_cookies"` // set Secure on console cookies
}

// DefaultConsoleConfig returns sensible defaults.
func DefaultConsoleConfig() ConsoleConfig {
	return ConsoleConfig{
		APIURL:       "http://localhost:5000/api",
		Addr:         "127.0.0.1:8090",
		LogLevel:     "info",
		LogFormat:    "text",
		SessionStore: StoreFile,
		HTTPTimeout:  30 * time.Second,
	}
}

// Dir returns ~/.agrirent.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".agrirent"), nil
}

// DefaultPath returns ~/.agrirent/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current value. When optional is true a missing file is
// not an error.
func LoadFile(path string, cfg *ConsoleConfig, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. getenv is os.Getenv
// outside tests.
func (c *ConsoleConfig) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvAPIURL)); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(getenv(EnvSessionStore)); v != "" {
		c.SessionStore = strings.ToLower(v)
	}
}

// Validate reports settings that cannot work.
func (c ConsoleConfig) Validate() error {
	var problems []string
	if c.APIURL == "" {
		problems = append(problems, "api_url is required")
	}
	switch c.SessionStore {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		problems = append(problems, fmt.Sprintf("session_store %q is not one of file, sqlite, memory", c.SessionStore))
	}
	if c.HTTPTimeout < 0 {
		problems = append(problems, "http_timeout must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ResolveSessionPath returns SessionPath or the per-store default under
// ~/.agrirent. The memory store has no path.
func (c ConsoleConfig) ResolveSessionPath() (string, error) {
	if c.SessionStore == StoreMemory {
		return "", nil
	}
	if c.SessionPath != "" {
		return c.SessionPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if c.SessionStore == StoreSQLite {
		return filepath.Join(dir, "session.db"), nil
	}
	return filepath.Join(dir, session.SessionFileName), nil
}
