// Package config provides configuration types, defaults, and
// persistence for Leadline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// APIConfig holds remote lead API settings.
type APIConfig struct {
	// BaseURL is the lead endpoint URL.
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each request.
	Timeout time.Duration `mapstructure:"timeout"`
}

// WebhookConfig holds the notification channel settings.
type WebhookConfig struct {
	// URL is the contact endpoint. Empty disables notifications.
	URL string `mapstructure:"url"`
	// Timeout bounds each notification post.
	Timeout time.Duration `mapstructure:"timeout"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	Muted   string `mapstructure:"muted"`
	Error   string `mapstructure:"error"`
	Success string `mapstructure:"success"`
}

// Config holds all configuration options for leadline.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Webhook WebhookConfig `mapstructure:"webhook"`
	Theme   ThemeConfig   `mapstructure:"theme"`

	// StatePath is the preference/state file location.
	StatePath string `mapstructure:"state_path"`
	// CacheTTL bounds how long the last fetched page may be served.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// Debounce is the quiet period before a list fetch fires.
	Debounce time.Duration `mapstructure:"debounce"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		API: APIConfig{
			BaseURL: "https://prop.digiheadway.in/api/new_lead.php",
			Timeout: 15 * time.Second,
		},
		Webhook: WebhookConfig{
			URL:     "https://prop.digiheadway.in/api/create_contact.php?source=sales",
			Timeout: 10 * time.Second,
		},
		StatePath: filepath.Join(home, ".config", "leadline", "state.yaml"),
		CacheTTL:  time.Hour,
		Debounce:  300 * time.Millisecond,
	}
}

const defaultConfigTemplate = `# Leadline configuration
api:
  base_url: %q
  timeout: %s

webhook:
  url: %q
  timeout: %s

# cache_ttl bounds how long the last fetched page is reused.
cache_ttl: %s

# debounce is the quiet period before a list fetch fires.
debounce: %s

# theme:
#   muted: "#696969"
#   error: "#FF6B6B"
#   success: "#73F59F"
`

// WriteDefaultConfig writes a commented default config file at path,
// creating parent directories as needed.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	d := Defaults()
	content := fmt.Sprintf(defaultConfigTemplate,
		d.API.BaseURL, d.API.Timeout,
		d.Webhook.URL, d.Webhook.Timeout,
		d.CacheTTL, d.Debounce,
	)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // G306: config file, not a secret
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks required settings.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must be set")
	}
	return nil
}
