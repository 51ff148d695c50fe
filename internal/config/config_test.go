package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.NotEmpty(t, d.API.BaseURL)
	assert.NotEmpty(t, d.Webhook.URL)
	assert.Equal(t, time.Hour, d.CacheTTL)
	assert.Equal(t, 300*time.Millisecond, d.Debounce)
	assert.Contains(t, d.StatePath, "leadline")
}

func TestDefaults_Validate(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestValidate_MissingBaseURL(t *testing.T) {
	cfg := Defaults()
	cfg.API.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "base_url")
	assert.Contains(t, string(raw), "debounce")
	assert.Contains(t, string(raw), Defaults().API.BaseURL)
}
