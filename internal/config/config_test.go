package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"data_dir": "content",
		"contact_delay": "250ms",
		"allowed_origin": "https://example.com",
		"preload": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "content", cfg.DataDir)
	assert.Equal(t, 250*time.Millisecond, cfg.ContactDelay.Std())
	assert.Equal(t, "https://example.com", cfg.AllowedOrigin)
	assert.True(t, cfg.Preload)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{"contact_delay": "soon"}`), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "existing data dir", cfg: Config{DataDir: tmpDir, Port: 8080}},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port'"},
		{name: "negative delay", cfg: Config{ContactDelay: Duration(-time.Second)}, wantErr: "'contact_delay'"},
		{name: "negative timeout", cfg: Config{ContactTimeout: Duration(-time.Second)}, wantErr: "'contact_timeout'"},
		{name: "missing data dir", cfg: Config{DataDir: filepath.Join(tmpDir, "nope")}, wantErr: "data directory not found"},
		{name: "data dir is a file", cfg: Config{DataDir: tmpFile}, wantErr: "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Port:    9090,
		Preload: false,
	}

	defaults := Config{
		Port:           8080,
		DataDir:        "data",
		ContactDelay:   Duration(1500 * time.Millisecond),
		ContactTimeout: Duration(10 * time.Second),
		AllowedOrigin:  "https://example.com",
		Preload:        true,
	}

	result := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9090, result.Port)
	assert.Equal(t, "data", result.DataDir)
	assert.Equal(t, 1500*time.Millisecond, result.ContactDelay.Std())
	assert.Equal(t, 10*time.Second, result.ContactTimeout.Std())
	assert.Equal(t, "https://example.com", result.AllowedOrigin)
	assert.True(t, result.Preload)
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORTFOLIO_PORT", "PORTFOLIO_DATA_DIR", "PORTFOLIO_CONTACT_DELAY",
		"PORTFOLIO_CONTACT_TIMEOUT", "PORTFOLIO_ALLOWED_ORIGIN", "PORTFOLIO_PRELOAD",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 1500*time.Millisecond, cfg.ContactDelay.Std())
	assert.Equal(t, 10*time.Second, cfg.ContactTimeout.Std())
	assert.Empty(t, cfg.AllowedOrigin)
	assert.False(t, cfg.Preload)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORTFOLIO_PORT", "3000")
	t.Setenv("PORTFOLIO_DATA_DIR", "/srv/content")
	t.Setenv("PORTFOLIO_CONTACT_DELAY", "2s")
	t.Setenv("PORTFOLIO_ALLOWED_ORIGIN", "http://localhost:5173")
	t.Setenv("PORTFOLIO_PRELOAD", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "/srv/content", cfg.DataDir)
	assert.Equal(t, 2*time.Second, cfg.ContactDelay.Std())
	assert.Equal(t, "http://localhost:5173", cfg.AllowedOrigin)
	assert.True(t, cfg.Preload)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("PORTFOLIO_PORT", "not-a-number")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}
