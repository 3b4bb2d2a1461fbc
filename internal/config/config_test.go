package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "journal", cfg.Name)
	assert.Equal(t, 4, cfg.Journal.Concurrency)
	assert.True(t, cfg.Journal.RecordHistory)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.DebugMode)
	assert.Equal(t, ServerDefaults{Port: 8080, Host: "localhost", Debug: false}, cfg.Server)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Journal, cfg.Journal)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := DefaultPath(t.TempDir())

	cfg := DefaultConfig()
	cfg.Journal.Concurrency = 2
	cfg.Logging.DebugMode = true
	cfg.Logging.Categories = map[string]bool{"store": false}
	cfg.Server.Port = 9000
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Journal.Concurrency)
	assert.True(t, loaded.Logging.DebugMode)
	assert.Equal(t, map[string]bool{"store": false}, loaded.Logging.Categories)
	assert.Equal(t, 9000, loaded.Server.Port)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal:\n  plain: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Journal.Plain)
	assert.Equal(t, 4, cfg.Journal.Concurrency)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("JOURNAL_DB replaces database path", func(t *testing.T) {
		t.Setenv("JOURNAL_DB", "/tmp/other.db")
		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "/tmp/other.db", cfg.Journal.DatabasePath)
	})

	t.Run("JOURNAL_DEBUG enables debug mode", func(t *testing.T) {
		t.Setenv("JOURNAL_DEBUG", "true")
		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("JOURNAL_CONCURRENCY and JOURNAL_PLAIN", func(t *testing.T) {
		t.Setenv("JOURNAL_CONCURRENCY", "8")
		t.Setenv("JOURNAL_PLAIN", "1")
		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, 8, cfg.Journal.Concurrency)
		assert.True(t, cfg.Journal.Plain)
	})

	t.Run("unset variables leave config alone", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, DefaultConfig().Journal, cfg.Journal)
	})

	t.Run("malformed integer is an error", func(t *testing.T) {
		t.Setenv("JOURNAL_CONCURRENCY", "lots")
		cfg := DefaultConfig()
		assert.Error(t, cfg.applyEnvOverrides())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero concurrency", func(c *Config) { c.Journal.Concurrency = 0 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"privileged port", func(c *Config) { c.Server.Port = 80 }, true},
		{"lowest unprivileged port", func(c *Config) { c.Server.Port = 1024 }, false},
		{"highest port", func(c *Config) { c.Server.Port = 65535 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/ws", "a.db"), ResolvePath("/ws", "a.db"))
	assert.Equal(t, "/abs/a.db", ResolvePath("/ws", "/abs/a.db"))
	assert.Equal(t, "", ResolvePath("/ws", ""))
}
