package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// loading must not create the file
	_, err = os.Stat(GetConfigFilePath())
	assert.True(t, os.IsNotExist(err))
}

func TestGetConfigFilePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "twentyone", "config.toml"), GetConfigFilePath())
}

func TestInitConfigRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := InitConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestInitConfigKeepsExistingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, Save(GetConfigFilePath(), &Config{Color: ColorNever, LogLevel: "debug"}))

	_, err := InitConfig()
	require.NoError(t, err)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Config
		wantErr bool
	}{
		{
			name:    "partial file keeps defaults",
			content: `log_level = "debug"`,
			want:    &Config{Color: ColorAuto, LogLevel: "debug"},
		},
		{
			name:    "all keys",
			content: "color = \"always\"\nlog_level = \"error\"\n",
			want:    &Config{Color: ColorAlways, LogLevel: "error"},
		},
		{
			name:    "bad color",
			content: `color = "rainbow"`,
			wantErr: true,
		},
		{
			name:    "bad log level",
			content: `log_level = "loud"`,
			wantErr: true,
		},
		{
			name:    "not toml",
			content: `color = `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := LoadFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
