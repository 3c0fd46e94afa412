package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "defaults are valid",
			config: Default(),
		},
		{
			name:   "light theme",
			config: Config{Theme: ThemeLight, HistoryCap: 10, MaxInput: 16},
		},
		{
			name:    "unknown theme",
			config:  Config{Theme: "sepia", HistoryCap: 10, MaxInput: 16},
			wantErr: "invalid theme",
		},
		{
			name:    "zero history cap",
			config:  Config{Theme: ThemeDark, HistoryCap: 0, MaxInput: 16},
			wantErr: "history_cap",
		},
		{
			name:    "negative max input",
			config:  Config{Theme: ThemeDark, HistoryCap: 10, MaxInput: -1},
			wantErr: "max_input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\nhistory_cap: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, 10, cfg.HistoryCap)
	// Unset keys keep their defaults.
	assert.Equal(t, Default().MaxInput, cfg.MaxInput)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid theme")
}
