package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multisearch/internal/domain"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := &Config{
		Version:         1,
		Theme:           ThemeDark,
		DefaultSelected: []string{"Google", "DuckDuckGo"},
		UISettings: UISettings{
			ShowCategories: true,
			AutosaveOnExit: false,
		},
		Engines: []CustomEngine{
			{Name: "Kagi", URLPrefix: "https://kagi.com/search?q=", Category: "General"},
		},
	}

	svc := &configService{}
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromMissingPath(t *testing.T) {
	svc := &configService{}
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadDefaultsEmptyTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	svc := &configService{}
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeAuto, cfg.Theme)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [not toml"), 0644))

	svc := &configService{}
	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}

func TestCustomEnginesSkipIncompleteEntries(t *testing.T) {
	cfg := &Config{
		Engines: []CustomEngine{
			{Name: "Kagi", URLPrefix: "https://kagi.com/search?q=", Category: "General"},
			{Name: "MissingURL"},
			{URLPrefix: "https://nameless.example/?q="},
		},
	}

	engines := cfg.CustomEngines()
	require.Len(t, engines, 1)
	assert.Equal(t, domain.Engine{
		Name:      "Kagi",
		URLPrefix: "https://kagi.com/search?q=",
		Category:  "General",
	}, engines[0])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, ThemeAuto, cfg.Theme)
	assert.Empty(t, cfg.DefaultSelected)
	assert.True(t, cfg.UISettings.ShowCategories)
	assert.True(t, cfg.UISettings.AutosaveOnExit)
}
