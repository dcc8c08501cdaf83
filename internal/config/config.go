package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"multisearch/internal/domain"
	"multisearch/internal/eventbus"
)

// Theme values accepted in the config file.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config represents the application configuration
type Config struct {
	Version         int            `toml:"version"`
	Theme           string         `toml:"theme"`
	DefaultSelected []string       `toml:"default_selected"`
	UISettings      UISettings     `toml:"ui"`
	Engines         []CustomEngine `toml:"engines,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCategories bool `toml:"show_categories"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// CustomEngine is a user-defined engine appended to the built-in catalog.
type CustomEngine struct {
	Name      string `toml:"name"`
	URLPrefix string `toml:"url_prefix"`
	Category  string `toml:"category,omitempty"`
}

// CustomEngines converts the configured engines to domain engines,
// skipping entries missing a name or URL prefix.
func (c *Config) CustomEngines() []domain.Engine {
	var engines []domain.Engine
	for _, e := range c.Engines {
		if e.Name == "" || e.URLPrefix == "" {
			continue
		}
		engines = append(engines, domain.Engine{
			Name:      e.Name,
			URLPrefix: e.URLPrefix,
			Category:  e.Category,
		})
	}
	return engines
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "multisearch")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Theme == "" {
		cfg.Theme = ThemeAuto
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Theme:           cfg.Theme,
		DefaultSelected: cfg.DefaultSelected,
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		Theme:           ThemeAuto,
		DefaultSelected: []string{},
		UISettings: UISettings{
			ShowCategories: true,
			AutosaveOnExit: true,
		},
	}
}
