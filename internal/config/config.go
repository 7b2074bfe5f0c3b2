package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Mode selects the data source. Unset blocks data access until the user
// picks demo or supplies a live key.
const (
	ModeUnset = ""
	ModeDemo  = "demo"
	ModeLive  = "live"
)

type FetchConfig struct {
	Timeout float64 `toml:"timeout" json:"timeout"`
	BaseURL string  `toml:"base_url" json:"base_url"`
}

type DemoConfig struct {
	Dir string `toml:"dir,omitempty" json:"dir,omitempty"`
}

type DisplayConfig struct {
	CompactNumbers bool `toml:"compact_numbers" json:"compact_numbers"`
}

type Config struct {
	Mode              string        `toml:"mode" json:"mode"`
	EnabledCategories []string      `toml:"enabled_categories" json:"enabled_categories"`
	Fetch             FetchConfig   `toml:"fetch" json:"fetch"`
	Demo              DemoConfig    `toml:"demo" json:"demo"`
	Display           DisplayConfig `toml:"display" json:"display"`
}

func DefaultConfig() Config {
	return Config{
		Mode:              ModeUnset,
		EnabledCategories: nil,
		Fetch: FetchConfig{
			Timeout: 30.0,
			BaseURL: "https://api.virlo.ai",
		},
		Display: DisplayConfig{
			CompactNumbers: true,
		},
	}
}

func (c Config) clone() Config {
	out := c
	if c.EnabledCategories != nil {
		out.EnabledCategories = make([]string, len(c.EnabledCategories))
		copy(out.EnabledCategories, c.EnabledCategories)
	}
	return out
}

// IsCategoryEnabled reports whether config narrows a category out. An
// empty enabled_categories list means everything the registry declares
// stays as-is.
func (c Config) IsCategoryEnabled(category string) bool {
	if len(c.EnabledCategories) == 0 {
		return true
	}
	for _, name := range c.EnabledCategories {
		if name == category {
			return true
		}
	}
	return false
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

func Get() Config {
	configMu.RLock()
	if c := globalConfig; c != nil {
		configMu.RUnlock()
		return c.clone()
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()
	if globalConfig != nil {
		return globalConfig.clone()
	}
	c, _ := Load("")
	globalConfig = &c
	return c.clone()
}

func Reload() (Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	c, err := Load("")
	globalConfig = &c
	return c.clone(), err
}

// Init loads the config into the package singleton, surfacing a parse
// error so the CLI can warn about a malformed file.
func Init() (Config, error) {
	return Reload()
}

func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFile()
	}
	cfg, err := loadFile(path)
	return applyEnvOverrides(cfg), err
}

// loadFile reads the config file without env overrides. A missing file
// yields the defaults; a malformed one yields the defaults plus an error.
func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// Update edits the on-disk config and reloads the singleton. The file is
// read directly, not through Get, so transient env overrides are never
// written back. An error from mutate aborts the write.
func Update(mutate func(*Config) error) error {
	cfg, _ := loadFile(ConfigFile())
	if err := mutate(&cfg); err != nil {
		return err
	}
	if err := Save(cfg, ""); err != nil {
		return err
	}
	_, _ = Reload()
	return nil
}

// SetMode persists a mode change and reloads the singleton.
func SetMode(mode string) error {
	return Update(func(c *Config) error {
		c.Mode = mode
		return nil
	})
}

func applyEnvOverrides(cfg Config) Config {
	if v := os.Getenv("TRENDCOMPASS_ENABLED_CATEGORIES"); v != "" {
		var categories []string
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				categories = append(categories, p)
			}
		}
		cfg.EnabledCategories = categories
	}
	if v := os.Getenv("TRENDCOMPASS_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("TRENDCOMPASS_DEMO_DIR"); v != "" {
		cfg.Demo.Dir = v
	}
	return cfg
}
