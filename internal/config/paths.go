package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "trendcompass"

func ConfigDir() string {
	if v := os.Getenv("TRENDCOMPASS_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

func CacheDir() string {
	if v := os.Getenv("TRENDCOMPASS_CACHE_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.CacheHome, appName)
}

func ConfigFile() string     { return filepath.Join(ConfigDir(), "config.toml") }
func CredentialsDir() string { return filepath.Join(ConfigDir(), "credentials") }
func SnapshotFile() string   { return filepath.Join(CacheDir(), "snapshot.json") }
