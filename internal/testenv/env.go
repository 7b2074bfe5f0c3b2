package testenv

import "path/filepath"

// Dirs contains isolated directories for trendcompass config/cache in tests.
type Dirs struct {
	Base   string
	Config string
	Cache  string
}

// Split returns conventional test directories rooted at base.
func Split(base string) Dirs {
	return Dirs{
		Base:   base,
		Config: filepath.Join(base, "config"),
		Cache:  filepath.Join(base, "cache"),
	}
}

// Apply sets TRENDCOMPASS_* env vars to isolated test directories.
func Apply(setenv func(string, string), base string) Dirs {
	dirs := Split(base)
	setenv("TRENDCOMPASS_CONFIG_DIR", dirs.Config)
	setenv("TRENDCOMPASS_CACHE_DIR", dirs.Cache)
	return dirs
}

// ApplySameDir points config and cache at the same directory. Useful in
// tests that expect ConfigDir() to exactly match a temp dir path.
func ApplySameDir(setenv func(string, string), dir string) {
	setenv("TRENDCOMPASS_CONFIG_DIR", dir)
	setenv("TRENDCOMPASS_CACHE_DIR", dir)
}
