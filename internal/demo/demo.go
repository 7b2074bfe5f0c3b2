// Package demo serves the bundled offline datasets used when no API key
// is configured. A missing or unreadable asset yields an empty payload
// rather than an error.
package demo

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contentcompass/trendcompass/internal/trend"
)

//go:embed data/*.json
var demoFS embed.FS

// Source reads demo datasets by category name. When Dir is set (the
// demo_dir config option) files there take precedence over the embedded
// ones, so a deployment can ship refreshed datasets without rebuilding.
type Source struct {
	Dir string
}

// Read returns the demo payload for a category.
func (s Source) Read(category string) trend.Envelope {
	name := category + ".json"

	if s.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(s.Dir, name)); err == nil {
			if env, ok := decode(category, data); ok {
				return env
			}
		}
	}

	data, err := demoFS.ReadFile("data/" + name)
	if err != nil {
		return trend.Empty()
	}
	env, ok := decode(category, data)
	if !ok {
		return trend.Empty()
	}
	return env
}

// Export writes the embedded datasets for the given categories into dir,
// as a starting point for a customized demo_dir. Existing files are
// overwritten.
func Export(dir string, categories []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("exporting demo data: %w", err)
	}
	for _, category := range categories {
		data, err := demoFS.ReadFile("data/" + category + ".json")
		if err != nil {
			continue
		}
		dst := filepath.Join(dir, category+".json")
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("exporting demo data: %w", err)
		}
	}
	return nil
}

// WriteDataset writes one category's payload into dir using the file
// layout Read expects, replacing any existing file. Used to refresh the
// demo data from live fetches.
func WriteDataset(dir, category string, env trend.Envelope) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("writing demo data: %w", err)
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("writing demo data: %w", err)
	}
	dst := filepath.Join(dir, category+".json")
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing demo data: %w", err)
	}
	return nil
}

func decode(category string, data []byte) (trend.Envelope, bool) {
	var env trend.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return trend.Envelope{}, false
	}
	if err := trend.Validate(category, env); err != nil {
		return trend.Envelope{}, false
	}
	return env, true
}
