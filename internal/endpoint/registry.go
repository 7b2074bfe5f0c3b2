// Package endpoint holds the static table of data categories the
// application knows how to fetch, with their credit costs and per-session
// enabled flags.
package endpoint

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

// Descriptor describes one category: where it lives on the remote API,
// what a fetch costs, and whether the user has it enabled. Everything but
// the enabled flag is fixed per deployment.
type Descriptor struct {
	Category    string `yaml:"category"`
	Path        string `yaml:"path"`
	Cost        int    `yaml:"cost"`
	Description string `yaml:"description"`
	Enabled     bool   `yaml:"enabled"`
}

type descriptorFile struct {
	Endpoints []Descriptor `yaml:"endpoints"`
}

// Registry is the lookup table for category descriptors. The enabled flag
// is the only mutable state; it gates every subsequent access to that
// category.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Descriptor
}

// NewRegistry parses the embedded descriptor table.
func NewRegistry() (*Registry, error) {
	return newRegistryFrom(endpointsYAML)
}

func newRegistryFrom(raw []byte) (*Registry, error) {
	var file descriptorFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing endpoint table: %w", err)
	}
	if len(file.Endpoints) == 0 {
		return nil, fmt.Errorf("endpoint table is empty")
	}

	entries := make(map[string]*Descriptor, len(file.Endpoints))
	for i := range file.Endpoints {
		d := file.Endpoints[i]
		if d.Category == "" || d.Cost <= 0 {
			return nil, fmt.Errorf("endpoint table entry %d: category and positive cost are required", i)
		}
		entries[d.Category] = &d
	}
	return &Registry{entries: entries}, nil
}

// Get returns the descriptor for a category.
func (r *Registry) Get(category string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[category]
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}

// Cost returns the fixed credit cost for a category, or 0 if unknown.
func (r *Registry) Cost(category string) int {
	d, ok := r.Get(category)
	if !ok {
		return 0
	}
	return d.Cost
}

// Enabled reports whether a category may be fetched. Unknown categories
// are disabled.
func (r *Registry) Enabled(category string) bool {
	d, ok := r.Get(category)
	return ok && d.Enabled
}

// SetEnabled toggles a category. Takes effect on the next access.
func (r *Registry) SetEnabled(category string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.entries[category]
	if !ok {
		return false
	}
	d.Enabled = enabled
	return true
}

// RestrictTo disables every category not in the given list. A nil or
// empty list leaves the table untouched, mirroring how an absent
// enabled_categories config means "everything".
func (r *Registry) RestrictTo(categories []string) {
	if len(categories) == 0 {
		return
	}
	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, d := range r.entries {
		if !allowed[name] {
			d.Enabled = false
		}
	}
}

// Categories returns all known category names, sorted.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptors returns all descriptors sorted by category name.
func (r *Registry) Descriptors() []Descriptor {
	names := r.Categories()
	out := make([]Descriptor, 0, len(names))
	for _, name := range names {
		d, _ := r.Get(name)
		out = append(out, d)
	}
	return out
}
