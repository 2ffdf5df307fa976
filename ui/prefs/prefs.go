// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "preferences.json"

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu      sync.RWMutex
	values  map[string]interface{}
	path    string
	changed bool
}

// Keys used by the preview window.
const (
	KeyLastJob      = "preview.last_job"
	KeyWindowWidth  = "preview.window_width"
	KeyWindowHeight = "preview.window_height"
	KeyZoom         = "preview.zoom"
)

// Load reads preferences from ~/.config/halo-fixer/preferences.json.
// Returns an empty Prefs if the file doesn't exist.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return LoadFrom(filepath.Join(configDir, "halo-fixer", prefsFile))
}

// LoadFrom reads preferences from path. A missing or unreadable file
// yields an empty Prefs that will be saved to path.
func LoadFrom(path string) *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p.values)
	return p
}

// Path returns the file preferences are saved to.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.Lock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.changed = false
	p.mu.Unlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// SaveIfChanged saves only when a value was set since the last save.
func (p *Prefs) SaveIfChanged() error {
	p.mu.RLock()
	changed := p.changed
	p.mu.RUnlock()
	if !changed {
		return nil
	}
	return p.Save()
}

func (p *Prefs) get(key string) (interface{}, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *Prefs) set(key string, val interface{}) {
	p.mu.Lock()
	if old, ok := p.values[key]; !ok || !sameScalar(old, val) {
		p.values[key] = val
		p.changed = true
	}
	p.mu.Unlock()
}

// sameScalar compares without panicking on JSON objects or arrays.
func sameScalar(a, b interface{}) bool {
	switch a.(type) {
	case string, float64, int, bool:
		return a == b
	}
	return false
}

// Float returns a float64 preference, or fallback if not set.
func (p *Prefs) Float(key string, fallback float64) float64 {
	v, _ := p.get(key)
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) { p.set(key, val) }

// Int returns an integer preference, or fallback if not set. JSON numbers
// decode as float64 and are truncated.
func (p *Prefs) Int(key string, fallback int) int {
	v, _ := p.get(key)
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return fallback
}

// SetInt stores an integer preference.
func (p *Prefs) SetInt(key string, val int) { p.set(key, val) }

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	v, _ := p.get(key)
	s, _ := v.(string)
	return s
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) { p.set(key, val) }
