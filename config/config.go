// Package config loads a run's flat, dotted-key configuration store from
// a TOML file (spec §6: "a flat key/value store accessed by dotted
// keys"). Nested TOML tables flatten into dotted keys at load time, so
// [mortality] f4_infected = 0.1 becomes the key "mortality.f4_infected".
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Store is the flattened, dotted-key configuration for one run.
type Store struct {
	values map[string]interface{}
}

// Load reads and flattens the TOML file at path.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var doc map[string]interface{}
	if _, err := toml.Decode(string(raw), &doc); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	s := &Store{values: make(map[string]interface{})}
	flatten("", doc, s.values)
	return s, nil
}

func flatten(prefix string, in map[string]interface{}, out map[string]interface{}) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// ConfigString implements hepce.DataSource.
func (s *Store) ConfigString(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	default:
		return fmt.Sprintf("%v", t), true
	}
}

// ConfigFloat implements hepce.DataSource.
func (s *Store) ConfigFloat(key string) (float64, bool) {
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// ConfigInt implements hepce.DataSource.
func (s *Store) ConfigInt(key string) (int, bool) {
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	default:
		return 0, false
	}
}

// ConfigBool implements hepce.DataSource.
func (s *Store) ConfigBool(key string) (bool, bool) {
	v, ok := s.values[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
