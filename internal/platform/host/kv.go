package host

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KVStore persists string settings as a YAML map in a single file, the
// host stand-in for NVS/EEPROM style key-value config on embedded targets.
type KVStore struct {
	Path string
}

func (k KVStore) load() (map[string]string, error) {
	b, err := os.ReadFile(k.Path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	m := map[string]string{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

func (k KVStore) Save(key, value string) error {
	m, err := k.load()
	if err != nil {
		return fmt.Errorf("host: load settings: %w", err)
	}
	m[key] = value
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("host: marshal settings: %w", err)
	}
	if err := os.WriteFile(k.Path, b, 0o600); err != nil {
		return fmt.Errorf("host: write settings: %w", err)
	}
	return nil
}

// Load returns the stored value for key, or fallback when the key is
// missing or the store is unreadable.
func (k KVStore) Load(key, fallback string) string {
	m, err := k.load()
	if err != nil {
		return fallback
	}
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

func (k KVStore) Clear() error {
	err := os.Remove(k.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
