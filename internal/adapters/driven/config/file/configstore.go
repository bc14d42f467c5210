// Package file implements driven.ConfigStore on a TOML file in the
// quill config directory.
package file

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
	"github.com/custodia-labs/quill-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Configuration keys.
const (
	KeySiteDir       = "site.dir"
	KeyPostsDir      = "site.posts_dir"
	KeyDeployCommand = "site.deploy_command"
	KeyFetchTimeout  = "web.fetch_timeout_seconds"
	KeyMaxRedirects  = "web.max_redirects"
	KeyMaxBodyBytes  = "web.max_body_bytes"
	KeySearchBaseURL = "web.search_base_url"
)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Configuration is stored in a TOML file within the quill config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.quill/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".quill")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start empty
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	// Flatten nested maps into dot-notation keys for easier access
	s.data = flattenMap(loaded, "")
	return nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			// Recursively flatten nested maps
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Settings builds application settings from the store, falling back to
// defaults for keys that are unset or out of range.
func Settings(store driven.ConfigStore) domain.Settings {
	settings := domain.DefaultSettings()

	if v := store.GetString(KeySiteDir); v != "" {
		settings.SiteDir = v
	}
	if v := store.GetString(KeyPostsDir); v != "" {
		settings.PostsDir = v
	}
	if v := store.GetString(KeyDeployCommand); v != "" {
		settings.DeployCommand = v
	}
	if v := store.GetInt(KeyFetchTimeout); v > 0 {
		settings.FetchTimeout = time.Duration(v) * time.Second
	}
	if v := store.GetInt(KeyMaxRedirects); v > 0 {
		settings.MaxRedirects = v
	}
	if v := store.GetInt(KeyMaxBodyBytes); v > 0 {
		settings.MaxBodyBytes = int64(v)
	}
	if v := store.GetString(KeySearchBaseURL); v != "" {
		settings.SearchBaseURL = v
	}

	return settings
}

// SaveSettings writes every settings field back to the store and
// persists it.
func SaveSettings(store driven.ConfigStore, settings domain.Settings) error {
	pairs := []struct {
		key   string
		value any
	}{
		{KeySiteDir, settings.SiteDir},
		{KeyPostsDir, settings.PostsDir},
		{KeyDeployCommand, settings.DeployCommand},
		{KeyFetchTimeout, int64(settings.FetchTimeout / time.Second)},
		{KeyMaxRedirects, int64(settings.MaxRedirects)},
		{KeyMaxBodyBytes, settings.MaxBodyBytes},
		{KeySearchBaseURL, settings.SearchBaseURL},
	}

	for _, p := range pairs {
		if err := store.Set(p.key, p.value); err != nil {
			return err
		}
	}

	return store.Save()
}
