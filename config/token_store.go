package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EETokenKey is the key the cluster session token is cached under.
const EETokenKey = "ee_token"

// TokenStore caches credentials in the user's state file.
// Load reads the file once at startup and Save writes it back at shutdown.
type TokenStore struct {
	mu    sync.Mutex
	path  string
	v     *viper.Viper
	dirty bool
}

func NewTokenStore(stateCfg StateConfig) *TokenStore {
	v := viper.New()
	v.SetConfigFile(stateCfg.Path)
	v.SetConfigType("toml")
	return &TokenStore{path: stateCfg.Path, v: v}
}

// Load reads the state file. A missing file leaves the store empty.
func (s *TokenStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := s.v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read state file %s", s.path)
	}
	return nil
}

func (s *TokenStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.IsSet(key) && s.v.GetString(key) != ""
}

func (s *TokenStore) Get(key string) SecretValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SecretValue(s.v.GetString(key))
}

func (s *TokenStore) Set(key string, value SecretValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value.Value())
	s.dirty = true
}

// Save writes the state file if anything changed since Load.
func (s *TokenStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrapf(err, "create state dir for %s", s.path)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return errors.Wrapf(err, "write state file %s", s.path)
	}
	if err := os.Chmod(s.path, 0o600); err != nil {
		return errors.Wrapf(err, "restrict state file %s", s.path)
	}
	s.dirty = false
	return nil
}
