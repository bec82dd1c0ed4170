package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brogergvhs/dhu/internal/config"
	"github.com/brogergvhs/dhu/internal/portal"

	"gopkg.in/yaml.v3"
)

var ErrNoCredentials = errors.New("no login info saved, run `dhu login` first")

type file struct {
	ID       string `yaml:"id"`
	Password string `yaml:"password"`
}

// Store keeps the portal login in a user-only YAML file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func DefaultPath() string {
	return filepath.Join(config.ConfigRoot(), "credentials.yaml")
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load() (portal.Credentials, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return portal.Credentials{}, ErrNoCredentials
	}
	if err != nil {
		return portal.Credentials{}, err
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return portal.Credentials{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if strings.TrimSpace(f.ID) == "" || f.Password == "" {
		return portal.Credentials{}, ErrNoCredentials
	}

	return portal.Credentials{ID: f.ID, Password: f.Password}, nil
}

func (s *Store) Save(c portal.Credentials) error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("id cannot be empty")
	}
	if c.Password == "" {
		return errors.New("password cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(file{ID: strings.TrimSpace(c.ID), Password: c.Password})
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}

// Purge forgets the saved login. A missing file is not an error.
func (s *Store) Purge() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
