package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/simeonrst/apphub/internal/model"
)

// Durable storage keys. The JSON backend uses them as file stems, so the
// on-disk layout matches the browser-era export format.
const (
	AppsKey       = "apphub.v1.apps"
	CategoriesKey = "apphub.v1.categories"
)

// Storage defines the interface for persisting apps and categories.
// Loads repair missing or corrupt data with safe defaults instead of failing.
type Storage interface {
	LoadApps() ([]model.App, error)
	SaveApps(apps []model.App) error
	LoadCategories() ([]string, error)
	SaveCategories(categories []string) error
}

// JSONStorage implements Storage using one JSON file per key inside a directory.
type JSONStorage struct {
	dir string
}

// NewJSONStorage creates a new JSONStorage rooted at the given directory.
func NewJSONStorage(dir string) *JSONStorage {
	return &JSONStorage{dir: dir}
}

// Dir returns the storage directory.
func (s *JSONStorage) Dir() string {
	return s.dir
}

// LoadApps reads the app collection. A missing or corrupt file yields an
// empty collection, never an error. Every record is normalized on the way in.
func (s *JSONStorage) LoadApps() ([]model.App, error) {
	data, err := os.ReadFile(s.appsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.App{}, nil
		}
		return nil, err
	}

	var apps []model.App
	if err := json.Unmarshal(data, &apps); err != nil {
		// Corrupt storage recovers to an empty collection
		return []model.App{}, nil
	}
	if apps == nil {
		apps = []model.App{}
	}

	for i := range apps {
		apps[i].Normalize()
	}

	return apps, nil
}

// SaveApps writes the full app collection, replacing whatever was stored.
func (s *JSONStorage) SaveApps(apps []model.App) error {
	return s.writeJSON(s.appsPath(), apps)
}

// LoadCategories reads the category list. Missing or corrupt data yields the
// default list; the result always contains "General".
func (s *JSONStorage) LoadCategories() ([]string, error) {
	data, err := os.ReadFile(s.categoriesPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultCategories(), nil
		}
		return nil, err
	}

	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return model.DefaultCategories(), nil
	}

	return model.NormalizeCategories(categories), nil
}

// SaveCategories writes the full category list.
func (s *JSONStorage) SaveCategories(categories []string) error {
	return s.writeJSON(s.categoriesPath(), categories)
}

func (s *JSONStorage) appsPath() string {
	return filepath.Join(s.dir, AppsKey+".json")
}

func (s *JSONStorage) categoriesPath() string {
	return filepath.Join(s.dir, CategoriesKey+".json")
}

func (s *JSONStorage) writeJSON(path string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultDir returns the default storage directory: ~/.config/apphub
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "apphub"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(dir), nil
}
