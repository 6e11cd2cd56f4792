package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/simeonrst/apphub/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage implements Storage using a SQLite database.
// Collection order is materialized as an explicit position column.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS apps (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL,
			url TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'General',
			favorite INTEGER NOT NULL DEFAULT 0,
			pinned INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_apps_category ON apps(category);
		CREATE INDEX IF NOT EXISTS idx_apps_favorite ON apps(favorite) WHERE favorite = 1;

		CREATE TABLE IF NOT EXISTS categories (
			name TEXT PRIMARY KEY NOT NULL,
			position INTEGER NOT NULL
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// LoadApps reads the app collection in stored order.
func (s *SQLiteStorage) LoadApps() ([]model.App, error) {
	rows, err := s.db.Query(`
		SELECT id, name, url, icon, category, favorite, pinned
		FROM apps
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []model.App{}
	for rows.Next() {
		var a model.App
		var favorite, pinned int

		if err := rows.Scan(&a.ID, &a.Name, &a.URL, &a.Icon, &a.Category, &favorite, &pinned); err != nil {
			return nil, err
		}

		a.Favorite = favorite == 1
		a.Pinned = pinned == 1
		a.Normalize()

		apps = append(apps, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// SaveApps writes the full app collection inside a transaction.
func (s *SQLiteStorage) SaveApps(apps []model.App) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM apps"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO apps (id, name, url, icon, category, favorite, pinned, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range apps {
		favorite := 0
		if a.Favorite {
			favorite = 1
		}
		pinned := 0
		if a.Pinned {
			pinned = 1
		}

		if _, err := stmt.Exec(a.ID, a.Name, a.URL, a.Icon, a.Category, favorite, pinned, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadCategories reads the category list in stored order.
// An empty table yields the default list.
func (s *SQLiteStorage) LoadCategories() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM categories ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		categories = append(categories, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return model.NormalizeCategories(categories), nil
}

// SaveCategories writes the full category list inside a transaction.
func (s *SQLiteStorage) SaveCategories(categories []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO categories (name, position) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, name := range categories {
		if _, err := stmt.Exec(name, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default SQLite database path: ~/.config/apphub/apphub.db
func DefaultSQLitePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "apphub.db"), nil
}
