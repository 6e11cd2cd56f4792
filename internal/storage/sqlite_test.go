package storage_test

import (
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/simeonrst/apphub/internal/model"
	"github.com/simeonrst/apphub/internal/storage"
)

func newSQLite(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	s, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "apphub.db"))
	assert.NilError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStorage_SaveAndLoadApps(t *testing.T) {
	s := newSQLite(t)

	apps := []model.App{
		{ID: "a1", Name: "GitHub", URL: "https://github.com", Icon: "https://github.com/favicon.ico", Category: "Tools", Pinned: true},
		{ID: "a2", Name: "Jira", URL: "https://jira.example.com", Category: "Work", Favorite: true},
		{ID: "a3", Name: "Google", URL: "https://google.com", Category: "Work"},
	}

	assert.NilError(t, s.SaveApps(apps))

	loaded, err := s.LoadApps()
	assert.NilError(t, err)

	// Collection order must survive the round trip
	assert.DeepEqual(t, loaded, apps)
}

func TestSQLiteStorage_OrderFollowsPosition(t *testing.T) {
	s := newSQLite(t)

	apps := []model.App{
		{ID: "z", Name: "Zulu", URL: "https://z.example.com", Category: "General"},
		{ID: "a", Name: "Alpha", URL: "https://a.example.com", Category: "General"},
	}
	assert.NilError(t, s.SaveApps(apps))

	// Reorder and save again; load must reflect the new order, not name order
	assert.NilError(t, s.SaveApps([]model.App{apps[1], apps[0]}))

	loaded, err := s.LoadApps()
	assert.NilError(t, err)
	assert.Equal(t, loaded[0].ID, "a")
	assert.Equal(t, loaded[1].ID, "z")
}

func TestSQLiteStorage_EmptyDatabase(t *testing.T) {
	s := newSQLite(t)

	apps, err := s.LoadApps()
	assert.NilError(t, err)
	assert.Assert(t, cmp.Len(apps, 0))

	categories, err := s.LoadCategories()
	assert.NilError(t, err)
	assert.DeepEqual(t, categories, model.DefaultCategories())
}

func TestSQLiteStorage_SaveAndLoadCategories(t *testing.T) {
	s := newSQLite(t)

	categories := []string{"General", "Work", "Side Projects"}
	assert.NilError(t, s.SaveCategories(categories))

	loaded, err := s.LoadCategories()
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded, categories)
}

func TestSQLiteStorage_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "apphub.db")

	s, err := storage.NewSQLiteStorage(dbPath)
	assert.NilError(t, err)
	defer s.Close()

	assert.Equal(t, s.Path(), dbPath)
}
