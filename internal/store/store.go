// Package store owns the in-memory app collection. Every mutation persists
// through the storage backend before it returns, so no caller can observe a
// state that was mutated but not yet saved.
package store

import (
	"github.com/simeonrst/apphub/internal/model"
	"github.com/simeonrst/apphub/internal/storage"
)

// RecordStore is the single source of truth for apps and categories.
type RecordStore struct {
	data    *model.Store
	backend storage.Storage
}

// Open loads the persisted state into a RecordStore. An empty collection is
// seeded with two example apps and saved immediately.
func Open(backend storage.Storage) (*RecordStore, error) {
	apps, err := backend.LoadApps()
	if err != nil {
		return nil, err
	}
	categories, err := backend.LoadCategories()
	if err != nil {
		return nil, err
	}

	s := &RecordStore{
		data:    &model.Store{Apps: apps, Categories: categories},
		backend: backend,
	}

	if len(apps) == 0 {
		s.data.Apps = model.SeedApps()
		if err := backend.SaveApps(s.data.Apps); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Apps returns the ordered app collection. Callers must treat it as a snapshot.
func (s *RecordStore) Apps() []model.App {
	return s.data.Apps
}

// Categories returns the category list.
func (s *RecordStore) Categories() []string {
	return s.data.Categories
}

// GetApp finds an app by ID, returns nil if not found.
func (s *RecordStore) GetApp(id string) *model.App {
	return s.data.GetAppByID(id)
}

// Add appends a new app and persists.
func (s *RecordStore) Add(app model.App) error {
	apps := append(s.data.Apps, app)
	return s.commitApps(apps)
}

// Update overwrites name, URL, icon and category of the app with the given ID.
// Favorite and pinned flags are preserved.
func (s *RecordStore) Update(id string, params model.NewAppParams) error {
	idx := s.data.IndexOfApp(id)
	if idx < 0 {
		return ErrNotFound
	}

	apps := snapshot(s.data.Apps)
	apps[idx].Name = params.Name
	apps[idx].URL = params.URL
	apps[idx].Icon = params.Icon
	apps[idx].Category = params.Category
	if apps[idx].Category == "" {
		apps[idx].Category = model.DefaultCategory
	}

	return s.commitApps(apps)
}

// Remove deletes the app with the given ID.
func (s *RecordStore) Remove(id string) error {
	idx := s.data.IndexOfApp(id)
	if idx < 0 {
		return ErrNotFound
	}

	apps := snapshot(s.data.Apps)
	apps = append(apps[:idx], apps[idx+1:]...)
	return s.commitApps(apps)
}

// SetFavorite sets the favorite flag of the app with the given ID.
func (s *RecordStore) SetFavorite(id string, favorite bool) error {
	return s.setFlag(id, func(a *model.App) { a.Favorite = favorite })
}

// ToggleFavorite flips the favorite flag of the app with the given ID.
func (s *RecordStore) ToggleFavorite(id string) error {
	return s.setFlag(id, func(a *model.App) { a.Favorite = !a.Favorite })
}

// SetPinned sets the pinned flag of the app with the given ID.
func (s *RecordStore) SetPinned(id string, pinned bool) error {
	return s.setFlag(id, func(a *model.App) { a.Pinned = pinned })
}

// TogglePinned flips the pinned flag of the app with the given ID.
func (s *RecordStore) TogglePinned(id string) error {
	return s.setFlag(id, func(a *model.App) { a.Pinned = !a.Pinned })
}

func (s *RecordStore) setFlag(id string, apply func(*model.App)) error {
	idx := s.data.IndexOfApp(id)
	if idx < 0 {
		return ErrNotFound
	}

	apps := snapshot(s.data.Apps)
	apply(&apps[idx])
	return s.commitApps(apps)
}

// Reorder replaces the collection order with the given ID sequence. The
// sequence must contain exactly the stored IDs; anything else is rejected
// with ErrSizeMismatch and the stored order is left untouched.
func (s *RecordStore) Reorder(ids []string) error {
	if len(ids) != len(s.data.Apps) {
		return ErrSizeMismatch
	}

	byID := make(map[string]*model.App, len(s.data.Apps))
	for i := range s.data.Apps {
		byID[s.data.Apps[i].ID] = &s.data.Apps[i]
	}

	apps := make([]model.App, 0, len(ids))
	for _, id := range ids {
		app, ok := byID[id]
		if !ok {
			return ErrSizeMismatch
		}
		delete(byID, id) // catches duplicated IDs
		apps = append(apps, *app)
	}

	return s.commitApps(apps)
}

// ReplaceApps swaps in a whole new collection (import).
func (s *RecordStore) ReplaceApps(apps []model.App) error {
	if apps == nil {
		apps = []model.App{}
	}
	return s.commitApps(apps)
}

// commitApps persists the new collection, then makes it visible in memory.
// On a save failure the previous state stays in place.
func (s *RecordStore) commitApps(apps []model.App) error {
	if err := s.backend.SaveApps(apps); err != nil {
		return err
	}
	s.data.Apps = apps
	return nil
}

func snapshot(apps []model.App) []model.App {
	out := make([]model.App, len(apps))
	copy(out, apps)
	return out
}
