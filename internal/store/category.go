package store

import "github.com/simeonrst/apphub/internal/model"

// AddCategory appends a category and persists. Adding a name that already
// exists (case-sensitive) is a silent no-op.
func (s *RecordStore) AddCategory(name string) error {
	if name == "" || s.data.HasCategory(name) {
		return nil
	}

	categories := append(snapshotStrings(s.data.Categories), name)
	if err := s.backend.SaveCategories(categories); err != nil {
		return err
	}
	s.data.Categories = categories
	return nil
}

// DeleteCategory removes a category and reassigns every app that carried it
// to "General", persisting both the category list and the app collection.
// Favorite and pinned flags on reassigned apps are preserved.
// Deleting "General" is refused with ErrCategoryProtected.
func (s *RecordStore) DeleteCategory(name string) error {
	if name == model.DefaultCategory {
		return ErrCategoryProtected
	}
	if !s.data.HasCategory(name) {
		return nil
	}

	categories := make([]string, 0, len(s.data.Categories)-1)
	for _, c := range s.data.Categories {
		if c != name {
			categories = append(categories, c)
		}
	}

	apps := snapshot(s.data.Apps)
	for i := range apps {
		if apps[i].Category == name {
			apps[i].Category = model.DefaultCategory
		}
	}

	if err := s.backend.SaveCategories(categories); err != nil {
		return err
	}
	if err := s.backend.SaveApps(apps); err != nil {
		return err
	}

	s.data.Categories = categories
	s.data.Apps = apps
	return nil
}

func snapshotStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
