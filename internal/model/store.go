package model

// Store holds the ordered app collection and the category list.
type Store struct {
	Apps       []App    `json:"apps"`
	Categories []string `json:"categories"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Apps:       []App{},
		Categories: DefaultCategories(),
	}
}

// GetAppByID finds an app by ID, returns nil if not found.
func (s *Store) GetAppByID(id string) *App {
	for i := range s.Apps {
		if s.Apps[i].ID == id {
			return &s.Apps[i]
		}
	}
	return nil
}

// IndexOfApp returns the position of the app with the given ID, or -1.
func (s *Store) IndexOfApp(id string) int {
	for i := range s.Apps {
		if s.Apps[i].ID == id {
			return i
		}
	}
	return -1
}

// AppIDs returns the IDs of all apps in collection order.
func (s *Store) AppIDs() []string {
	ids := make([]string, len(s.Apps))
	for i := range s.Apps {
		ids[i] = s.Apps[i].ID
	}
	return ids
}

// HasCategory reports whether the category list contains name (exact match).
func (s *Store) HasCategory(name string) bool {
	return containsCategory(s.Categories, name)
}

// HasAppURL reports whether any app already points at the given URL.
func (s *Store) HasAppURL(url string) bool {
	for i := range s.Apps {
		if s.Apps[i].URL == url {
			return true
		}
	}
	return false
}

// SeedApps returns the two example records a fresh install starts with.
func SeedApps() []App {
	google := NewApp(NewAppParams{Name: "Google", URL: "https://google.com", Category: "Work"})
	github := NewApp(NewAppParams{Name: "GitHub", URL: "https://github.com", Category: "Tools"})
	return []App{google, github}
}
