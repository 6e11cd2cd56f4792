package model

// DefaultCategories returns the seed category list for a fresh install.
// "General" always comes first and can never be deleted.
func DefaultCategories() []string {
	return []string{DefaultCategory, "Work", "Tools", "Media"}
}

// NormalizeCategories ensures the list is non-empty, unique and contains
// "General". Order of the remaining entries is preserved.
func NormalizeCategories(categories []string) []string {
	if len(categories) == 0 {
		return DefaultCategories()
	}

	seen := make(map[string]bool, len(categories))
	result := make([]string, 0, len(categories)+1)

	if !containsCategory(categories, DefaultCategory) {
		result = append(result, DefaultCategory)
		seen[DefaultCategory] = true
	}

	for _, c := range categories {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		result = append(result, c)
	}

	return result
}

func containsCategory(categories []string, name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}
