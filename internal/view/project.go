// Package view turns the app collection into the render model: filtered,
// grouped by category, pinned first. Pure functions only.
package view

import (
	"strings"

	"github.com/simeonrst/apphub/internal/model"
)

// Mode selects the projection variant.
type Mode int

const (
	// ModeAll shows every matching app, grouped by category.
	ModeAll Mode = iota
	// ModeFavorites shows only favorites as a single flat list.
	ModeFavorites
)

// Group is one category column of the rendered grid. Pinned apps render
// before unpinned ones; Divider is set when both partitions are non-empty.
type Group struct {
	Category string
	Pinned   []model.App
	Unpinned []model.App
	Divider  bool
}

// Apps returns the group's apps in render order.
func (g Group) Apps() []model.App {
	out := make([]model.App, 0, len(g.Pinned)+len(g.Unpinned))
	out = append(out, g.Pinned...)
	out = append(out, g.Unpinned...)
	return out
}

// View is the projected render model.
type View struct {
	Groups        []Group     // grouped view (ModeAll)
	Flat          []model.App // flat view (ModeFavorites)
	Mode          Mode
	Total         int // all stored apps, regardless of filter
	FavoriteCount int // favorites among the filtered set
}

// Empty reports whether the projection has nothing to render, so callers can
// show a placeholder instead of zero columns.
func (v View) Empty() bool {
	if v.Mode == ModeFavorites {
		return len(v.Flat) == 0
	}
	return len(v.Groups) == 0
}

// VisibleIDs returns the IDs of every rendered app in display order.
func (v View) VisibleIDs() []string {
	if v.Mode == ModeFavorites {
		ids := make([]string, len(v.Flat))
		for i := range v.Flat {
			ids[i] = v.Flat[i].ID
		}
		return ids
	}

	var ids []string
	for _, g := range v.Groups {
		for _, a := range g.Apps() {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// Project computes the render model for the given filter text and mode.
// Deterministic: category groups appear in the order their first matching
// app appears in the collection, and relative order within each pinned or
// unpinned partition follows collection order.
func Project(apps []model.App, filter string, mode Mode) View {
	v := View{Mode: mode, Total: len(apps)}

	if mode == ModeFavorites {
		for _, a := range apps {
			if a.Favorite {
				v.Flat = append(v.Flat, a)
			}
		}
		v.FavoriteCount = len(v.Flat)
		return v
	}

	filtered := filterApps(apps, filter)
	for _, a := range filtered {
		if a.Favorite {
			v.FavoriteCount++
		}
	}

	order := []string{}
	byCategory := map[string]*Group{}
	for _, a := range filtered {
		g, ok := byCategory[a.Category]
		if !ok {
			g = &Group{Category: a.Category}
			byCategory[a.Category] = g
			order = append(order, a.Category)
		}
		if a.Pinned {
			g.Pinned = append(g.Pinned, a)
		} else {
			g.Unpinned = append(g.Unpinned, a)
		}
	}

	for _, category := range order {
		g := byCategory[category]
		g.Divider = len(g.Pinned) > 0 && len(g.Unpinned) > 0
		v.Groups = append(v.Groups, *g)
	}

	return v
}

// filterApps keeps apps whose name or URL contains the filter text,
// case-insensitively. An empty filter matches everything.
func filterApps(apps []model.App, filter string) []model.App {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return apps
	}

	var out []model.App
	for _, a := range apps {
		if strings.Contains(strings.ToLower(a.Name), filter) ||
			strings.Contains(strings.ToLower(a.URL), filter) {
			out = append(out, a)
		}
	}
	return out
}
