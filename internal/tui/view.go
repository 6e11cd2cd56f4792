package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simeonrst/apphub/internal/editor"
	"github.com/simeonrst/apphub/internal/model"
	"github.com/simeonrst/apphub/internal/tui/layout"
	"github.com/simeonrst/apphub/internal/view"
	"github.com/simeonrst/apphub/internal/weather"
)

// renderView creates the complete dashboard view.
func (a App) renderView() string {
	switch a.mode {
	case ModeEditor, ModeConfirmDelete, ModeCategories, ModeSearch, ModeHelp:
		return a.renderModal()
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	if a.mode == ModeFilter || a.filterQuery != "" {
		b.WriteString(a.renderFilterLine())
		b.WriteString("\n")
	}

	if a.mode == ModeMove {
		b.WriteString(a.renderMoveList())
	} else {
		b.WriteString(a.renderList())
	}

	b.WriteString("\n")
	b.WriteString(a.renderHints(a.getContextualHints()))

	content := lipgloss.NewStyle().Padding(1, 2).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the title line with counts and the weather line.
func (a App) renderHeader() string {
	title := a.styles.Title.Render("apphub")

	counts := fmt.Sprintf("%d apps · %d favorites", a.projected.Total, a.projected.FavoriteCount)
	if a.viewMode == view.ModeFavorites {
		counts += " · favorites view"
	}
	header := title + "  " + a.styles.Header.Render(counts)

	if a.weather != nil {
		header += "\n" + a.styles.Weather.Render(a.renderWeatherLine())
	}
	if a.status != "" {
		header += "\n" + a.styles.Status.Render(a.status)
	}
	return header
}

// renderWeatherLine formats current conditions plus the short forecast.
func (a App) renderWeatherLine() string {
	w := a.weather
	unit := "°C"
	if w.Unit == "fahrenheit" {
		unit = "°F"
	}

	parts := []string{fmt.Sprintf("%s %.0f%s", weather.Glyph(w.Code), w.Temperature, unit)}
	for _, d := range w.Days {
		parts = append(parts, fmt.Sprintf("%s %s %.0f/%.0f",
			d.Date.Format("Mon"), weather.Glyph(d.Code), d.Min, d.Max))
	}
	return strings.Join(parts, "  ")
}

// renderFilterLine shows the filter input (active) or the applied query.
func (a App) renderFilterLine() string {
	if a.mode == ModeFilter {
		return a.styles.Muted.Render("Filter: ") + a.filterInput.View()
	}
	return a.styles.Muted.Render("Filter: " + a.filterQuery + "  (/ to change, esc clears)")
}

// renderList renders the grouped or flat app list.
func (a App) renderList() string {
	if a.projected.Empty() {
		return a.styles.Muted.Render(a.emptyPlaceholder())
	}

	var b strings.Builder

	if a.viewMode == view.ModeFavorites {
		for i, app := range a.projected.Flat {
			b.WriteString(a.renderItem(app, i == a.cursor, false))
			b.WriteString("\n")
		}
		return b.String()
	}

	idx := 0
	for _, g := range a.projected.Groups {
		b.WriteString(a.styles.Category.Render(g.Category))
		b.WriteString("\n")
		for _, app := range g.Pinned {
			b.WriteString(a.renderItem(app, idx == a.cursor, false))
			b.WriteString("\n")
			idx++
		}
		if g.Divider {
			b.WriteString(a.styles.Divider.Render("  ────────"))
			b.WriteString("\n")
		}
		for _, app := range g.Unpinned {
			b.WriteString(a.renderItem(app, idx == a.cursor, false))
			b.WriteString("\n")
			idx++
		}
	}
	return b.String()
}

// renderMoveList renders the flat drag order with the grabbed app highlighted.
func (a App) renderMoveList() string {
	byID := make(map[string]model.App, len(a.visible))
	for _, app := range a.visible {
		byID[app.ID] = app
	}

	var b strings.Builder
	b.WriteString(a.styles.Muted.Render("Moving: j/k to shift, enter drops, esc cancels"))
	b.WriteString("\n")
	for _, id := range a.drag.Order() {
		app, ok := byID[id]
		if !ok {
			continue
		}
		grabbed := id == a.drag.DraggedID()
		b.WriteString(a.renderItem(app, grabbed, grabbed))
		b.WriteString("\n")
	}
	return b.String()
}

// renderItem renders one app row.
func (a App) renderItem(app model.App, selected, grabbed bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	var flags string
	if app.Pinned {
		flags += "● "
	}
	if app.Favorite {
		flags += "★ "
	}

	name, _ := layout.TruncateText(app.Name, 40, a.layoutConfig.Text)
	url, _ := layout.TruncateText(app.URL, 50, a.layoutConfig.Text)

	line := marker + flags + name
	switch {
	case grabbed:
		return a.styles.GrabbedItem.Render(line) + "  " + a.styles.URL.Render(url)
	case selected:
		return a.styles.SelectedItem.Render(line) + "  " + a.styles.URL.Render(url)
	default:
		return a.styles.Item.Render(line) + "  " + a.styles.URL.Render(url)
	}
}

func (a App) emptyPlaceholder() string {
	switch {
	case a.viewMode == view.ModeFavorites:
		return "No favorites yet. Press F on an app to favorite it."
	case a.filterQuery != "":
		return "No apps match \"" + a.filterQuery + "\"."
	default:
		return "No apps yet. Press a to add one."
	}
}

// renderModal renders the active modal dialog centered on screen.
func (a App) renderModal() string {
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal)
	modalStyle := a.styles.Modal.Width(modalWidth)

	var body string
	switch a.mode {
	case ModeEditor:
		body = a.renderEditorModal()
	case ModeConfirmDelete:
		body = a.renderConfirmDeleteModal()
	case ModeCategories:
		body = a.renderCategoriesModal()
	case ModeSearch:
		body = a.renderSearchModal()
	case ModeHelp:
		body = a.renderHelpModal()
	}

	modal := modalStyle.Render(body)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

func (a App) renderEditorModal() string {
	var b strings.Builder

	if a.form.TargetID == "" {
		b.WriteString(a.styles.ModalTitle.Render("Add App"))
	} else {
		b.WriteString(a.styles.ModalTitle.Render("Edit App"))
	}
	b.WriteString("\n")

	if a.form.ConfirmDelete {
		b.WriteString("Delete this app?\n\n")
		b.WriteString(a.renderHintsInline([]Hint{
			{Key: "y", Desc: "delete"},
			{Key: "n", Desc: "keep"},
		}))
		return b.String()
	}

	b.WriteString(a.styles.InputLabel.Render("Name") + "\n")
	b.WriteString(a.form.Name.View() + "\n\n")
	b.WriteString(a.styles.InputLabel.Render("URL") + "\n")
	b.WriteString(a.form.URL.View() + "\n\n")
	b.WriteString(a.styles.InputLabel.Render("Icon") + "\n")
	b.WriteString(a.form.Icon.View() + "\n\n")

	category := a.form.Category()
	catLine := "  " + category
	if a.form.Focus == editor.FieldCategory {
		catLine = a.styles.SelectedItem.Render("> " + category + "  (h/l to change)")
	}
	b.WriteString(a.styles.InputLabel.Render("Category") + "\n")
	b.WriteString(catLine + "\n")

	if a.form.Err != nil {
		b.WriteString("\n" + a.styles.Error.Render(a.form.Err.Error()) + "\n")
	}

	b.WriteString("\n")
	hints := []Hint{
		{Key: "Tab", Desc: "next"},
		{Key: "Enter", Desc: "save"},
		{Key: "Esc", Desc: "cancel"},
	}
	if a.form.TargetID != "" {
		hints = append(hints, Hint{Key: "^d", Desc: "delete"})
	}
	b.WriteString(a.renderHintsInline(hints))
	return b.String()
}

func (a App) renderConfirmDeleteModal() string {
	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Delete App"))
	b.WriteString("\n")
	b.WriteString("Delete \"" + a.pendingDel.Name + "\"?\n\n")
	b.WriteString(a.renderHintsInline([]Hint{
		{Key: "y", Desc: "delete"},
		{Key: "n", Desc: "keep"},
	}))
	return b.String()
}

func (a App) renderCategoriesModal() string {
	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Categories"))
	b.WriteString("\n")

	names := a.records.Categories()
	for i, name := range names {
		line := "  " + name
		if name == model.DefaultCategory {
			line += a.styles.Muted.Render("  (protected)")
		}
		if i == a.categories.Cursor && !a.categories.Adding {
			line = a.styles.SelectedItem.Render("> " + name)
			if name == model.DefaultCategory {
				line += a.styles.Muted.Render("  (protected)")
			}
		}
		b.WriteString(line + "\n")
	}

	if a.categories.Confirm != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(
			"Delete \"" + a.categories.Confirm + "\"? Its apps move to " + model.DefaultCategory + "."))
		b.WriteString("\n")
		b.WriteString(a.renderHintsInline([]Hint{
			{Key: "y", Desc: "delete"},
			{Key: "n", Desc: "keep"},
		}))
		return b.String()
	}

	if a.categories.Adding {
		b.WriteString("\n" + a.categories.Input.View() + "\n")
	}

	if a.status != "" {
		b.WriteString("\n" + a.styles.Error.Render(a.status) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderHintsInline([]Hint{
		{Key: "a", Desc: "add"},
		{Key: "d", Desc: "delete"},
		{Key: "Esc", Desc: "close"},
	}))
	return b.String()
}

func (a App) renderSearchModal() string {
	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(a.search.Input.View() + "\n\n")

	if len(a.search.Results) == 0 {
		if a.search.Input.Value() != "" {
			b.WriteString(a.styles.Muted.Render("No matches") + "\n")
		}
	} else {
		start, end := layout.CalculateVisibleListItems(
			a.layoutConfig.Modal.SearchMaxVisible, a.search.Cursor, len(a.search.Results))
		for i := start; i < end; i++ {
			app := a.search.Results[i].App
			name, _ := layout.TruncateText(app.Name, 40, a.layoutConfig.Text)
			if i == a.search.Cursor {
				b.WriteString(a.styles.SelectedItem.Render("> "+name) + "  " + a.styles.URL.Render(app.URL) + "\n")
			} else {
				b.WriteString(a.styles.Item.Render("  "+name) + "  " + a.styles.URL.Render(app.URL) + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(a.renderHintsInline([]Hint{
		{Key: "↑/↓", Desc: "move"},
		{Key: "Enter", Desc: "open"},
		{Key: "Esc", Desc: "cancel"},
	}))
	return b.String()
}

func (a App) renderHelpModal() string {
	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Keys"))
	b.WriteString("\n")

	rows := []Hint{
		{Key: "j/k", Desc: "move cursor"},
		{Key: "gg/G", Desc: "top / bottom"},
		{Key: "o/enter", Desc: "open in browser"},
		{Key: "a", Desc: "add app"},
		{Key: "e", Desc: "edit app"},
		{Key: "d", Desc: "delete app"},
		{Key: "F", Desc: "toggle favorite"},
		{Key: "*", Desc: "pin / unpin"},
		{Key: "f", Desc: "favorites view"},
		{Key: "/", Desc: "filter"},
		{Key: "s", Desc: "fuzzy search"},
		{Key: "m", Desc: "grab and reorder"},
		{Key: "c", Desc: "manage categories"},
		{Key: "Y", Desc: "copy URL"},
		{Key: "q", Desc: "quit"},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			a.styles.HintKey.Render(fmt.Sprintf("%-8s", r.Key)),
			a.styles.HintDesc.Render(r.Desc)))
	}

	b.WriteString("\n")
	b.WriteString(a.renderHintsInline([]Hint{{Key: "any key", Desc: "close"}}))
	return b.String()
}
