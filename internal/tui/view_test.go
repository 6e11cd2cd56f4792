package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simeonrst/apphub/internal/model"
)

func TestView_RendersGroupedApps(t *testing.T) {
	apps := []model.App{
		{ID: "a1", Name: "Gmail", URL: "https://mail.google.com", Category: "Work"},
		{ID: "a2", Name: "GitHub", URL: "https://github.com", Category: "Tools"},
	}
	app := newTestApp(t, apps)

	out := app.View()

	for _, want := range []string{"Work", "Tools", "Gmail", "GitHub"} {
		if !strings.Contains(out, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestView_EmptyPlaceholder(t *testing.T) {
	app := newTestApp(t, nil)

	out := app.View()
	if !strings.Contains(out, "No apps yet") {
		t.Error("empty collection should render a placeholder")
	}
}

func TestView_PinnedDivider(t *testing.T) {
	apps := []model.App{
		{ID: "a1", Name: "Pinned App", URL: "https://p.dev", Category: "General", Pinned: true},
		{ID: "a2", Name: "Plain App", URL: "https://u.dev", Category: "General"},
	}
	app := newTestApp(t, apps)

	out := app.View()
	if !strings.Contains(out, "────") {
		t.Error("group with pinned and unpinned apps should render a divider")
	}

	pinnedIdx := strings.Index(out, "Pinned App")
	plainIdx := strings.Index(out, "Plain App")
	if pinnedIdx < 0 || plainIdx < 0 || pinnedIdx > plainIdx {
		t.Error("pinned app should render before unpinned app")
	}
}

func TestView_EditorModal(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, 'a')
	out := app.View()

	for _, want := range []string{"Add App", "Name", "URL", "Category"} {
		if !strings.Contains(out, want) {
			t.Errorf("editor modal should contain %q", want)
		}
	}
}

func TestView_HelpModal(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, '?')
	out := app.View()

	if !strings.Contains(out, "Keys") {
		t.Error("help modal should list key bindings")
	}
}

func TestView_FilterLineShowsQuery(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, '/')
	app = typeString(t, app, "beta")
	app = pressKey(t, app, tea.KeyEnter)

	out := app.View()
	if !strings.Contains(out, "beta") {
		t.Error("applied filter query should be visible")
	}
}
