package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simeonrst/apphub/internal/model"
	"github.com/simeonrst/apphub/internal/storage"
	"github.com/simeonrst/apphub/internal/store"
	"github.com/simeonrst/apphub/internal/tui"
)

func newTestApp(t *testing.T, apps []model.App) tui.App {
	t.Helper()

	records, err := store.Open(storage.NewJSONStorage(t.TempDir()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := records.ReplaceApps(apps); err != nil {
		t.Fatalf("replace apps: %v", err)
	}
	return tui.NewApp(tui.AppParams{Records: records})
}

func press(t *testing.T, app tui.App, r rune) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(tui.App)
}

func pressKey(t *testing.T, app tui.App, key tea.KeyType) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: key})
	return updated.(tui.App)
}

func typeString(t *testing.T, app tui.App, s string) tui.App {
	t.Helper()
	for _, r := range s {
		app = press(t, app, r)
	}
	return app
}

func threeApps() []model.App {
	return []model.App{
		{ID: "a1", Name: "Alpha", URL: "https://alpha.dev", Category: "General"},
		{ID: "a2", Name: "Beta", URL: "https://beta.dev", Category: "General"},
		{ID: "a3", Name: "Gamma", URL: "https://gamma.dev", Category: "General"},
	}
}

func TestApp_Navigation_JK(t *testing.T) {
	app := newTestApp(t, threeApps())

	if app.Cursor() != 0 {
		t.Errorf("expected initial cursor 0, got %d", app.Cursor())
	}

	app = press(t, app, 'j')
	if app.Cursor() != 1 {
		t.Errorf("after j, expected cursor 1, got %d", app.Cursor())
	}

	app = press(t, app, 'k')
	if app.Cursor() != 0 {
		t.Errorf("after k, expected cursor 0, got %d", app.Cursor())
	}

	// k at top should stay at 0 (no wrap)
	app = press(t, app, 'k')
	if app.Cursor() != 0 {
		t.Errorf("k at top should stay at 0, got %d", app.Cursor())
	}
}

func TestApp_Navigation_GG_G(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'G')
	if app.Cursor() != 2 {
		t.Errorf("G should go to last item (2), got %d", app.Cursor())
	}

	app = press(t, app, 'g')
	app = press(t, app, 'g')
	if app.Cursor() != 0 {
		t.Errorf("gg should go to first item (0), got %d", app.Cursor())
	}
}

func TestApp_Navigation_SingleG_Cancelled(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'j')
	app = press(t, app, 'g')
	app = press(t, app, 'j')

	if app.Cursor() != 2 {
		t.Errorf("single g followed by j should cancel gg, cursor at %d", app.Cursor())
	}
}

func TestApp_EmptyCollection(t *testing.T) {
	app := newTestApp(t, nil)

	if app.Cursor() != 0 {
		t.Errorf("cursor should be 0 for empty collection, got %d", app.Cursor())
	}

	// Navigation should not crash
	app = press(t, app, 'j')
	app = press(t, app, 'G')

	if app.Cursor() != 0 {
		t.Errorf("cursor should stay at 0 for empty collection, got %d", app.Cursor())
	}
}

func TestApp_ToggleFavorite(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'F')
	if !app.Visible()[0].Favorite {
		t.Error("F should mark the selected app as favorite")
	}

	app = press(t, app, 'F')
	if app.Visible()[0].Favorite {
		t.Error("F again should clear the favorite flag")
	}
}

func TestApp_FavoritesView(t *testing.T) {
	apps := threeApps()
	apps[1].Favorite = true
	app := newTestApp(t, apps)

	app = press(t, app, 'f')

	visible := app.Visible()
	if len(visible) != 1 {
		t.Fatalf("favorites view should show 1 app, got %d", len(visible))
	}
	if visible[0].Name != "Beta" {
		t.Errorf("expected Beta in favorites view, got %s", visible[0].Name)
	}

	// f again returns to the full view
	app = press(t, app, 'f')
	if len(app.Visible()) != 3 {
		t.Errorf("expected 3 apps after leaving favorites view, got %d", len(app.Visible()))
	}
}

func TestApp_TogglePin_MovesToFront(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'G')
	app = press(t, app, '*')

	visible := app.Visible()
	if visible[0].Name != "Gamma" {
		t.Errorf("pinned app should render first in its group, got %s", visible[0].Name)
	}
	if !visible[0].Pinned {
		t.Error("expected Gamma to be pinned")
	}
}

func TestApp_Filter(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, '/')
	if app.CurrentMode() != tui.ModeFilter {
		t.Fatal("expected filter mode after /")
	}

	app = typeString(t, app, "bet")
	app = pressKey(t, app, tea.KeyEnter)

	if app.CurrentMode() != tui.ModeNormal {
		t.Error("enter should apply the filter and return to normal mode")
	}
	visible := app.Visible()
	if len(visible) != 1 || visible[0].Name != "Beta" {
		t.Fatalf("expected only Beta to match, got %d apps", len(visible))
	}
}

func TestApp_Filter_EscClears(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, '/')
	app = typeString(t, app, "bet")
	app = pressKey(t, app, tea.KeyEsc)

	if len(app.Visible()) != 3 {
		t.Errorf("esc should clear the filter, got %d visible apps", len(app.Visible()))
	}
}

func TestApp_AddApp_OpenAndCancel(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, 'a')
	if app.CurrentMode() != tui.ModeEditor {
		t.Fatal("expected editor mode after a")
	}

	app = pressKey(t, app, tea.KeyEsc)
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected normal mode after esc")
	}
	if len(app.Visible()) != 0 {
		t.Errorf("cancel should not add an app, got %d", len(app.Visible()))
	}
}

func TestApp_AddApp_Submit(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'a')
	app = typeString(t, app, "Jira")
	app = pressKey(t, app, tea.KeyTab)
	app = typeString(t, app, "https://jira.example.com")
	app = pressKey(t, app, tea.KeyEnter)

	if app.CurrentMode() != tui.ModeNormal {
		t.Fatalf("expected normal mode after submit")
	}
	visible := app.Visible()
	if len(visible) != 4 {
		t.Fatalf("expected 4 apps after add, got %d", len(visible))
	}
	added := visible[len(visible)-1]
	if added.Name != "Jira" || added.URL != "https://jira.example.com" {
		t.Errorf("unexpected added app: %+v", added)
	}
	if added.ID == "" {
		t.Error("added app should get a generated ID")
	}
}

func TestApp_AddApp_InvalidURLKeepsDialogOpen(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, 'a')
	app = typeString(t, app, "Broken")
	app = pressKey(t, app, tea.KeyTab)
	app = typeString(t, app, "not a url")
	app = pressKey(t, app, tea.KeyEnter)

	if app.CurrentMode() != tui.ModeEditor {
		t.Error("invalid URL should keep the editor open")
	}
}

func TestApp_DeleteApp_Confirm(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'd')
	if app.CurrentMode() != tui.ModeConfirmDelete {
		t.Fatal("expected delete confirmation after d")
	}

	app = press(t, app, 'y')
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected normal mode after confirming")
	}
	visible := app.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 apps after delete, got %d", len(visible))
	}
	if visible[0].Name != "Beta" {
		t.Errorf("expected Alpha to be gone, first app is %s", visible[0].Name)
	}
}

func TestApp_DeleteApp_Declined(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'd')
	app = press(t, app, 'n')

	if len(app.Visible()) != 3 {
		t.Errorf("declining delete should keep all apps, got %d", len(app.Visible()))
	}
}

func TestApp_Move_CommitsNewOrder(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'm')
	if app.CurrentMode() != tui.ModeMove {
		t.Fatal("expected move mode after m")
	}

	app = press(t, app, 'j')
	app = pressKey(t, app, tea.KeyEnter)

	if app.CurrentMode() != tui.ModeNormal {
		t.Fatal("expected normal mode after drop")
	}
	visible := app.Visible()
	want := []string{"Beta", "Alpha", "Gamma"}
	for i, name := range want {
		if visible[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, visible[i].Name)
		}
	}
	// Cursor follows the dropped app
	if app.Cursor() != 1 {
		t.Errorf("cursor should follow the dropped app to 1, got %d", app.Cursor())
	}
}

func TestApp_Move_EscCancels(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 'm')
	app = press(t, app, 'j')
	app = press(t, app, 'j')
	app = pressKey(t, app, tea.KeyEsc)

	visible := app.Visible()
	want := []string{"Alpha", "Beta", "Gamma"}
	for i, name := range want {
		if visible[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, visible[i].Name)
		}
	}
}

func TestApp_Move_OverFilteredSubset(t *testing.T) {
	apps := []model.App{
		{ID: "a1", Name: "Alpha One", URL: "https://one.dev", Category: "General"},
		{ID: "h1", Name: "Hidden", URL: "https://hidden.dev", Category: "General"},
		{ID: "a2", Name: "Alpha Two", URL: "https://two.dev", Category: "General"},
	}
	app := newTestApp(t, apps)

	// Filter down to the two Alpha apps, then swap them.
	app = press(t, app, '/')
	app = typeString(t, app, "alpha")
	app = pressKey(t, app, tea.KeyEnter)

	app = press(t, app, 'm')
	app = press(t, app, 'j')
	app = pressKey(t, app, tea.KeyEnter)

	// Hidden keeps its absolute slot in the middle.
	app = press(t, app, '/')
	app = pressKey(t, app, tea.KeyEsc)

	visible := app.Visible()
	want := []string{"Alpha Two", "Hidden", "Alpha One"}
	for i, name := range want {
		if visible[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, visible[i].Name)
		}
	}
}

func TestApp_CategoryManager_Open(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, 'c')
	if app.CurrentMode() != tui.ModeCategories {
		t.Error("expected category manager after c")
	}

	app = pressKey(t, app, tea.KeyEsc)
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected normal mode after esc")
	}
}

func TestApp_Search_OpenAndCancel(t *testing.T) {
	app := newTestApp(t, threeApps())

	app = press(t, app, 's')
	if app.CurrentMode() != tui.ModeSearch {
		t.Fatal("expected search mode after s")
	}

	app = pressKey(t, app, tea.KeyEsc)
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected normal mode after esc")
	}
}

func TestApp_Help_AnyKeyCloses(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, '?')
	if app.CurrentMode() != tui.ModeHelp {
		t.Fatal("expected help mode after ?")
	}

	app = press(t, app, 'x')
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("any key should close help")
	}
}
