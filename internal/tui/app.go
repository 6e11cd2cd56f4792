package tui

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simeonrst/apphub/internal/editor"
	"github.com/simeonrst/apphub/internal/model"
	"github.com/simeonrst/apphub/internal/reorder"
	"github.com/simeonrst/apphub/internal/search"
	"github.com/simeonrst/apphub/internal/storage"
	"github.com/simeonrst/apphub/internal/store"
	"github.com/simeonrst/apphub/internal/tui/layout"
	"github.com/simeonrst/apphub/internal/view"
	"github.com/simeonrst/apphub/internal/weather"
)

// App is the main bubbletea model for the launcher dashboard.
type App struct {
	records      *store.RecordStore
	config       *storage.Config
	keys         KeyMap
	styles       Styles
	layoutConfig layout.Config

	mode      Mode
	viewMode  view.Mode
	projected view.View
	visible   []model.App // rendered apps in display order
	cursor    int

	// Local filter
	filterInput textinput.Model
	filterQuery string

	// Modal state
	form       editor.Editor
	search     SearchState
	categories CategoryState
	pendingDel DeleteState

	// Drag reorder
	drag       *reorder.Session
	dragBefore []string // visible IDs captured at grab time

	weather *weather.Report
	status  string

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Records *store.RecordStore
	Config  *storage.Config // optional, disables weather if nil
	Keys    *KeyMap         // optional, uses default if nil
	Styles  *Styles         // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()

	filterInput := textinput.New()
	filterInput.Placeholder = "Filter..."
	filterInput.CharLimit = layoutConfig.Input.FilterCharLimit
	filterInput.Width = layoutConfig.Input.FilterWidth

	app := App{
		records:      params.Records,
		config:       params.Config,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		mode:         ModeNormal,
		viewMode:     view.ModeAll,
		filterInput:  filterInput,
		form:         editor.New(params.Records.Categories()),
		search:       NewSearchState(layoutConfig),
		categories:   NewCategoryState(layoutConfig),
		width:        80,
		height:       24,
	}

	app.refresh()
	return app
}

// refresh reprojects the collection and clamps the cursor.
func (a *App) refresh() {
	a.projected = view.Project(a.records.Apps(), a.filterQuery, a.viewMode)

	a.visible = nil
	if a.viewMode == view.ModeFavorites {
		a.visible = append(a.visible, a.projected.Flat...)
	} else {
		for _, g := range a.projected.Groups {
			a.visible = append(a.visible, g.Apps()...)
		}
	}

	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// currentApp returns the app under the cursor, or nil.
func (a *App) currentApp() *model.App {
	if len(a.visible) == 0 || a.cursor >= len(a.visible) {
		return nil
	}
	return &a.visible[a.cursor]
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// CurrentMode returns the active interaction mode.
func (a App) CurrentMode() Mode {
	return a.mode
}

// Visible returns the rendered apps in display order.
func (a App) Visible() []model.App {
	return a.visible
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.config != nil && a.config.WeatherEnabled() {
		return fetchWeather(a.config)
	}
	return nil
}

// fetchWeather fetches the forecast in the background. Failures degrade to
// an empty widget.
func fetchWeather(config *storage.Config) tea.Cmd {
	lat, lon, unit := config.Latitude, config.Longitude, config.TemperatureUnit
	return func() tea.Msg {
		report, err := weather.NewClient().Fetch(lat, lon, unit)
		return weatherMsg{report: report, err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case weatherMsg:
		if msg.err == nil {
			a.weather = msg.report
		}
		return a, nil

	case tea.KeyMsg:
		a.status = ""

		switch a.mode {
		case ModeNormal:
			return a.updateNormal(msg)
		case ModeFilter:
			return a.updateFilter(msg)
		case ModeEditor:
			return a.updateEditor(msg)
		case ModeConfirmDelete:
			return a.updateConfirmDelete(msg)
		case ModeCategories:
			return a.updateCategories(msg)
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeMove:
			return a.updateMove(msg)
		case ModeHelp:
			a.mode = ModeNormal
			return a, nil
		}
	}

	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.visible) > 0 && a.cursor < len(a.visible)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}

	case key.Matches(msg, a.keys.Open):
		if app := a.currentApp(); app != nil {
			openURL(app.URL)
		}

	case key.Matches(msg, a.keys.Add):
		a.form.Categories = a.records.Categories()
		a.form.OpenAdd()
		a.mode = ModeEditor

	case key.Matches(msg, a.keys.Edit):
		if app := a.currentApp(); app != nil {
			a.form.Categories = a.records.Categories()
			a.form.OpenEdit(*app)
			a.mode = ModeEditor
		}

	case key.Matches(msg, a.keys.Delete):
		if app := a.currentApp(); app != nil {
			a.pendingDel = DeleteState{ID: app.ID, Name: app.Name}
			a.mode = ModeConfirmDelete
		}

	case key.Matches(msg, a.keys.Favorite):
		if app := a.currentApp(); app != nil {
			if err := a.records.ToggleFavorite(app.ID); err != nil {
				a.status = err.Error()
			}
			a.refresh()
		}

	case key.Matches(msg, a.keys.Pin):
		if app := a.currentApp(); app != nil {
			if err := a.records.TogglePinned(app.ID); err != nil {
				a.status = err.Error()
			}
			a.refresh()
		}

	case key.Matches(msg, a.keys.Favorites):
		if a.viewMode == view.ModeFavorites {
			a.viewMode = view.ModeAll
		} else {
			a.viewMode = view.ModeFavorites
		}
		a.cursor = 0
		a.refresh()

	case key.Matches(msg, a.keys.Filter):
		a.mode = ModeFilter
		a.filterInput.SetValue(a.filterQuery)
		a.filterInput.Focus()

	case key.Matches(msg, a.keys.Search):
		a.search.Reset()
		a.search.Input.Focus()
		a.mode = ModeSearch

	case key.Matches(msg, a.keys.Grab):
		if app := a.currentApp(); app != nil && len(a.visible) > 1 {
			a.dragBefore = a.projected.VisibleIDs()
			a.drag = reorder.Start(app.ID, a.dragBefore)
			a.mode = ModeMove
		}

	case key.Matches(msg, a.keys.Categories):
		a.categories.Reset()
		a.mode = ModeCategories

	case key.Matches(msg, a.keys.YankURL):
		if app := a.currentApp(); app != nil {
			if err := clipboard.WriteAll(app.URL); err != nil {
				a.status = fmt.Sprintf("clipboard: %v", err)
			} else {
				a.status = "URL copied"
			}
		}

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.filterQuery = a.filterInput.Value()
		a.filterInput.Blur()
		a.mode = ModeNormal
		a.refresh()
		return a, nil

	case "esc":
		a.filterQuery = ""
		a.filterInput.Reset()
		a.filterInput.Blur()
		a.mode = ModeNormal
		a.refresh()
		return a, nil
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	a.filterQuery = a.filterInput.Value()
	a.cursor = 0
	a.refresh()
	return a, cmd
}

func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.form.ConfirmDelete {
		switch msg.String() {
		case "y", "Y", "enter":
			if err := a.records.Remove(a.form.TargetID); err != nil {
				a.status = err.Error()
			}
			a.form.Close()
			a.mode = ModeNormal
			a.refresh()
		case "n", "N", "esc":
			a.form.CancelDelete()
		}
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.form.Close()
		a.mode = ModeNormal
		return a, nil

	case "tab", "down":
		a.form.NextField()
		return a, nil

	case "shift+tab", "up":
		a.form.PrevField()
		return a, nil

	case "enter":
		if err := a.form.Validate(); err != nil {
			return a, nil
		}
		params := a.form.Params()
		var err error
		if a.form.Mode == editor.ModeAdd {
			err = a.records.Add(model.NewApp(params))
		} else {
			err = a.records.Update(a.form.TargetID, params)
		}
		if err != nil {
			a.status = err.Error()
		}
		a.form.Close()
		a.mode = ModeNormal
		a.refresh()
		return a, nil

	case "ctrl+d":
		a.form.RequestDelete()
		return a, nil
	}

	if a.form.Focus == editor.FieldCategory {
		switch msg.String() {
		case "left", "h":
			a.form.CycleCategory(-1)
			return a, nil
		case "right", "l", " ":
			a.form.CycleCategory(1)
			return a, nil
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.form.Focus {
	case editor.FieldName:
		a.form.Name, cmd = a.form.Name.Update(msg)
	case editor.FieldURL:
		a.form.URL, cmd = a.form.URL.Update(msg)
	case editor.FieldIcon:
		a.form.Icon, cmd = a.form.Icon.Update(msg)
	}
	return a, cmd
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if err := a.records.Remove(a.pendingDel.ID); err != nil {
			a.status = err.Error()
		}
		a.pendingDel = DeleteState{}
		a.mode = ModeNormal
		a.refresh()
	case "n", "N", "esc":
		a.pendingDel = DeleteState{}
		a.mode = ModeNormal
	}
	return a, nil
}

func (a App) updateCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := a.records.Categories()

	if a.categories.Adding {
		switch msg.String() {
		case "enter":
			name := a.categories.Input.Value()
			if err := a.records.AddCategory(name); err != nil {
				a.status = err.Error()
			}
			a.categories.Input.Reset()
			a.categories.Input.Blur()
			a.categories.Adding = false
			return a, nil
		case "esc":
			a.categories.Input.Reset()
			a.categories.Input.Blur()
			a.categories.Adding = false
			return a, nil
		}
		var cmd tea.Cmd
		a.categories.Input, cmd = a.categories.Input.Update(msg)
		return a, cmd
	}

	if a.categories.Confirm != "" {
		switch msg.String() {
		case "y", "Y", "enter":
			if err := a.records.DeleteCategory(a.categories.Confirm); err != nil {
				a.status = err.Error()
			}
			a.categories.Confirm = ""
			if a.categories.Cursor >= len(a.records.Categories()) {
				a.categories.Cursor = len(a.records.Categories()) - 1
			}
			a.refresh()
		case "n", "N", "esc":
			a.categories.Confirm = ""
		}
		return a, nil
	}

	switch msg.String() {
	case "esc", "q", "c":
		a.mode = ModeNormal
		return a, nil

	case "j", "down":
		if a.categories.Cursor < len(names)-1 {
			a.categories.Cursor++
		}

	case "k", "up":
		if a.categories.Cursor > 0 {
			a.categories.Cursor--
		}

	case "a":
		a.categories.Adding = true
		a.categories.Input.Focus()

	case "d":
		if len(names) > 0 && a.categories.Cursor < len(names) {
			name := names[a.categories.Cursor]
			if name == model.DefaultCategory {
				a.status = store.ErrCategoryProtected.Error()
			} else {
				a.categories.Confirm = name
			}
		}
	}

	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.search.Reset()
		a.mode = ModeNormal
		return a, nil

	case "enter":
		if app := a.search.Current(); app != nil {
			openURL(app.URL)
		}
		a.search.Reset()
		a.mode = ModeNormal
		return a, nil

	case "down", "ctrl+n":
		if a.search.Cursor < len(a.search.Results)-1 {
			a.search.Cursor++
		}
		return a, nil

	case "up", "ctrl+p":
		if a.search.Cursor > 0 {
			a.search.Cursor--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.search.Results = search.FuzzySearchApps(a.records.Apps(), a.search.Input.Value())
	a.search.Cursor = 0
	return a, cmd
}

func (a App) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	order := a.drag.Order()
	at := indexOf(order, a.drag.DraggedID())

	switch msg.String() {
	case "j", "down":
		if at >= 0 && at < len(order)-1 {
			a.drag.Hover(order[at+1], false)
		}
		return a, nil

	case "k", "up":
		if at > 0 {
			a.drag.Hover(order[at-1], true)
		}
		return a, nil

	case "enter", "m":
		draggedID := a.drag.DraggedID()
		after := a.drag.Drop()
		merged := reorder.MergeVisible(a.appIDs(), a.dragBefore, after)
		if err := a.records.Reorder(merged); err != nil {
			a.status = err.Error()
		}
		a.drag = nil
		a.dragBefore = nil
		a.mode = ModeNormal
		a.refresh()
		for i := range a.visible {
			if a.visible[i].ID == draggedID {
				a.cursor = i
				break
			}
		}
		return a, nil

	case "esc":
		a.drag.Cancel()
		a.drag = nil
		a.dragBefore = nil
		a.mode = ModeNormal
		return a, nil
	}

	return a, nil
}

func (a *App) appIDs() []string {
	apps := a.records.Apps()
	ids := make([]string, len(apps))
	for i := range apps {
		ids[i] = apps[i].ID
	}
	return ids
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
