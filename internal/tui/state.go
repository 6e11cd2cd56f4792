package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/simeonrst/apphub/internal/model"
	"github.com/simeonrst/apphub/internal/search"
	"github.com/simeonrst/apphub/internal/tui/layout"
	"github.com/simeonrst/apphub/internal/weather"
)

// Mode identifies the active interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeEditor
	ModeConfirmDelete
	ModeCategories
	ModeSearch
	ModeMove
	ModeHelp
)

// SearchState holds state for the fuzzy search overlay.
type SearchState struct {
	Input   textinput.Model
	Results []search.Result
	Cursor  int
}

// NewSearchState creates a new SearchState with initialized input.
func NewSearchState(cfg layout.Config) SearchState {
	input := textinput.New()
	input.Placeholder = "Search apps..."
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.StandardWidth
	return SearchState{Input: input}
}

// Reset clears the search state for a new session.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Results = nil
	s.Cursor = 0
}

// Current returns the app under the search cursor, or nil.
func (s *SearchState) Current() *model.App {
	if len(s.Results) == 0 || s.Cursor >= len(s.Results) {
		return nil
	}
	return s.Results[s.Cursor].App
}

// CategoryState holds state for the category manager modal.
type CategoryState struct {
	Input   textinput.Model // new category name
	Cursor  int             // selected category index
	Adding  bool            // input focused, typing a new name
	Confirm string          // category awaiting delete confirmation, "" = none
}

// NewCategoryState creates a new CategoryState with initialized input.
func NewCategoryState(cfg layout.Config) CategoryState {
	input := textinput.New()
	input.Placeholder = "New category"
	input.CharLimit = cfg.Input.NameCharLimit
	input.Width = cfg.Input.StandardWidth
	return CategoryState{Input: input}
}

// Reset clears the category manager state for a new session.
func (c *CategoryState) Reset() {
	c.Input.Reset()
	c.Cursor = 0
	c.Adding = false
	c.Confirm = ""
}

// DeleteState holds the pending list deletion awaiting confirmation.
type DeleteState struct {
	ID   string
	Name string
}

// weatherMsg carries the result of the async weather fetch. A fetch failure
// just leaves the widget blank.
type weatherMsg struct {
	report *weather.Report
	err    error
}
