// Package editor holds the add/edit dialog state machine. The whole state is
// an explicit value, opened against a target ID, never ambient globals.
package editor

import (
	"errors"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/simeonrst/apphub/internal/model"
)

// Mode describes which dialog, if any, is open.
type Mode int

const (
	ModeClosed Mode = iota
	ModeAdd
	ModeEdit
)

// Field identifies the focused form field.
type Field int

const (
	FieldName Field = iota
	FieldURL
	FieldIcon
	FieldCategory

	fieldCount
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrURLRequired  = errors.New("url is required")
	ErrURLInvalid   = errors.New("url must be absolute with an http or https scheme")
)

// Editor is the dialog state. The zero value is closed; open it with
// OpenAdd or OpenEdit.
type Editor struct {
	Mode     Mode
	TargetID string // app being edited, empty in add mode

	Name textinput.Model
	URL  textinput.Model
	Icon textinput.Model

	Categories  []string
	CategoryIdx int

	Focus         Field
	Err           error // last validation failure, shown inline
	ConfirmDelete bool  // delete pressed, waiting for confirmation
}

// New creates a closed Editor over the given category list.
func New(categories []string) Editor {
	name := textinput.New()
	name.Placeholder = "App name"
	name.CharLimit = 100
	name.Width = 40

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = 500
	urlInput.Width = 40

	icon := textinput.New()
	icon.Placeholder = "Icon URL (optional)"
	icon.CharLimit = 500
	icon.Width = 40

	return Editor{
		Mode:       ModeClosed,
		Name:       name,
		URL:        urlInput,
		Icon:       icon,
		Categories: categories,
	}
}

// OpenAdd opens the dialog with cleared fields and the default category.
func (e *Editor) OpenAdd() {
	e.reset()
	e.Mode = ModeAdd
	e.CategoryIdx = e.indexOfCategory(model.DefaultCategory)
	e.Name.Focus()
}

// OpenEdit opens the dialog populated from the given app.
func (e *Editor) OpenEdit(app model.App) {
	e.reset()
	e.Mode = ModeEdit
	e.TargetID = app.ID
	e.Name.SetValue(app.Name)
	e.URL.SetValue(app.URL)
	e.Icon.SetValue(app.Icon)
	e.CategoryIdx = e.indexOfCategory(app.Category)
	e.Name.Focus()
}

// Close discards any in-progress edit.
func (e *Editor) Close() {
	e.reset()
}

// Open reports whether a dialog is showing.
func (e *Editor) Open() bool {
	return e.Mode != ModeClosed
}

// Category returns the currently selected category name.
func (e *Editor) Category() string {
	if len(e.Categories) == 0 {
		return model.DefaultCategory
	}
	if e.CategoryIdx < 0 || e.CategoryIdx >= len(e.Categories) {
		return e.Categories[0]
	}
	return e.Categories[e.CategoryIdx]
}

// NextField moves focus to the next form field.
func (e *Editor) NextField() {
	e.setFocus(Field((int(e.Focus) + 1) % int(fieldCount)))
}

// PrevField moves focus to the previous form field.
func (e *Editor) PrevField() {
	e.setFocus(Field((int(e.Focus) + int(fieldCount) - 1) % int(fieldCount)))
}

// CycleCategory advances the category selection by delta, wrapping around.
func (e *Editor) CycleCategory(delta int) {
	if len(e.Categories) == 0 {
		return
	}
	n := len(e.Categories)
	e.CategoryIdx = ((e.CategoryIdx+delta)%n + n) % n
}

// Validate checks the form per the submit contract: trimmed non-empty name,
// and a URL that parses as absolute http(s). On failure the dialog stays
// open and Err carries the reason.
func (e *Editor) Validate() error {
	name := strings.TrimSpace(e.Name.Value())
	rawURL := strings.TrimSpace(e.URL.Value())

	var err error
	switch {
	case name == "":
		err = ErrNameRequired
	case rawURL == "":
		err = ErrURLRequired
	default:
		err = ValidateURL(rawURL)
	}

	e.Err = err
	return err
}

// Params returns the validated form content. Call Validate first.
func (e *Editor) Params() model.NewAppParams {
	return model.NewAppParams{
		Name:     strings.TrimSpace(e.Name.Value()),
		URL:      strings.TrimSpace(e.URL.Value()),
		Icon:     strings.TrimSpace(e.Icon.Value()),
		Category: e.Category(),
	}
}

// RequestDelete arms the delete confirmation. Only meaningful in edit mode.
func (e *Editor) RequestDelete() {
	if e.Mode == ModeEdit {
		e.ConfirmDelete = true
	}
}

// CancelDelete disarms the confirmation, keeping the dialog open.
func (e *Editor) CancelDelete() {
	e.ConfirmDelete = false
}

func (e *Editor) reset() {
	e.Mode = ModeClosed
	e.TargetID = ""
	e.Name.Reset()
	e.URL.Reset()
	e.Icon.Reset()
	e.CategoryIdx = 0
	e.Err = nil
	e.ConfirmDelete = false
	e.setFocus(FieldName)
}

func (e *Editor) setFocus(f Field) {
	e.Focus = f
	e.Name.Blur()
	e.URL.Blur()
	e.Icon.Blur()
	switch f {
	case FieldName:
		e.Name.Focus()
	case FieldURL:
		e.URL.Focus()
	case FieldIcon:
		e.Icon.Focus()
	}
}

func (e *Editor) indexOfCategory(name string) int {
	for i, c := range e.Categories {
		if c == name {
			return i
		}
	}
	return 0
}

// ValidateURL checks that raw parses as an absolute URL with an http or
// https scheme. Anything else (ftp://, relative paths, garbage) fails.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return ErrURLInvalid
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrURLInvalid
	}
	if u.Host == "" {
		return ErrURLInvalid
	}
	return nil
}
