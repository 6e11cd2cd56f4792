// Package importer parses external app collections: the native JSON export
// format and Netscape bookmark HTML from browsers.
package importer

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/simeonrst/apphub/internal/model"
)

// ErrNotArray means the import file's top-level value is not a JSON array.
// This is a hard failure; nothing is imported.
var ErrNotArray = errors.New("import file must contain a JSON array")

// jsonEntry is the loosely typed shape of one entry in an import file.
// Non-string name/url values simply fail to decode and leave the zero value.
type jsonEntry struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// ParseJSON reads a JSON export. Entries without a string name and url are
// silently dropped; accepted entries get fresh IDs, default flags, and a
// category defaulting to "General".
func ParseJSON(r io.Reader) ([]model.App, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrNotArray
	}

	apps := []model.App{}
	for _, msg := range raw {
		var entry jsonEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			continue
		}
		if entry.Name == "" || entry.URL == "" {
			continue
		}

		apps = append(apps, model.NewApp(model.NewAppParams{
			Name:     entry.Name,
			URL:      entry.URL,
			Icon:     entry.Icon,
			Category: entry.Category,
		}))
	}

	return apps, nil
}
