// Package exporter writes the app collection out as a JSON export or a
// static HTML dashboard page.
package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/simeonrst/apphub/internal/model"
)

// DefaultFilename is the export filename the browser version offered.
const DefaultFilename = "my-apps.json"

// ExportJSON renders the collection as a pretty-printed JSON array,
// importable by ParseJSON and by the original browser dashboard.
func ExportJSON(apps []model.App) ([]byte, error) {
	if apps == nil {
		apps = []model.App{}
	}
	return json.MarshalIndent(apps, "", "  ")
}

// DefaultExportPath returns the default export file path: ~/Downloads/my-apps.json
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads", DefaultFilename), nil
}
