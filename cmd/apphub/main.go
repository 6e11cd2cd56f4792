package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simeonrst/apphub/internal/exporter"
	"github.com/simeonrst/apphub/internal/health"
	"github.com/simeonrst/apphub/internal/importer"
	"github.com/simeonrst/apphub/internal/model"
	"github.com/simeonrst/apphub/internal/picker"
	"github.com/simeonrst/apphub/internal/search"
	"github.com/simeonrst/apphub/internal/storage"
	"github.com/simeonrst/apphub/internal/store"
	"github.com/simeonrst/apphub/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: apphub import <file.json|file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			runExport(os.Args[2:])
			return
		case "check":
			runCheck()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `apphub - personal app launcher dashboard

Usage:
  apphub                     Open interactive dashboard
  apphub <query>             Quick search → select → open
  apphub import <file>       Import apps from JSON or bookmark HTML
  apphub export [path]       Export apps to JSON (default ~/Downloads/my-apps.json)
  apphub export --html [path]  Export a static HTML dashboard
  apphub check               Check which app URLs still respond
  apphub help                Show this help

Dashboard Keybindings:
  Navigation:
    j/k         Move down/up
    gg/G        Jump to top/bottom
    o/Enter     Open app in browser

  Views:
    /           Filter by name or URL
    f           Favorites view
    s           Fuzzy search overlay

  Editing:
    a           Add app
    e           Edit app
    d           Delete app
    F           Toggle favorite
    *           Pin / unpin
    m           Grab and reorder
    c           Manage categories
    Y           Copy URL to clipboard

  Other:
    ?           Show help overlay
    q           Quit

Data Storage:
  ~/.config/apphub/apphub.v1.apps.json
  ~/.config/apphub/apphub.v1.categories.json
  (or ~/.config/apphub/apphub.db when the SQLite backend is in use)
`
	fmt.Print(help)
}

// openRecords opens the storage backend and loads the collection.
func openRecords() *store.RecordStore {
	backend, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	records, err := store.Open(backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading apps: %v\n", err)
		os.Exit(1)
	}
	return records
}

// runTUI runs the full interactive dashboard.
func runTUI() {
	records := openRecords()

	// Config is optional; the dashboard runs without a weather widget.
	var config *storage.Config
	if configPath, err := storage.DefaultConfigFilePath(); err == nil {
		config, _ = storage.LoadConfig(configPath)
	}

	app := tui.NewApp(tui.AppParams{Records: records, Config: config})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and opens the selected app.
func runQuickSearch(query string) {
	records := openRecords()

	results := search.FuzzySearchApps(records.Apps(), query)
	if len(results) == 0 {
		fmt.Printf("No apps found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.App

	if len(results) == 1 {
		selected = results[0].App
		fmt.Printf("Opening: %s\n", selected.Name)
	} else {
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedApp()
	}

	if selected == nil {
		os.Exit(0)
	}

	openURL(selected.URL)
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

// runImport handles the import subcommand. JSON files replace the whole
// collection; bookmark HTML files merge into it.
func runImport(filePath string) {
	records := openRecords()

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".html", ".htm":
		importHTML(records, file)
	default:
		importJSON(records, file)
	}
}

func importJSON(records *store.RecordStore, file *os.File) {
	apps, err := importer.ParseJSON(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	if err := records.ReplaceApps(apps); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving apps: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d apps\n", len(apps))
}

func importHTML(records *store.RecordStore, file *os.File) {
	apps, categories, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	for _, category := range categories {
		if err := records.AddCategory(category); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving categories: %v\n", err)
			os.Exit(1)
		}
	}

	existing := make(map[string]bool, len(records.Apps()))
	for _, a := range records.Apps() {
		existing[a.URL] = true
	}

	added, skipped := 0, 0
	for _, app := range apps {
		if existing[app.URL] {
			skipped++
			continue
		}
		if err := records.Add(app); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving apps: %v\n", err)
			os.Exit(1)
		}
		existing[app.URL] = true
		added++
	}

	fmt.Printf("Imported %d apps", added)
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(args []string) {
	asHTML := false
	var outputPath string
	for _, arg := range args {
		if arg == "--html" {
			asHTML = true
			continue
		}
		outputPath = arg
	}

	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
		if asHTML {
			outputPath = strings.TrimSuffix(outputPath, ".json") + ".html"
		}
	}

	records := openRecords()

	var data []byte
	if asHTML {
		data = []byte(exporter.ExportHTML(records.Apps()))
	} else {
		var err error
		data, err = exporter.ExportJSON(records.Apps())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding apps: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d apps to %s\n", len(records.Apps()), outputPath)
}

// runCheck handles the check subcommand.
func runCheck() {
	records := openRecords()
	apps := records.Apps()
	if len(apps) == 0 {
		fmt.Println("No apps to check")
		return
	}

	targets := make([]health.Target, len(apps))
	for i, a := range apps {
		targets[i] = health.Target{ID: a.ID, Name: a.Name, URL: a.URL}
	}

	fmt.Printf("Checking %d URLs...\n", len(targets))
	results := health.CheckURLs(targets, 10, 10*time.Second, func(completed, total int) {
		fmt.Printf("\r%d/%d", completed, total)
	})
	fmt.Println()

	healthy, dead, unreachable := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case health.Healthy:
			healthy++
		case health.Dead:
			dead++
			fmt.Printf("  DEAD         %-20s %s (%d)\n", r.Name, r.URL, r.StatusCode)
		case health.Unreachable:
			unreachable++
			fmt.Printf("  UNREACHABLE  %-20s %s (%s)\n", r.Name, r.URL, r.Error)
		}
	}

	fmt.Printf("%d healthy, %d dead, %d unreachable\n", healthy, dead, unreachable)
}
