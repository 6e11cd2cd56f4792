package model

// DefaultCategory is the protected category every record falls back to.
const DefaultCategory = "General"

// App represents a launcher shortcut: a name, a target URL and display metadata.
type App struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"` // optional; overrides the derived favicon
	Category string `json:"category"`
	Favorite bool   `json:"favorite"`
	Pinned   bool   `json:"pinned"`
}

// NewAppParams holds parameters for creating a new App.
type NewAppParams struct {
	Name     string
	URL      string
	Icon     string
	Category string
}

// NewApp creates an App with a generated UUID and default flags.
func NewApp(params NewAppParams) App {
	category := params.Category
	if category == "" {
		category = DefaultCategory
	}

	return App{
		ID:       GenerateUUID(),
		Name:     params.Name,
		URL:      params.URL,
		Icon:     params.Icon,
		Category: category,
		Favorite: false,
		Pinned:   false,
	}
}

// Normalize applies defaults for fields older exports leave out.
// Records from the v1 browser format carry no ID, so one is assigned here.
func (a *App) Normalize() {
	if a.ID == "" {
		a.ID = GenerateUUID()
	}
	if a.Category == "" {
		a.Category = DefaultCategory
	}
}
