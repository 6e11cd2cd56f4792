package layout

// Config holds layout-related configuration values.
type Config struct {
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// SearchMaxVisible: max results shown in the search overlay.
	SearchMaxVisible int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	NameCharLimit   int
	URLCharLimit    int
	FilterCharLimit int

	StandardWidth int
	FilterWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		Modal: ModalConfig{
			WidthPercent:     40,
			MinWidth:         50,
			MaxWidth:         80,
			SearchMaxVisible: 8,
		},
		Input: InputConfig{
			NameCharLimit:   100,
			URLCharLimit:    500,
			FilterCharLimit: 50,
			StandardWidth:   40,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
