package lattice

// AppConfig configures the application window and behavior.
type AppConfig struct {
	// Title is the window title.
	Title string

	// Width and Height are the initial window size in points.
	Width  float32
	Height float32

	// ThemePath is an optional TOML theme file applied at startup.
	ThemePath string
}

// DefaultAppConfig returns sensible defaults for a new application window.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Title:  "lattice",
		Width:  1280,
		Height: 720,
	}
}
