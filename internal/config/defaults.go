package config

// Default configuration constants
const (
	defaultPaneSize = 100
	defaultPaneUnit = "weight"
)

// DefaultConfig returns the default configuration values for tilepane.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Layout: LayoutConfig{
			DefaultSize: defaultPaneSize,
			DefaultUnit: defaultPaneUnit,
		},
		Script: ScriptConfig{
			StopOnError: true,
			Trace:       false,
		},
		Appearance: AppearanceConfig{
			Palette: ColorPalette{
				Text:    "#ffffff",
				Muted:   "#909090",
				Accent:  "#4ade80",
				Error:   "#f87171",
				Success: "#4ade80",
			},
		},
	}
}
