package config

import (
	"fmt"
	"strings"

	"github.com/bnema/tilepane/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "off":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, off (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if config.Layout.DefaultSize <= 0 {
		validationErrors = append(validationErrors, "layout.default_size must be positive")
	}

	switch config.Layout.DefaultUnit {
	case "weight", "exact":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("layout.default_unit must be one of: weight, exact (got: %s)", config.Layout.DefaultUnit))
	}

	p := config.Appearance.Palette
	validationErrors = append(validationErrors, validation.ValidatePaletteHex("appearance.palette",
		validation.NamedColor{Name: "text", Value: p.Text},
		validation.NamedColor{Name: "muted", Value: p.Muted},
		validation.NamedColor{Name: "accent", Value: p.Accent},
		validation.NamedColor{Name: "error", Value: p.Error},
		validation.NamedColor{Name: "success", Value: p.Success},
	)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%s", strings.Join(validationErrors, "; "))
	}
	return nil
}
