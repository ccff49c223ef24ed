// Package validation holds value checks shared by config loading.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value looks like #RGB or #RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// NamedColor is a palette entry to validate.
type NamedColor struct {
	Name  string
	Value string
}

// ValidatePaletteHex returns one message per entry that is not a hex color.
func ValidatePaletteHex(prefix string, colors ...NamedColor) []string {
	var errs []string
	for _, c := range colors {
		if !IsHexColor(c.Value) {
			errs = append(errs, prefix+"."+c.Name+" must be a hex color like #RRGGBB (got: "+c.Value+")")
		}
	}
	return errs
}
