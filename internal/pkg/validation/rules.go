package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Clock time in 24h "HH:MM" format, as stored on schedule events
	ClockTimePattern = `^([01]\d|2[0-3]):[0-5]\d$`

	// Hex color with leading hash, e.g. "#facc15"
	HexColorPattern = `^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	ClockTime *regexp.Regexp
	HexColor  *regexp.Regexp
}{
	ClockTime: regexp.MustCompile(ClockTimePattern),
	HexColor:  regexp.MustCompile(HexColorPattern),
}

// IsClockTime reports whether s is a valid "HH:MM" time string
func IsClockTime(s string) bool {
	return CompiledPatterns.ClockTime.MatchString(s)
}

// RegisterRules registers the custom binding rules on the given validator
// engine. Called once at router setup.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsClockTime(fl.Field().String())
	})
}
