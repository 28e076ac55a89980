package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Title     *color.Color
	Method    *color.Color
	URL       *color.Color
	Label     *color.Color
	Value     *color.Color
	Success   *color.Color
	Error     *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:     color.New(color.FgWhite, color.Bold),
		Method:    color.New(color.FgBlue, color.Bold),
		URL:       color.New(color.FgCyan),
		Label:     color.New(color.FgYellow),
		Value:     color.New(color.FgWhite),
		Success:   color.New(color.FgGreen),
		Error:     color.New(color.FgRed),
		Highlight: color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	for _, c := range []*color.Color{
		scheme.Title,
		scheme.Method,
		scheme.URL,
		scheme.Label,
		scheme.Value,
		scheme.Success,
		scheme.Error,
		scheme.Highlight,
	} {
		c.DisableColor()
	}

	return scheme
}

// SchemeFor returns the default scheme when noColor is false and
// NoColorScheme otherwise.
func SchemeFor(noColor bool) *ColorScheme {
	if noColor {
		return NoColorScheme()
	}
	return DefaultColorScheme()
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
