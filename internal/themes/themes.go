package themes

import "strings"

// Theme is a named palette for a habit's visualizations. Intensity holds the
// ramp used by the heatmap: index 0 is the empty cell, 1-4 are increasing
// check-in values.
type Theme struct {
	Name         string
	PrimaryColor string
	Intensity    [5]string
}

// Default is the theme assigned when a habit is created without one.
const Default = "blue"

var themes = map[string]Theme{
	"blue": {
		Name:         "Blue",
		PrimaryColor: "#3b82f6",
		Intensity:    [5]string{"#f3f4f6", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6"},
	},
	"green": {
		Name:         "Green",
		PrimaryColor: "#22c55e",
		Intensity:    [5]string{"#f3f4f6", "#bbf7d0", "#86efac", "#4ade80", "#22c55e"},
	},
	"purple": {
		Name:         "Purple",
		PrimaryColor: "#a855f7",
		Intensity:    [5]string{"#f3f4f6", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7"},
	},
	"orange": {
		Name:         "Orange",
		PrimaryColor: "#f97316",
		Intensity:    [5]string{"#f3f4f6", "#fed7aa", "#fdba74", "#fb923c", "#f97316"},
	},
	"pink": {
		Name:         "Pink",
		PrimaryColor: "#ec4899",
		Intensity:    [5]string{"#f3f4f6", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899"},
	},
	"indigo": {
		Name:         "Indigo",
		PrimaryColor: "#6366f1",
		Intensity:    [5]string{"#f3f4f6", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1"},
	},
}

// Get returns the theme for name, falling back to the default for unknown or
// empty names. Lookup is case-insensitive.
func Get(name string) Theme {
	if t, ok := themes[strings.ToLower(name)]; ok {
		return t
	}
	return themes[Default]
}

// Valid reports whether name refers to a known theme.
func Valid(name string) bool {
	_, ok := themes[strings.ToLower(name)]
	return ok
}

// Names returns the theme names in a fixed display order.
func Names() []string {
	return []string{"blue", "green", "purple", "orange", "pink", "indigo"}
}

// IntensityBucket maps a check-in value to an intensity ramp index 0-4.
// Buckets follow the original palette table: 0, 1-5, 6-10, 11-20, 20+.
func IntensityBucket(value int) int {
	switch {
	case value <= 0:
		return 0
	case value <= 5:
		return 1
	case value <= 10:
		return 2
	case value <= 20:
		return 3
	default:
		return 4
	}
}
