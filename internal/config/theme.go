package config

import "sort"

// Palette holds the ANSI 256 colour codes the dialog is drawn with
type Palette struct {
	Primary  string
	Success  string
	Warning  string
	Error    string
	Muted    string
	Emphasis string
}

var themes = map[string]Palette{
	"default": {
		Primary:  "213", // Purple
		Success:  "114", // Green
		Warning:  "220", // Yellow
		Error:    "196", // Red
		Muted:    "245", // Grey
		Emphasis: "212", // Light Pink
	},
	"dark": {
		Primary:  "105",
		Success:  "78",
		Warning:  "214",
		Error:    "160",
		Muted:    "240",
		Emphasis: "147",
	},
	"light": {
		Primary:  "135",
		Success:  "28",
		Warning:  "130",
		Error:    "124",
		Muted:    "244",
		Emphasis: "91",
	},
	"monochrome": {
		Primary:  "252",
		Success:  "252",
		Warning:  "248",
		Error:    "255",
		Muted:    "241",
		Emphasis: "255",
	},
}

// GetTheme returns a predefined palette by name.
// If the theme doesn't exist, returns the default palette.
func GetTheme(name string) Palette {
	if p, ok := themes[name]; ok {
		return p
	}
	return themes["default"]
}

// ListThemes returns the available theme names, sorted
func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
