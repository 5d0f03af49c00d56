package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeClassroom = Theme{
		Name:       "classroom",
		Primary:    lipgloss.Color("#4fc3f7"), // Sky blue
		Secondary:  lipgloss.Color("#81c784"),
		Accent:     lipgloss.Color("#ffb74d"),
		Background: lipgloss.Color("#101418"),
		Text:       lipgloss.Color("#eceff1"),
		Muted:      lipgloss.Color("#607d8b"),
		Success:    lipgloss.Color("#66bb6a"),
		Warning:    lipgloss.Color("#ffa726"),
		Error:      lipgloss.Color("#ef5350"),
	}

	ThemeChalkboard = Theme{
		Name:       "chalkboard",
		Primary:    lipgloss.Color("#aed581"), // Chalk green
		Secondary:  lipgloss.Color("#dce775"),
		Accent:     lipgloss.Color("#fff59d"),
		Background: lipgloss.Color("#1b2a1b"),
		Text:       lipgloss.Color("#f1f8e9"),
		Muted:      lipgloss.Color("#558b2f"),
		Success:    lipgloss.Color("#9ccc65"),
		Warning:    lipgloss.Color("#ffee58"),
		Error:      lipgloss.Color("#e57373"),
	}

	ThemeBlueprint = Theme{
		Name:       "blueprint",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#90caf9"),
		Accent:     lipgloss.Color("#ffd54f"),
		Background: lipgloss.Color("#0d2137"),
		Text:       lipgloss.Color("#e3f2fd"),
		Muted:      lipgloss.Color("#5c7fa3"),
		Success:    lipgloss.Color("#80cbc4"),
		Warning:    lipgloss.Color("#ffcc80"),
		Error:      lipgloss.Color("#ff8a80"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#aaaaaa"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#777777"),
		Success:    lipgloss.Color("#dddddd"),
		Warning:    lipgloss.Color("#bbbbbb"),
		Error:      lipgloss.Color("#ffffff"),
	}

	// Default theme
	CurrentTheme = ThemeClassroom

	// All available themes
	Themes = []Theme{
		ThemeClassroom,
		ThemeChalkboard,
		ThemeBlueprint,
		ThemeSunset,
		ThemeMono,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassroom
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
