package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeClassroom = Theme{
		Name:      "classroom",
		Primary:   lipgloss.Color("#4a90e2"),
		Secondary: lipgloss.Color("#e67e22"),
		Accent:    lipgloss.Color("#f1c40f"),
		Text:      lipgloss.Color("#eeeeee"),
		Muted:     lipgloss.Color("#777788"),
		Success:   lipgloss.Color("#2ecc71"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#e74c3c"),
	}

	ThemeChalkboard = Theme{
		Name:      "chalkboard",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cceecc"),
		Accent:    lipgloss.Color("#ffee88"),
		Text:      lipgloss.Color("#f0f0f0"),
		Muted:     lipgloss.Color("#668866"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff8888"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	CurrentTheme = ThemeClassroom

	Themes = []Theme{
		ThemeClassroom,
		ThemeChalkboard,
		ThemeRetroGreen,
	}
)

// GetTheme returns a theme by name, falling back to the classroom theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassroom
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
