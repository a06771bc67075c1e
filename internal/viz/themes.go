package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used to paint a fingerprint.
// Low and High are the ends of the visit-count gradient.
type Theme struct {
	Name  string
	Low   lipgloss.Color
	High  lipgloss.Color
	Start lipgloss.Color
	End   lipgloss.Color
	Frame lipgloss.Color
	Text  lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:  "cyberpunk",
		Low:   lipgloss.Color("#00ffff"), // Cyan
		High:  lipgloss.Color("#ff00ff"), // Magenta
		Start: lipgloss.Color("#ffff00"),
		End:   lipgloss.Color("#ff0000"),
		Frame: lipgloss.Color("#666666"),
		Text:  lipgloss.Color("#ffffff"),
	}

	ThemeRetroGreen = Theme{
		Name:  "retro",
		Low:   lipgloss.Color("#005500"), // Green phosphor
		High:  lipgloss.Color("#88ff88"),
		Start: lipgloss.Color("#ffff00"),
		End:   lipgloss.Color("#ff0000"),
		Frame: lipgloss.Color("#00cc00"),
		Text:  lipgloss.Color("#00ff00"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Low:   lipgloss.Color("#4488aa"),
		High:  lipgloss.Color("#e0f0ff"),
		Start: lipgloss.Color("#ffd700"),
		End:   lipgloss.Color("#ff4444"),
		Frame: lipgloss.Color("#0077be"),
		Text:  lipgloss.Color("#e0f0ff"),
	}

	ThemeSunset = Theme{
		Name:  "sunset",
		Low:   lipgloss.Color("#feca57"),
		High:  lipgloss.Color("#ff6b6b"), // Coral
		Start: lipgloss.Color("#5fd068"),
		End:   lipgloss.Color("#ff4757"),
		Frame: lipgloss.Color("#8b6b8c"),
		Text:  lipgloss.Color("#fff5f5"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
