package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the player.
type Theme struct {
	Name   string
	Canvas lipgloss.Color // trace, marker and orbit dots
	Text   lipgloss.Color
	Label  lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeDeepSpace = Theme{
		Name:   "deepspace",
		Canvas: lipgloss.Color("#00ccff"),
		Text:   lipgloss.Color("#e0f0ff"),
		Label:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
		Muted:  lipgloss.Color("#335577"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Canvas: lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#00ff00"),
		Label:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#004400"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Canvas: lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#ffffff"),
		Label:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#555555"),
	}

	Themes = []Theme{ThemeDeepSpace, ThemeRetroGreen, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to deepspace.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDeepSpace
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
