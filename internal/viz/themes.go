package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ising/internal/render"
)

// Theme defines the colors of the lattice and the status panel.
type Theme struct {
	Name   string
	Up     lipgloss.Color
	Down   lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeAurora = Theme{
		Name:   "aurora",
		Up:     lipgloss.Color("86"),
		Down:   lipgloss.Color("238"),
		Accent: lipgloss.Color("205"),
		Muted:  lipgloss.Color("242"),
	}

	ThemeMagma = Theme{
		Name:   "magma",
		Up:     lipgloss.Color("#ffaa00"),
		Down:   lipgloss.Color("#330000"),
		Accent: lipgloss.Color("#ff4400"),
		Muted:  lipgloss.Color("#885544"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Up:     lipgloss.Color("#ffffff"),
		Down:   lipgloss.Color("#222222"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
	}
)

var themes = []Theme{ThemeAurora, ThemeMagma, ThemeMono}

func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ThemeByName returns the named theme, falling back to the first one.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

func nextTheme(current Theme) Theme {
	for i, t := range themes {
		if t.Name == current.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

func (t Theme) palette() render.Palette {
	return render.Palette{
		Up:   lipgloss.NewStyle().Foreground(t.Up),
		Down: lipgloss.NewStyle().Foreground(t.Down),
	}
}
