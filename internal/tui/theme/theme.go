// Package theme defines color themes for the finza TUI dashboard.
package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme, warm and paper-inspired.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// FlexokiLight is the light counterpart built on the same paper palette.
var FlexokiLight = Theme{
	Name:          "flexoki-light",
	Background:    lipgloss.Color("#FFFCF0"),
	Surface:       lipgloss.Color("#F2F0E5"),
	SurfaceHover:  lipgloss.Color("#E6E4D9"),
	SurfaceBright: lipgloss.Color("#DAD8CE"),
	Border:        lipgloss.Color("#CECDC3"),
	BorderBright:  lipgloss.Color("#B7B5AC"),
	BorderAccent:  lipgloss.Color("#24837B"),
	TextDim:       lipgloss.Color("#B7B5AC"),
	TextMuted:     lipgloss.Color("#6F6E69"),
	TextPrimary:   lipgloss.Color("#100F0F"),
	Accent:        lipgloss.Color("#24837B"),
	AccentBright:  lipgloss.Color("#3AA99F"),
	AccentDim:     lipgloss.Color("#DDEAE5"),
	Green:         lipgloss.Color("#66800B"),
	GreenBright:   lipgloss.Color("#879A39"),
	Orange:        lipgloss.Color("#BC5215"),
	Red:           lipgloss.Color("#AF3029"),
	Blue:          lipgloss.Color("#205EA6"),
	BlueBright:    lipgloss.Color("#4385BE"),
	Yellow:        lipgloss.Color("#AD8301"),
	Magenta:       lipgloss.Color("#A02F6F"),
	Cyan:          lipgloss.Color("#24837B"),
}

// CatppuccinMocha maps the upstream Mocha palette onto the theme roles.
var CatppuccinMocha = func() Theme {
	p := catppuccin.Mocha
	return Theme{
		Name:          "catppuccin-mocha",
		Background:    lipgloss.Color(p.Base().Hex),
		Surface:       lipgloss.Color(p.Surface0().Hex),
		SurfaceHover:  lipgloss.Color(p.Surface1().Hex),
		SurfaceBright: lipgloss.Color(p.Surface2().Hex),
		Border:        lipgloss.Color(p.Surface2().Hex),
		BorderBright:  lipgloss.Color(p.Overlay1().Hex),
		BorderAccent:  lipgloss.Color(p.Blue().Hex),
		TextDim:       lipgloss.Color(p.Overlay0().Hex),
		TextMuted:     lipgloss.Color(p.Subtext0().Hex),
		TextPrimary:   lipgloss.Color(p.Text().Hex),
		Accent:        lipgloss.Color(p.Blue().Hex),
		AccentBright:  lipgloss.Color(p.Lavender().Hex),
		AccentDim:     lipgloss.Color(p.Surface0().Hex),
		Green:         lipgloss.Color(p.Green().Hex),
		GreenBright:   lipgloss.Color(p.Teal().Hex),
		Orange:        lipgloss.Color(p.Peach().Hex),
		Red:           lipgloss.Color(p.Red().Hex),
		Blue:          lipgloss.Color(p.Blue().Hex),
		BlueBright:    lipgloss.Color(p.Sky().Hex),
		Yellow:        lipgloss.Color(p.Yellow().Hex),
		Magenta:       lipgloss.Color(p.Pink().Hex),
		Cyan:          lipgloss.Color(p.Teal().Hex),
	}
}()

// CatppuccinLatte maps the upstream Latte palette onto the theme roles.
var CatppuccinLatte = func() Theme {
	p := catppuccin.Latte
	return Theme{
		Name:          "catppuccin-latte",
		Background:    lipgloss.Color(p.Base().Hex),
		Surface:       lipgloss.Color(p.Mantle().Hex),
		SurfaceHover:  lipgloss.Color(p.Surface0().Hex),
		SurfaceBright: lipgloss.Color(p.Surface1().Hex),
		Border:        lipgloss.Color(p.Surface1().Hex),
		BorderBright:  lipgloss.Color(p.Overlay0().Hex),
		BorderAccent:  lipgloss.Color(p.Blue().Hex),
		TextDim:       lipgloss.Color(p.Overlay1().Hex),
		TextMuted:     lipgloss.Color(p.Subtext0().Hex),
		TextPrimary:   lipgloss.Color(p.Text().Hex),
		Accent:        lipgloss.Color(p.Blue().Hex),
		AccentBright:  lipgloss.Color(p.Sapphire().Hex),
		AccentDim:     lipgloss.Color(p.Surface0().Hex),
		Green:         lipgloss.Color(p.Green().Hex),
		GreenBright:   lipgloss.Color(p.Teal().Hex),
		Orange:        lipgloss.Color(p.Peach().Hex),
		Red:           lipgloss.Color(p.Red().Hex),
		Blue:          lipgloss.Color(p.Blue().Hex),
		BlueBright:    lipgloss.Color(p.Sky().Hex),
		Yellow:        lipgloss.Color(p.Yellow().Hex),
		Magenta:       lipgloss.Color(p.Pink().Hex),
		Cyan:          lipgloss.Color(p.Teal().Hex),
	}
}()

// All available themes.
var All = []Theme{FlexokiDark, FlexokiLight, CatppuccinMocha, CatppuccinLatte}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
