package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	HueUp         key.Binding
	HueDown       key.Binding
	SatUp         key.Binding
	SatDown       key.Binding
	ScaleUp       key.Binding
	ScaleDown     key.Binding
	Dark          key.Binding
	Contrast      key.Binding
	FontSize      key.Binding
	LetterSpacing key.Binding
	LineHeight    key.Binding
	Reset         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		HueUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "hue +"),
		),
		HueDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "hue -"),
		),
		SatUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "saturation +"),
		),
		SatDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "saturation -"),
		),
		ScaleUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "scale up"),
		),
		ScaleDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "scale down"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		Contrast: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contrast"),
		),
		FontSize: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "font size"),
		),
		LetterSpacing: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "letter spacing"),
		),
		LineHeight: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "line height"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.HueUp, k.SatUp, k.Dark, k.Contrast, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.HueUp, k.HueDown, k.SatUp, k.SatDown},
		{k.ScaleUp, k.ScaleDown, k.FontSize, k.LetterSpacing, k.LineHeight},
		{k.Dark, k.Contrast, k.Reset, k.Help, k.Quit},
	}
}
