package preview

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

// Update handles Bubbletea messages and writes control changes to the store.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.store
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.HueUp):
		s.SetBrandHue(wrapHue(s.BrandHue() + HueStep))
	case key.Matches(msg, m.keys.HueDown):
		s.SetBrandHue(wrapHue(s.BrandHue() - HueStep))
	case key.Matches(msg, m.keys.SatUp):
		s.SetBrandSaturation(clamp(s.BrandSaturation()+SaturationStep, 0, 100))
	case key.Matches(msg, m.keys.SatDown):
		s.SetBrandSaturation(clamp(s.BrandSaturation()-SaturationStep, 0, 100))
	case key.Matches(msg, m.keys.ScaleUp):
		stepScales(s, ScaleStep)
	case key.Matches(msg, m.keys.ScaleDown):
		stepScales(s, -ScaleStep)
	case key.Matches(msg, m.keys.Dark):
		s.SetDarkMode(!s.DarkMode())
	case key.Matches(msg, m.keys.Contrast):
		s.SetContrast(config.ContrastMode(next(int(s.Contrast()), len(config.ContrastNames()))))
	case key.Matches(msg, m.keys.FontSize):
		s.SetFontSize(config.FontSizePreset(next(int(s.FontSize()), len(config.FontSizeNames()))))
	case key.Matches(msg, m.keys.LetterSpacing):
		s.SetLetterSpacing(config.LetterSpacingMode(next(int(s.LetterSpacing()), len(config.LetterSpacingNames()))))
	case key.Matches(msg, m.keys.LineHeight):
		s.SetLineHeight(config.LineHeightMode(next(int(s.LineHeight()), len(config.LineHeightNames()))))
	case key.Matches(msg, m.keys.Reset):
		s.Reset()
	}
	return m, nil
}

// stepScales moves all three scale sliders together, one write per field.
func stepScales(s *config.Store, delta float64) {
	s.SetSpacingScale(stepScale(s.SpacingScale(), delta))
	s.SetRadiusScale(stepScale(s.RadiusScale(), delta))
	s.SetFontScale(stepScale(s.FontScale(), delta))
}

func stepScale(v, delta float64) float64 {
	return clamp(math.Round((v+delta)*100)/100, MinScale, MaxScale)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func next(current, count int) int {
	if current < 0 || current >= count {
		return 0
	}
	return (current + 1) % count
}
