package preview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

func TestViewRendersSections(t *testing.T) {
	m := NewModel(config.NewStore(config.Default()))
	view := m.View()

	for _, want := range []string{"Design tokens", "Brand", "Gray", "Roles", "Panels", "Components", "Secondary", "Check input", "Type", "primary-foreground", "hue 217", "saturation 91"} {
		require.Contains(t, view, want)
	}
	require.NotContains(t, view, "changes")
}

func TestViewReflectsExternalWrites(t *testing.T) {
	store := config.NewStore(config.Default())
	m := NewModel(store)

	store.SetDarkMode(true)
	store.SetContrast(config.ContrastUltra)

	view := m.View()
	require.Contains(t, view, "dark  contrast ultra")
	require.Contains(t, view, "(2 changes, last contrast)")
	require.Contains(t, view, "#000000")
}
