package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
)

func TestFlattenUsesDottedPaths(t *testing.T) {
	lines, err := Flatten(New(config.Default()).Snapshot())
	require.NoError(t, err)

	assert.Contains(t, lines, "config.brand_hue: 217")
	assert.Contains(t, lines, "spacing.radius.full: 9999")
	assert.Contains(t, lines, "typography.weights.black: 900")
	assert.True(t, strings.HasPrefix(findLine(lines, "colors.panels.0:"), "colors.panels.0: #"))
	assert.IsIncreasing(t, lines)
}

func findLine(lines []string, prefix string) string {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return l
		}
	}
	return ""
}

func TestDiffOfIdenticalSnapshotsIsEmpty(t *testing.T) {
	snap := New(config.Default()).Snapshot()
	out, err := Diff(snap, snap, "a", "b")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiffShowsOnlyChangedTokens(t *testing.T) {
	cfg := config.Default()
	cfg.SpacingScale = 2

	out, err := Diff(New(config.Default()).Snapshot(), New(cfg).Snapshot(), "defaults", "current")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "--- defaults\n+++ current\n"))
	assert.Contains(t, out, "-config.spacing_scale: 1\n")
	assert.Contains(t, out, "+config.spacing_scale: 2\n")
	assert.Contains(t, out, "-spacing.space.md: 12\n")
	assert.Contains(t, out, "+spacing.space.md: 24\n")
	assert.NotContains(t, out, "colors.")
	assert.NotContains(t, out, "spacing.radius.")
}

func TestDiffOfUltraContrastTouchesColors(t *testing.T) {
	cfg := config.Default()
	cfg.Contrast = config.ContrastUltra

	out, err := Diff(New(config.Default()).Snapshot(), New(cfg).Snapshot(), "normal", "ultra")
	require.NoError(t, err)
	assert.Contains(t, out, "+colors.roles.primary: #000000\n")
	assert.Contains(t, out, "+spacing.border_width: 3\n")
}
