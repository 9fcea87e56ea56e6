package tokens

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
	"github.com/alexisbeaulieu97/designtokens/internal/palette"
	"github.com/alexisbeaulieu97/designtokens/internal/spacing"
	"github.com/alexisbeaulieu97/designtokens/internal/typography"
	tokenerrors "github.com/alexisbeaulieu97/designtokens/pkg/errors"
)

func TestResetRestoresDefaultTokens(t *testing.T) {
	store := config.NewStore(config.Default())
	live := New(store)

	store.SetBrandHue(12)
	store.SetBrandSaturation(40)
	store.SetRadiusScale(2.5)
	store.SetSpacingScale(0.5)
	store.SetFontScale(1.7)
	store.SetDarkMode(true)
	store.SetContrast(config.ContrastUltra)
	store.SetLetterSpacing(config.LetterSpacingWidest)
	store.SetLineHeight(config.LineHeightLoose)
	store.SetFontSize(config.FontSizeXXLarge)
	require.NotEmpty(t, cmp.Diff(New(config.Default()).Snapshot(), live.Snapshot()))

	store.Reset()

	if diff := cmp.Diff(config.Default(), store.Snapshot()); diff != "" {
		t.Fatalf("config after reset (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(New(config.Default()).Snapshot(), live.Snapshot()); diff != "" {
		t.Fatalf("tokens after reset (-want +got):\n%s", diff)
	}
}

func TestSnapshotIsIdempotent(t *testing.T) {
	tk := New(config.NewStore(config.Default()))
	if diff := cmp.Diff(tk.Snapshot(), tk.Snapshot()); diff != "" {
		t.Fatalf("snapshot drifted (-first +second):\n%s", diff)
	}
}

func TestSnapshotMatchesEngines(t *testing.T) {
	cfg := config.Default()
	cfg.DarkMode = true
	cfg.SpacingScale = 2
	tk := New(cfg)
	snap := tk.Snapshot()

	assert.True(t, snap.Config.DarkMode)
	assert.Equal(t, "normal", snap.Config.Contrast)
	assert.Equal(t, tk.Colors.Brand(palette.Shade500).Hex(), snap.Colors.Brand["500"])
	assert.Equal(t, tk.Colors.Gray(palette.Shade950).Hex(), snap.Colors.Gray["950"])
	assert.Equal(t, tk.Colors.PrimaryForeground().Hex(), snap.Colors.Roles["primary-foreground"])
	assert.Len(t, snap.Colors.Roles, len(palette.Roles()))
	assert.Len(t, snap.Colors.Panels, palette.PanelLevels)
	assert.Len(t, snap.Colors.Headings, palette.HierarchyLevels)

	assert.Equal(t, 16.0, snap.Typography.Sizes["base"].Size)
	assert.Equal(t, 36.0, snap.Typography.Headings[0])
	assert.Equal(t, 900, snap.Typography.Weights["black"])

	assert.Equal(t, tk.Space.Spacing(spacing.SpaceLG), snap.Spacing.Space["lg"])
	assert.Equal(t, spacing.FullRadius, snap.Spacing.Radius["full"])
	assert.Equal(t, "#00000066", snap.Spacing.Shadows["md"].Color)
	assert.Equal(t, 8.0, snap.Spacing.Shadows["md"].OffsetY)
}

func TestAccessorsFollowTheStore(t *testing.T) {
	store := config.NewStore(config.Default())
	tk := New(store)

	before := tk.Type.FontSize(typography.SizeBase)
	store.SetFontScale(2)
	assert.Equal(t, before*2, tk.Type.FontSize(typography.SizeBase))
	assert.Equal(t, 2.0, tk.Config().FontScale)
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(config.Default()).Snapshot().Encode(&buf, FormatYAML))

	var decoded Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 217.0, decoded.Config.BrandHue)
	assert.Contains(t, buf.String(), "primary-foreground:")
	assert.Contains(t, buf.String(), "letter_spacing_em:")
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(config.Default()).Snapshot().Encode(&buf, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "colors")
	assert.Contains(t, decoded, "spacing")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "yaml", want: FormatYAML},
		{in: "YML", want: FormatYAML},
		{in: " json ", want: FormatJSON},
		{in: "toml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				var modeErr *tokenerrors.UnknownModeError
				require.ErrorAs(t, err, &modeErr)
				assert.Equal(t, "format", modeErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := New(config.Default()).Snapshot().Encode(&buf, Format("xml"))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
