package palette

// Shade is a step along a color ramp, named by its conventional number.
type Shade int

const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
	Shade950 Shade = 950
)

// DefaultShade is returned for any shade outside a ramp's table.
const DefaultShade = Shade500

// BrandShades lists the brand ramp from lightest to darkest.
var BrandShades = []Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400,
	Shade500, Shade600, Shade700, Shade800, Shade900,
}

// GrayShades lists the neutral ramp from the background end to the text end.
var GrayShades = []Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400, Shade500,
	Shade600, Shade700, Shade800, Shade900, Shade950,
}

// neutralTint is the saturation, in percent, of light-mode grays. It is fixed
// so neutrals carry only a hint of the brand hue.
const neutralTint = 6.0

// brandLightness is HSL lightness in percent per brand shade.
var brandLightness = map[Shade]float64{
	Shade50:  97,
	Shade100: 94,
	Shade200: 86,
	Shade300: 77,
	Shade400: 66,
	Shade500: 55,
	Shade600: 45,
	Shade700: 37,
	Shade800: 29,
	Shade900: 22,
}

// grayLightLightness is HSL lightness in percent per gray shade in light mode.
var grayLightLightness = map[Shade]float64{
	Shade50:  98,
	Shade100: 96,
	Shade200: 90,
	Shade300: 83,
	Shade400: 64,
	Shade500: 50,
	Shade600: 38,
	Shade700: 28,
	Shade800: 18,
	Shade900: 11,
	Shade950: 6,
}

// grayDarkWhite is the white level per gray shade in dark mode. It is tuned
// by eye against dark surfaces and is not derived from the light table.
var grayDarkWhite = map[Shade]float64{
	Shade50:  0.07,
	Shade100: 0.10,
	Shade200: 0.15,
	Shade300: 0.22,
	Shade400: 0.35,
	Shade500: 0.50,
	Shade600: 0.62,
	Shade700: 0.74,
	Shade800: 0.84,
	Shade900: 0.91,
	Shade950: 0.96,
}

// PanelLevels is the number of nesting levels with a distinct tone.
const PanelLevels = 6

// Panel tones, indexed by level. Light tables are HSL lightness in percent,
// dark tables are white levels.
var (
	panelLight     = [PanelLevels]float64{98, 96, 93, 90, 87, 84}
	panelLightHigh = [PanelLevels]float64{100, 94, 88, 82, 76, 70}
	panelDark      = [PanelLevels]float64{0.07, 0.10, 0.13, 0.16, 0.19, 0.22}
	panelDarkHigh  = [PanelLevels]float64{0.00, 0.08, 0.16, 0.24, 0.32, 0.40}
)

// HierarchyLevels is the number of text hierarchy levels, numbered from 1.
const HierarchyLevels = 6

// Hierarchy names a family of text colors graded by importance.
type Hierarchy int

const (
	HierarchyHeading Hierarchy = iota
	HierarchyDescription
	HierarchyValue
)

func (h Hierarchy) String() string {
	switch h {
	case HierarchyHeading:
		return "heading"
	case HierarchyDescription:
		return "description"
	case HierarchyValue:
		return "value"
	default:
		return "unknown"
	}
}

type hierarchyTable struct {
	normal [HierarchyLevels]Shade
	high   [HierarchyLevels]Shade
}

var hierarchyShades = map[Hierarchy]hierarchyTable{
	HierarchyHeading: {
		normal: [HierarchyLevels]Shade{Shade950, Shade900, Shade800, Shade700, Shade600, Shade500},
		high:   [HierarchyLevels]Shade{Shade950, Shade950, Shade900, Shade900, Shade800, Shade800},
	},
	HierarchyDescription: {
		normal: [HierarchyLevels]Shade{Shade700, Shade600, Shade600, Shade500, Shade500, Shade400},
		high:   [HierarchyLevels]Shade{Shade800, Shade800, Shade700, Shade700, Shade600, Shade600},
	},
	HierarchyValue: {
		normal: [HierarchyLevels]Shade{Shade900, Shade800, Shade700, Shade700, Shade600, Shade600},
		high:   [HierarchyLevels]Shade{Shade950, Shade900, Shade900, Shade800, Shade800, Shade700},
	},
}

// status describes a fixed-hue semantic color.
type status struct {
	hue        float64
	saturation float64
}

// Status lightness in percent by contrast mode.
const (
	statusLightL     = 45.0
	statusDarkL      = 55.0
	statusLightHighL = 32.0
	statusDarkHighL  = 68.0
	statusUltraL     = 25.0
)

var (
	statusSuccess = status{hue: 142, saturation: 71}
	statusWarning = status{hue: 38, saturation: 92}
	statusDanger  = status{hue: 0, saturation: 84}
	statusInfo    = status{hue: 199, saturation: 89}
)
