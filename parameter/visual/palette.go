package visual

// Category colors as theme variable values, written hsl(H S% L%)
const (
	// HSLNeutral is the grey used for inactive nodes and edges
	HSLNeutral = "hsl(210 10% 78%)"

	// HSLDefault styles keys missing from the style table
	HSLDefault = "hsl(220 90% 55%)"
)

// FallbackPalette is cycled by category index when no theme variable is set
var FallbackPalette = []string{
	"hsl(260 85% 65%)",
	"hsl(220 90% 65%)",
	"hsl(190 85% 62%)",
	"hsl(40 90% 62%)",
}

// ThemeVarPrefix prefixes the slugified category name to form its theme variable
const ThemeVarPrefix = "cat-"
