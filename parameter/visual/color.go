package visual

import (
	"github.com/lixenwraith/folio-fx/terminal"
)

// terminal.RGB color definitions for the demo view and effects
var (
	RgbBlack = terminal.RGB{R: 0, G: 0, B: 0}
	RgbWhite = terminal.RGB{R: 255, G: 255, B: 255}

	// Screen background behind both canvases
	RgbBackground = terminal.RGB{R: 8, G: 10, B: 16}

	// Network panel fill, cleared every frame
	RgbPanelBackground = terminal.RGB{R: 13, G: 17, B: 26}
	RgbPanelBorder     = terminal.RGB{R: 48, G: 56, B: 74}

	// Trail links and nodes
	RgbTrail = terminal.RGB{R: 120, G: 180, B: 255}

	// Text
	RgbTextNormal = terminal.RGB{R: 200, G: 206, B: 218}
	RgbTextDim    = terminal.RGB{R: 110, G: 118, B: 134}
	RgbTextBright = terminal.RGB{R: 240, G: 244, B: 250}
	RgbStatusBg   = terminal.RGB{R: 22, G: 27, B: 38}

	// Tooltip chip
	RgbTooltipFg = terminal.RGB{R: 240, G: 244, B: 250}
	RgbTooltipBg = terminal.RGB{R: 36, G: 44, B: 62}
)
