package parameter

// Canvas sizing
const (
	NetworkWidth        = 460
	NetworkHeight       = 320
	NetworkNarrowWidth  = 340
	NetworkNarrowHeight = 260
)

// Layout
const (
	NetworkMarginX = 40.0
	NetworkMarginY = 30.0

	NetworkJitterX = 5.0 // ± px
	NetworkJitterY = 3.0

	NetworkProficiencyMin   = 0.5
	NetworkProficiencyRange = 0.5
	NetworkBaseSize         = 3.0
	NetworkSizePerLevel     = 2.0
	NetworkInitialOpacity   = 0.25

	// NetworkEdgesPerNode caps connections into the next category
	NetworkEdgesPerNode = 2
)

// Interaction
const (
	// NetworkPickRadius in canvas px, hover requires a strictly smaller distance
	NetworkPickRadius = 24.0

	// NetworkTooltipOffset is added to the local pointer position on both axes
	NetworkTooltipOffset = 10.0
)

// Animation, the grow and alpha values are defaults for the [network] eased targets
const (
	NetworkEasing = 0.2

	NetworkHoverGrow   = 5.0
	NetworkActiveGrow  = 2.5
	NetworkHoverAlpha  = 1.0
	NetworkActiveAlpha = 0.7
	NetworkBaseAlpha   = 0.22
	NetworkMinRadius   = 1.5
	NetworkWobbleAmp   = 2.0
	NetworkWobbleSpeed = 1.5
	NetworkWobblePhase = 0.7
	NetworkTimeStep    = 0.015
)

// Edge styling, fixed
const (
	NetworkEdgeAlpha       = 0.18
	NetworkEdgeWidth       = 0.7
	NetworkActiveEdgeLift  = 5.0
	NetworkActiveEdgeAlpha = 0.4
	NetworkActiveEdgeWidth = 1.0
	NetworkHoverEdgeAlpha  = 0.6
	NetworkHoverEdgeWidth  = 1.4
)

// Node styling, fixed
const (
	NetworkHoverLift       = 10.0
	NetworkHaloHoverLift   = 15.0
	NetworkHaloActiveLift  = 5.0
	NetworkHaloAlpha       = 0.35
	NetworkHaloHoverWidth  = 2.0
	NetworkHaloActiveWidth = 1.0
	NetworkHaloHoverPad    = 6.0
	NetworkHaloActivePad   = 4.0
)
