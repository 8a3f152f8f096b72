package parameter

import "time"

// Host loop timing
const (
	// FrameInterval is the ticker period driving the frame scheduler (~60Hz)
	FrameInterval = 16 * time.Millisecond

	// EventChannelSize buffers terminal events between poller and host loop
	EventChannelSize = 256
)

// Cell geometry, client pixels covered by one terminal cell
const (
	CellWidth  = 8.0
	CellHeight = 16.0

	// PixelRatio is backing pixels per client pixel, the device pixel ratio stand-in
	PixelRatio = 1.0
)

// Layout of the demo view
const (
	// NarrowViewportWidth switches the network to its compact canvas below this width (client px)
	NarrowViewportWidth = 768.0

	// LegendWidth is the legend column width in cells
	LegendWidth = 28

	// StatusRows reserved at the bottom of the screen
	StatusRows = 1
)

// Snapshot export
const (
	SnapshotFrames   = 90 // Frames simulated before export
	SnapshotFileName = "folio-snapshot.png"
)
