package loop

import "time"

// Frame pacing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// Rendering
const (
	// cameraZoom is how many canvas pixels one world unit spans. Canvas
	// pixels are half-blocks and roughly square, so the same zoom is used on
	// both axes.
	cameraZoom = 3.0
)

// HUD
const (
	healthBarWidth = 30 // terminal columns
	healthBarCol   = 3
	healthBarRow   = 2

	// healthViewSpeed is how fast the trailing white bar catches up with the
	// real health after damage, in health units per second.
	healthViewSpeed = 80.0
)
