package world

// Simulation constants.
// All tunable physics parameters are centralized here for easy adjustment.

// Physics
const (
	// Gravity is the downward acceleration in world units per second squared.
	// Positive Y points down in world space.
	Gravity = 50.0

	// MaxSpeedWithoutDamage is the impact speed a landing absorbs for free.
	// Any speed above it is subtracted from health one-for-one.
	MaxSpeedWithoutDamage = 30.0
)

// Capacity
const (
	// MaxObstacles bounds the obstacle collection. Levels that try to spawn
	// more get a capacity error from SpawnObstacle; loading is best-effort.
	MaxObstacles = 64
)

// Camera
const (
	// cameraFollowFactor is the fraction of the remaining distance the camera
	// closes per tick. Coupled to tick rate on purpose; see Camera.Follow.
	cameraFollowFactor = 0.1
)
