package world

import (
	"math/rand"

	"platforms/internal/geom"
)

// ObstacleSpawn describes one obstacle to create at load time.
// Speed 0 (or Start == End) spawns static geometry, anything else a platform.
type ObstacleSpawn struct {
	Rect  geom.Rect
	Start geom.Vec2
	End   geom.Vec2
	Speed float64
}

// PlayerConfig holds the player constants a level starts with.
type PlayerConfig struct {
	Position    geom.Vec2
	Size        geom.Vec2
	Speed       float64
	JumpImpulse float64
	MaxHealth   float64
}

// Level is the full spawn configuration of a world. Levels are plain data:
// building one resolves all randomness, so loading the same Level twice
// produces identical worlds.
type Level struct {
	Player    PlayerConfig
	Obstacles []ObstacleSpawn
}

// DefaultLevel builds the standard tower level: a ground floor between two
// tall walls, a small stair, and ten patrol platforms stacked upward with
// randomized positions and speeds.
func DefaultLevel(rng *rand.Rand) Level {
	lvl := Level{
		Player: PlayerConfig{
			Size:        geom.Vec2{X: 1, Y: 2},
			Speed:       15,
			JumpImpulse: 30,
			MaxHealth:   100,
		},
	}

	static := func(r geom.Rect) {
		lvl.Obstacles = append(lvl.Obstacles, ObstacleSpawn{
			Rect:  r,
			Start: r.Pos(),
			End:   r.Pos(),
		})
	}

	// ground
	static(geom.Rect{X: -20, Y: 20, W: 40, H: 2.5})
	// left wall
	static(geom.Rect{X: -20, Y: -100, W: 2.5, H: 120})
	// left stair
	static(geom.Rect{X: -17.5, Y: 15, W: 2.5, H: 5})
	// right wall
	static(geom.Rect{X: 17.5, Y: -100, W: 2.5, H: 120})

	// platforms
	const xMin, xMax = -15.0, 5.0
	for i := 0; i < 10; i++ {
		y := 8.0 - float64(i)*8.0
		x := xMin + rng.Float64()*(xMax-xMin)
		speed := 5.0 + rng.Float64()*4.0

		lvl.Obstacles = append(lvl.Obstacles, ObstacleSpawn{
			Rect:  geom.Rect{X: x, Y: y, W: 10, H: 2.5},
			Start: geom.Vec2{X: xMin, Y: y},
			End:   geom.Vec2{X: xMax, Y: y},
			Speed: speed,
		})
	}

	return lvl
}
