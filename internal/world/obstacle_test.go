package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platforms/internal/geom"
	"platforms/internal/world"
)

// platformWorld returns a world with one horizontal patrol platform running
// from x=0 to x=20 at y=10, and the player parked far away.
func platformWorld(speed float64) *world.World {
	w := world.New(world.Level{
		Player: testPlayer(),
		Obstacles: []world.ObstacleSpawn{
			{
				Rect:  geom.Rect{X: 0, Y: 10, W: 10, H: 2.5},
				Start: geom.Vec2{X: 0, Y: 10},
				End:   geom.Vec2{X: 20, Y: 10},
				Speed: speed,
			},
		},
	})
	w.Player.Position = geom.Vec2{X: 1000, Y: 1000}
	return w
}

func TestSpawnKindClassification(t *testing.T) {
	w := platformWorld(5)
	assert.Equal(t, world.ObstaclePatrol, w.Obstacles[0].Kind)

	idx, err := w.SpawnStaticObstacle(geom.Rect{X: 0, Y: 50, W: 5, H: 1})
	require.NoError(t, err)
	assert.Equal(t, world.ObstacleStatic, w.Obstacles[idx].Kind)
	assert.Equal(t, w.Obstacles[idx].Start, w.Obstacles[idx].End)
}

func TestPatrolMovesTowardEnd(t *testing.T) {
	w := platformWorld(5)

	w.Tick(0.1, world.Input{})

	o := w.Obstacles[0]
	assert.InDelta(t, 0.5, o.Rect.X, 1e-12)
	assert.Equal(t, 10.0, o.Rect.Y, "horizontal patrol keeps its height")
	assert.False(t, o.MovingToStart)
}

func TestPatrolStaysOnSegment(t *testing.T) {
	w := platformWorld(7)

	for i := 0; i < 2000; i++ {
		w.Tick(1.0/60, world.Input{})
		o := w.Obstacles[0]
		require.GreaterOrEqual(t, o.Rect.X, 0.0, "tick %d", i)
		require.LessOrEqual(t, o.Rect.X, 20.0, "tick %d", i)
	}
}

func TestPatrolSnapsToEndpointAndFlips(t *testing.T) {
	w := platformWorld(5)

	// One huge step overshoots the far endpoint by a wide margin.
	w.Tick(10, world.Input{})

	o := w.Obstacles[0]
	assert.Equal(t, 20.0, o.Rect.X, "snapped exactly to the endpoint")
	assert.Equal(t, 10.0, o.Rect.Y)
	assert.True(t, o.MovingToStart)

	// And back again.
	w.Tick(10, world.Input{})
	o = w.Obstacles[0]
	assert.Equal(t, 0.0, o.Rect.X)
	assert.False(t, o.MovingToStart)
}

func TestDegeneratePatrolNeverMoves(t *testing.T) {
	w := world.New(world.Level{
		Player: testPlayer(),
		Obstacles: []world.ObstacleSpawn{
			{
				Rect:  geom.Rect{X: 3, Y: 10, W: 10, H: 2.5},
				Start: geom.Vec2{X: 3, Y: 10},
				End:   geom.Vec2{X: 3, Y: 10},
				Speed: 5, // moving constructor, equal endpoints
			},
		},
	})
	w.Player.Position = geom.Vec2{X: 1000, Y: 1000}

	for i := 0; i < 100; i++ {
		w.Tick(1.0/60, world.Input{})
	}

	assert.Equal(t, geom.Rect{X: 3, Y: 10, W: 10, H: 2.5}, w.Obstacles[0].Rect)
}

func TestStaticObstacleSkipsTicking(t *testing.T) {
	w := floorWorld()

	w.Tick(1, world.Input{})

	assert.Equal(t, geom.Rect{X: -20, Y: 20, W: 40, H: 2.5}, w.Obstacles[0].Rect)
}

func TestAttachmentRequiresPatrol(t *testing.T) {
	// Standing on a static floor never attaches, whatever the geometry.
	w := floorWorld()
	restOnFloor(w, 0.01)
	w.Player.Velocity.Y = 1

	w.Tick(0, world.Input{})
	assert.False(t, w.Obstacles[0].PlayerAttached)
	assert.True(t, w.Player.Grounded, "grounded and attached are independent")

	// The same geometry against a patrol platform attaches.
	w = platformWorld(5)
	w.Player.Position = geom.Vec2{X: 4, Y: 10.01 - 4} // box bottom 0.01 into the platform top
	w.Tick(0, world.Input{})
	assert.True(t, w.Obstacles[0].PlayerAttached)
}

func TestAttachedPlayerRidesPlatform(t *testing.T) {
	w := platformWorld(5)
	w.Player.Position = geom.Vec2{X: 4, Y: 10.01 - 4}
	w.Player.Velocity.Y = 1

	w.Tick(0, world.Input{}) // resolve once to attach
	require.True(t, w.Obstacles[0].PlayerAttached)

	playerX := w.Player.Position.X
	platformX := w.Obstacles[0].Rect.X

	w.Tick(0.1, world.Input{})

	platformStep := w.Obstacles[0].Rect.X - platformX
	assert.InDelta(t, 0.5, platformStep, 1e-12)
	assert.InDelta(t, playerX+platformStep, w.Player.Position.X, 1e-9,
		"the ride is a direct translation by the platform step")
}

func TestAttachmentDropsWhenPlayerLeaves(t *testing.T) {
	w := platformWorld(5)
	w.Player.Position = geom.Vec2{X: 4, Y: 10.01 - 4}
	w.Player.Velocity.Y = 1
	w.Tick(0, world.Input{})
	require.True(t, w.Obstacles[0].PlayerAttached)

	// Teleport away; the next resolution recomputes the flag from scratch.
	w.Player.Position = geom.Vec2{X: 1000, Y: 1000}
	w.Tick(0, world.Input{})
	assert.False(t, w.Obstacles[0].PlayerAttached)
}
