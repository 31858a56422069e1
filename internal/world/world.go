// Package world implements the platformer simulation core: player kinematics,
// obstacle motion, collision resolution and camera smoothing, advanced one
// tick at a time.
//
// A World is a self-contained state object. Nothing in this package is
// process-global, so independent simulations can run side by side (one per
// SSH session, one per test). A single tick is synchronous and runs to
// completion; there is no concurrent mutation and no locking.
package world

import (
	"errors"

	"platforms/internal/geom"
)

// ErrObstacleCapacity is returned when a spawn would exceed MaxObstacles.
// Non-fatal: the level simply ends up with fewer obstacles than authored.
var ErrObstacleCapacity = errors.New("world: obstacle capacity exhausted")

// Input is the resolved player intent for one tick. Key polling lives with
// the frame driver; the simulation consumes only these flags.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Reset     bool
}

// World owns all simulation state for one game instance.
type World struct {
	Player    Player
	Obstacles []Obstacle
	Camera    Camera

	level Level
}

// New builds a world from a level. Obstacle spawning is best-effort: spawns
// past capacity are dropped and loading continues.
func New(level Level) *World {
	w := &World{
		Obstacles: make([]Obstacle, 0, MaxObstacles),
		level:     level,
	}

	w.Player = Player{
		Position:    level.Player.Position,
		Size:        level.Player.Size,
		Speed:       level.Player.Speed,
		JumpImpulse: level.Player.JumpImpulse,
		Health:      level.Player.MaxHealth,
		MaxHealth:   level.Player.MaxHealth,
	}

	for _, s := range level.Obstacles {
		_, _ = w.SpawnObstacle(s.Rect, s.Start, s.End, s.Speed)
	}

	return w
}

// SpawnObstacle appends an obstacle and returns its index. Speed 0 marks
// static geometry, a positive speed a patrol platform. The collection has a
// fixed capacity; spawns past it return ErrObstacleCapacity and change
// nothing.
func (w *World) SpawnObstacle(rect geom.Rect, start, end geom.Vec2, speed float64) (int, error) {
	if len(w.Obstacles) == MaxObstacles {
		return -1, ErrObstacleCapacity
	}

	kind := ObstacleStatic
	if speed > 0 {
		kind = ObstaclePatrol
	}

	w.Obstacles = append(w.Obstacles, Obstacle{
		Rect:  rect,
		Kind:  kind,
		Start: start,
		End:   end,
		Speed: speed,
	})
	return len(w.Obstacles) - 1, nil
}

// SpawnStaticObstacle appends a non-moving obstacle at rect.
func (w *World) SpawnStaticObstacle(rect geom.Rect) (int, error) {
	return w.SpawnObstacle(rect, rect.Pos(), rect.Pos(), 0)
}

// Reset rebuilds the world from its level. The replacement is wholesale, so
// no tick can observe a half-reset world. The camera keeps its position and
// pans back to the respawned player on its own.
func (w *World) Reset() {
	fresh := New(w.level)
	fresh.Camera = w.Camera
	*w = *fresh
}

// Tick advances the simulation by dt seconds. Order is fixed: reset check,
// player integration, obstacle motion, collision resolution, camera follow.
// dt is not clamped here; pacing is the frame driver's job.
func (w *World) Tick(dt float64, in Input) {
	if in.Reset {
		w.Reset()
	}

	w.Player.integrate(dt, in)
	w.tickObstacles(dt)
	w.resolveCollisions()
	w.Camera.Follow(w.Player.Position)
}
