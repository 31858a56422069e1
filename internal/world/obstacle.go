package world

import "platforms/internal/geom"

// ObstacleKind distinguishes fixed level geometry from patrolling platforms.
type ObstacleKind int

const (
	// ObstacleStatic is a wall or floor that never moves.
	ObstacleStatic ObstacleKind = iota
	// ObstaclePatrol is a platform that oscillates between two endpoints.
	ObstaclePatrol
)

// Obstacle is one static wall/floor or one linearly-oscillating platform.
type Obstacle struct {
	Rect geom.Rect
	Kind ObstacleKind

	// Patrol segment. For static obstacles Start == End == the spawn position.
	Start geom.Vec2
	End   geom.Vec2
	Speed float64 // world units per second along the segment

	// MovingToStart is the current travel direction, flipped on reaching an
	// endpoint.
	MovingToStart bool

	// PlayerAttached is a tick-scoped output: the collision resolver
	// recomputes it unconditionally every tick, true iff the player is
	// resting on this platform's top surface. Never read across ticks except
	// by the very next obstacle update.
	PlayerAttached bool
}

// tickObstacles advances every patrol platform by dt and carries an attached
// player along with it. Static obstacles are skipped entirely.
func (w *World) tickObstacles(dt float64) {
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.Kind != ObstaclePatrol {
			continue
		}

		// Degenerate segments (Start == End) normalize to zero and never move.
		dir := o.End.Sub(o.Start).Normalize()
		if o.MovingToStart {
			dir = dir.Neg()
		}

		step := dir.Scale(o.Speed * dt)
		o.Rect = o.Rect.Translate(step)

		// Riding is a direct translation, not a force: the player moves
		// exactly as far as the platform did this tick.
		if o.PlayerAttached {
			w.Player.Position = w.Player.Position.Add(step)
		}

		// A non-positive dot product between travel direction and the
		// remaining distance means the platform reached or passed its target:
		// snap to the endpoint exactly and turn around.
		target := o.End
		if o.MovingToStart {
			target = o.Start
		}
		toTarget := target.Sub(o.Rect.Pos())
		if dir.Dot(toTarget) <= 0 {
			o.Rect.X = target.X
			o.Rect.Y = target.Y
			o.MovingToStart = !o.MovingToStart
		}
	}
}
