package world

import (
	"math"

	"platforms/internal/geom"
)

// resolveCollisions separates the player from all overlapping obstacles and
// derives grounded/attached/damage state. Runs once per tick, after obstacle
// motion and before the camera update.
//
// All overlaps are considered in a single pass: the per-obstacle MTVs are
// reduced to four running extrema (min/max per axis) and combined into one
// correction afterwards. Wedge geometries with three or more simultaneous
// overlaps can under- or over-correct; that is accepted behavior.
func (w *World) resolveCollisions() {
	p := &w.Player
	rect := p.Rect()

	var minX, maxX, minY, maxY float64
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		mtv := geom.MTV(rect, o.Rect)

		minX = math.Min(minX, mtv.X)
		maxX = math.Max(maxX, mtv.X)
		minY = math.Min(minY, mtv.Y)
		maxY = math.Max(maxY, mtv.Y)

		// Attachment must be decided per obstacle before the aggregate
		// correction: it feeds the next tick's platform ride, not this one.
		// An upward push means the player sits on top; only platforms attach,
		// static ground never does.
		o.PlayerAttached = mtv.Y < 0 && o.Kind == ObstaclePatrol
	}

	// Per axis, the extremum of larger magnitude wins.
	mtv := geom.Vec2{X: minX, Y: minY}
	if math.Abs(maxX) > math.Abs(minX) {
		mtv.X = maxX
	}
	if math.Abs(maxY) > math.Abs(minY) {
		mtv.Y = maxY
	}
	p.Position = p.Position.Add(mtv)

	switch {
	case mtv.Y < 0 && p.Velocity.Y > 0:
		// Pushed up while falling: a landing. Damage scales with the full 2D
		// impact speed past the free threshold. Health is deliberately not
		// clamped at zero here; downstream decides what negative health means.
		impact := p.Velocity.Len()
		damage := math.Max(0, impact-MaxSpeedWithoutDamage)
		p.Health -= damage

		p.Velocity = geom.Vec2{}
		p.Grounded = true
	case mtv.Y > 0 && p.Velocity.Y < 0:
		// Pushed down while rising: a ceiling bump. Kill the vertical motion,
		// keep the horizontal, leave the grounded flag alone.
		p.Velocity.Y = 0
	default:
		p.Grounded = false
	}
}
