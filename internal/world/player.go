package world

import "platforms/internal/geom"

// Player is the kinematic state of the controlled character.
type Player struct {
	Position geom.Vec2 // reference point, above and left-of-center of the box
	Velocity geom.Vec2
	Size     geom.Vec2 // fixed post-spawn

	Speed       float64 // horizontal move speed, world units per second
	JumpImpulse float64 // instantaneous upward velocity applied on jump

	Health    float64
	MaxHealth float64

	// Grounded is true only while the player rested on a surface this tick.
	Grounded bool
}

// Rect derives the player's collision box from Position. The reference point
// is offset from the box origin: collision corrections add directly to
// Position, so this exact mapping must hold everywhere the box is needed.
func (p *Player) Rect() geom.Rect {
	return geom.Rect{
		X: p.Position.X + 0.5*p.Size.X,
		Y: p.Position.Y + p.Size.Y,
		W: p.Size.X,
		H: p.Size.Y,
	}
}

// integrate applies one tick of gravity, input-driven horizontal motion and
// jump impulse. Velocity updates before position: the position step uses the
// post-gravity velocity (semi-implicit Euler).
func (p *Player) integrate(dt float64, in Input) {
	p.Velocity.Y += Gravity * dt

	var dir geom.Vec2
	if in.MoveLeft {
		dir.X -= 1
	}
	if in.MoveRight {
		dir.X += 1
	}
	step := dir.Normalize().Scale(p.Speed * dt)

	// Jump input while airborne is ignored: no double-jump, no buffering.
	if in.Jump && p.Grounded {
		p.Velocity.Y -= p.JumpImpulse
	}

	step = step.Add(p.Velocity.Scale(dt))
	p.Position = p.Position.Add(step)
}
