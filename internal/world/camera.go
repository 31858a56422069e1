package world

import "platforms/internal/geom"

// Camera is a smoothed viewpoint over the world. Target is the world-space
// point the view centers on; Offset, Zoom and Rotation describe the
// view-space placement and are consumed by the renderer only.
type Camera struct {
	Target   geom.Vec2
	Offset   geom.Vec2
	Zoom     float64
	Rotation float64
}

// Follow moves Target a fixed fraction of the remaining distance toward the
// tracked point. The approach is exponential and never quite arrives, and the
// rate is per tick rather than per second, so smoothing speed follows the
// tick rate.
func (c *Camera) Follow(target geom.Vec2) {
	distance := target.Distance(c.Target)
	direction := target.Sub(c.Target).Normalize()
	c.Target = c.Target.Add(direction.Scale(cameraFollowFactor * distance))
}

// WorldToView projects a world-space point into view space.
// Same convention as a 2D camera with target/offset/zoom: the target lands on
// the offset, everything else scales around it. Rotation is carried as data
// but not applied by this projection.
func (c *Camera) WorldToView(p geom.Vec2) geom.Vec2 {
	return p.Sub(c.Target).Scale(c.Zoom).Add(c.Offset)
}

// WorldToViewRect projects a world-space rectangle into view space.
func (c *Camera) WorldToViewRect(r geom.Rect) geom.Rect {
	tl := c.WorldToView(geom.Vec2{X: r.X, Y: r.Y})
	return geom.Rect{X: tl.X, Y: tl.Y, W: r.W * c.Zoom, H: r.H * c.Zoom}
}
