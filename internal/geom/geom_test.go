package geom_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platforms/internal/geom"
)

func TestOverlaps(t *testing.T) {
	a := geom.Rect{X: 0, Y: 0, W: 2, H: 2}

	assert.True(t, geom.Overlaps(a, geom.Rect{X: 1, Y: 1, W: 2, H: 2}))
	assert.True(t, geom.Overlaps(a, geom.Rect{X: 0.5, Y: 0.5, W: 1, H: 1}), "containment counts")
	assert.False(t, geom.Overlaps(a, geom.Rect{X: 3, Y: 0, W: 2, H: 2}))
	assert.False(t, geom.Overlaps(a, geom.Rect{X: 0, Y: 5, W: 2, H: 2}))

	// Touching edges are not an overlap: separation by an MTV must end in
	// exactly this state.
	assert.False(t, geom.Overlaps(a, geom.Rect{X: 2, Y: 0, W: 2, H: 2}))
	assert.False(t, geom.Overlaps(a, geom.Rect{X: 0, Y: 2, W: 2, H: 2}))
}

func TestMTVSeparates(t *testing.T) {
	tests := []struct {
		name   string
		mover  geom.Rect
		other  geom.Rect
		expect geom.Vec2
	}{
		{
			name:   "push left",
			mover:  geom.Rect{X: 0, Y: 0, W: 2, H: 2},
			other:  geom.Rect{X: 1.5, Y: 0, W: 2, H: 2},
			expect: geom.Vec2{X: -0.5},
		},
		{
			name:   "push right",
			mover:  geom.Rect{X: 1.5, Y: 0, W: 2, H: 2},
			other:  geom.Rect{X: 0, Y: 0, W: 2, H: 2},
			expect: geom.Vec2{X: 0.5},
		},
		{
			name:   "push up (landing)",
			mover:  geom.Rect{X: 0, Y: 0, W: 2, H: 2},
			other:  geom.Rect{X: -1, Y: 1.99, W: 4, H: 2},
			expect: geom.Vec2{Y: -0.01},
		},
		{
			name:   "push down (ceiling)",
			mover:  geom.Rect{X: 0, Y: 1.99, W: 2, H: 2},
			other:  geom.Rect{X: -1, Y: 0, W: 4, H: 2},
			expect: geom.Vec2{Y: 0.01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mtv := geom.MTV(tt.mover, tt.other)
			assert.InDelta(t, tt.expect.X, mtv.X, 1e-12)
			assert.InDelta(t, tt.expect.Y, mtv.Y, 1e-12)

			// Single-axis contract
			assert.True(t, mtv.X == 0 || mtv.Y == 0, "MTV must be axis-aligned, got %+v", mtv)

			// Translating the mover by the MTV ends the overlap
			assert.False(t, geom.Overlaps(tt.mover.Translate(mtv), tt.other))
		})
	}
}

func TestMTVNoOverlap(t *testing.T) {
	mover := geom.Rect{X: 0, Y: 0, W: 1, H: 1}

	for _, other := range []geom.Rect{
		{X: 5, Y: 5, W: 1, H: 1},
		{X: 1, Y: 0, W: 1, H: 1}, // touching edge
		{X: 0, Y: -1, W: 1, H: 1},
	} {
		t.Run(fmt.Sprintf("other=%+v", other), func(t *testing.T) {
			assert.Equal(t, geom.Vec2{}, geom.MTV(mover, other))
		})
	}
}

func TestMTVPicksShallowestAxis(t *testing.T) {
	// Deep horizontal overlap, shallow vertical one: only Y survives.
	mover := geom.Rect{X: 0, Y: 18.01, W: 1, H: 2}
	floor := geom.Rect{X: -20, Y: 20, W: 40, H: 2.5}

	mtv := geom.MTV(mover, floor)
	assert.Zero(t, mtv.X)
	assert.InDelta(t, -0.01, mtv.Y, 1e-9)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, geom.Vec2{}, geom.Vec2{}.Normalize(), "zero vector stays zero")

	v := geom.Vec2{X: 3, Y: -4}
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, -0.8, n.Y, 1e-12)

	// Idempotence
	nn := n.Normalize()
	assert.InDelta(t, n.X, nn.X, 1e-12)
	assert.InDelta(t, n.Y, nn.Y, 1e-12)
}

func TestVecOps(t *testing.T) {
	a := geom.Vec2{X: 1, Y: 2}
	b := geom.Vec2{X: -3, Y: 4}

	assert.Equal(t, geom.Vec2{X: -2, Y: 6}, a.Add(b))
	assert.Equal(t, geom.Vec2{X: 4, Y: -2}, a.Sub(b))
	assert.Equal(t, geom.Vec2{X: 2, Y: 4}, a.Scale(2))
	assert.Equal(t, geom.Vec2{X: 3, Y: -4}, b.Neg())
	assert.Equal(t, 5.0, a.Dot(b))
	assert.Equal(t, 5.0, b.Len())
	assert.InDelta(t, 4.472135955, a.Distance(b), 1e-9)
}
