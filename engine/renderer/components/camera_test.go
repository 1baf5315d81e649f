package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/lantern/engine/math"
)

func TestViewMapsEyeToOrigin(t *testing.T) {
	c := NewCamera()
	view := c.View()
	out := view.MulVec4(math.Vec4{X: c.Position.X, Y: c.Position.Y, Z: c.Position.Z, W: 1.0})
	assert.InDelta(t, 0.0, float64(out.X), 1e-5)
	assert.InDelta(t, 0.0, float64(out.Y), 1e-5)
	assert.InDelta(t, 0.0, float64(out.Z), 1e-5)
}

func TestForwardIsUnitLength(t *testing.T) {
	c := NewCamera()
	assert.InDelta(t, 1.0, float64(c.Forward().Length()), 1e-5)
}

func TestProjectionUsesAspect(t *testing.T) {
	c := NewCamera()
	wide := c.Projection(16.0 / 9.0)
	square := c.Projection(1.0)
	assert.Less(t, wide.Data[0], square.Data[0])
}
