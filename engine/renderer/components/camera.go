package components

import (
	"github.com/spaghettifunk/lantern/engine/math"
)

/**
 * @brief A fixed-vantage camera. The tableau is composed for a single
 * viewpoint, so the camera holds an eye, a target and a field of view
 * and derives its matrices from those.
 */
type Camera struct {
	/** @brief The position of the eye in world space. */
	Position math.Vec3
	/** @brief The point the camera looks at. */
	Target math.Vec3
	/** @brief The world up direction. */
	Up math.Vec3
	/** @brief Vertical field of view in degrees. */
	FOVDegrees float32
	/** @brief Near clip distance. */
	NearClip float32
	/** @brief Far clip distance. */
	FarClip float32
}

// NewCamera returns a camera placed at the vantage point the scene
// was composed for.
func NewCamera() *Camera {
	return &Camera{
		Position:   math.Vec3{X: 0.0, Y: 7.0, Z: 17.0},
		Target:     math.Vec3{X: -1.0, Y: 5.0, Z: 0.0},
		Up:         math.Vec3{Y: 1.0},
		FOVDegrees: 45.0,
		NearClip:   0.1,
		FarClip:    100.0,
	}
}

func (c *Camera) View() math.Mat4 {
	return math.NewMat4LookAt(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection(aspect float32) math.Mat4 {
	return math.NewMat4Perspective(math.DegToRad(c.FOVDegrees), aspect, c.NearClip, c.FarClip)
}

// Forward returns the unit direction from the eye to the target.
func (c *Camera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalized()
}
