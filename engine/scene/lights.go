package scene

import (
	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// sceneLights is the fixed light catalog, configured once during
// scene preparation.
var sceneLights = metadata.SceneLights{
	UseLighting: true,

	// directional light emulating moonlight coming into the scene
	Directional: metadata.DirectionalLight{
		Direction: math.Vec3{X: -0.05, Y: -0.03, Z: -10.1},
		Ambient:   math.Vec3{X: 0.282, Y: 0.239, Z: 0.54},
		Diffuse:   math.Vec3{X: 0.06, Y: 0.06, Z: 0.06},
		Specular:  math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		Active:    true,
	},

	// a faint green glow above the cauldron
	Point: metadata.PointLight{
		Direction: math.Vec3{X: 5.0, Y: 14.0, Z: 0.0},
		Ambient:   math.Vec3{X: 0.0, Y: 0.003, Z: 0.0},
		Diffuse:   math.Vec3{X: 0.01, Y: 0.05, Z: 0.01},
		Specular:  math.Vec3{X: 0.1, Y: 0.3, Z: 0.1},
		Active:    true,
	},

	Spot: metadata.Spotlight{
		Ambient:        math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
		Diffuse:        math.Vec3{X: 1.0, Y: 1.0, Z: 1.0},
		Specular:       math.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
		Constant:       1.0,
		Linear:         0.09,
		Quadratic:      0.032,
		CutoffDeg:      42.5,
		OuterCutoffDeg: 48.0,
		Active:         true,
	},
}
