package metadata

import "github.com/spaghettifunk/lantern/engine/math"

// DirectionalLight models a light source infinitely far away,
// like moonlight over the tableau.
type DirectionalLight struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Active    bool
}

// PointLight models a positional light source. The position vector is
// written to the shader's `direction` member, matching the fragment
// shader's struct layout.
type PointLight struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Active    bool
}

// Spotlight models a cone light with distance attenuation. Cutoff
// angles are held in degrees and written to the shader as cosines.
type Spotlight struct {
	Ambient        math.Vec3
	Diffuse        math.Vec3
	Specular       math.Vec3
	Constant       float32
	Linear         float32
	Quadratic      float32
	CutoffDeg      float32
	OuterCutoffDeg float32
	Active         bool
}

// SceneLights is the fixed light catalog for a scene: exactly one
// directional light, one point light and one spotlight.
type SceneLights struct {
	UseLighting bool
	Directional DirectionalLight
	Point       PointLight
	Spot        Spotlight
}
