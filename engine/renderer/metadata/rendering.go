package metadata

import "github.com/spaghettifunk/lantern/engine/math"

/**
 * @brief One logical object in the tableau: a primitive mesh plus the
 * shader state configured right before it is drawn.
 *
 * An empty Texture or Material tag means the corresponding uniforms
 * are left untouched, so the draw inherits whatever the previous
 * object bound. A zero UVScale likewise skips the UVscale write.
 * Uniform state is sticky across draw calls; there is no reset.
 */
type RenderObject struct {
	Shape    Shape
	Scale    math.Vec3
	Rotation math.Vec3 // per-axis rotation in degrees
	Position math.Vec3
	Texture  string
	Material string
	UVScale  math.Vec2
}

// Assembly groups the ordered draw calls of one logical part of
// the scene.
type Assembly struct {
	Name    string
	Objects []RenderObject
}
