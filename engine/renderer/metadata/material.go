package metadata

import "github.com/spaghettifunk/lantern/engine/math"

/**
 * @brief A material, which represents the surface properties applied
 * to an object during lighting calculations.
 */
type Material struct {
	/** @brief The human-readable tag the material is looked up by. */
	Tag string
	/** @brief The diffuse colour of the material. */
	DiffuseColor math.Vec3
	/** @brief The specular colour of the material. */
	SpecularColor math.Vec3
	/** @brief The material shininess, determines how concentrated the specular lighting is. */
	Shininess float32
}
