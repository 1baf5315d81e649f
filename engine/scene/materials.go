package scene

import (
	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// sceneMaterials is the fixed material catalog of the tableau.
var sceneMaterials = []metadata.Material{
	{
		Tag:           "metal",
		DiffuseColor:  math.Vec3{X: 0.41, Y: 0.41, Z: 0.41},
		SpecularColor: math.Vec3{X: 0.502, Y: 0.502, Z: 0.502},
		Shininess:     22.0,
	},
	{
		Tag:           "pumpkin",
		DiffuseColor:  math.Vec3{X: 1.0, Y: 0.65, Z: 0.0},
		SpecularColor: math.Vec3{X: 1.0, Y: 0.85, Z: 0.0},
		Shininess:     12.0,
	},
	{
		Tag:           "potion",
		DiffuseColor:  math.Vec3{X: 0.0, Y: 0.89, Z: 0.0},
		SpecularColor: math.Vec3{X: 0.0, Y: 1.0, Z: 0.0},
		Shininess:     15.0,
	},
	{
		Tag:           "straw",
		DiffuseColor:  math.Vec3{X: 0.10, Y: 0.089, Z: 0.071},
		SpecularColor: math.Vec3{X: 0.10, Y: 0.089, Z: 0.0},
		Shininess:     2.0,
	},
	{
		Tag:           "cloth",
		DiffuseColor:  math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
		SpecularColor: math.Vec3{X: 0.15, Y: 0.15, Z: 0.15},
		Shininess:     2.0,
	},
	{
		Tag:           "cement",
		DiffuseColor:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		SpecularColor: math.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
		Shininess:     0.5,
	},
	{
		Tag:           "wood",
		DiffuseColor:  math.Vec3{X: 0.82, Y: 0.71, Z: 0.55},
		SpecularColor: math.Vec3{X: 0.96, Y: 0.87, Z: 0.70},
		Shininess:     0.3,
	},
	{
		Tag:           "stem",
		DiffuseColor:  math.Vec3{X: 0.55, Y: 0.27, Z: 0.075},
		SpecularColor: math.Vec3{X: 0.55, Y: 0.27, Z: 0.075},
		Shininess:     0.2,
	},
}
