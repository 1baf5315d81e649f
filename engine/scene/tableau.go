package scene

import (
	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// textureEntry pairs an image file (relative to the asset directory)
// with the tag it is registered under.
type textureEntry struct {
	File string
	Tag  string
}

// sceneTextures is the fixed texture set, loaded in this order. The
// registration order determines the texture unit each one is bound
// to, so reordering entries changes slot assignments but not tags.
var sceneTextures = []textureEntry{
	{File: "textures/bat_face.jpg", Tag: "bat_face"},
	{File: "textures/black_brim.jpg", Tag: "black_brim"},
	{File: "textures/treebark1.jpg", Tag: "stem"},
	{File: "textures/black_fur.jpg", Tag: "black_fur"},
	{File: "textures/cauldron3.jpg", Tag: "cauldron"},
	{File: "textures/pumpkin2.jpg", Tag: "pumpkin"},
	{File: "textures/straw1.jpg", Tag: "straw_ends"},
	{File: "textures/potion.jpg", Tag: "potion"},
	{File: "textures/pavers.jpg", Tag: "pavers"},
	{File: "textures/wood_planks.jpg", Tag: "wood_planks"},
}

var uvOnce = math.Vec2{X: 1.0, Y: 1.0}

// tableau is the scene content: every draw call of a frame, in order.
// The numeric literals are the composition itself, not parameters to
// tune. Objects without a texture or material tag deliberately
// inherit the sticky state of the previous draw.
var tableau = []metadata.Assembly{
	{
		Name: "background",
		Objects: []metadata.RenderObject{
			// floor
			{
				Shape:    metadata.ShapePlane,
				Scale:    math.Vec3{X: 20.0, Y: 1.0, Z: 10.0},
				Position: math.Vec3{X: 0.0, Y: 0.0, Z: 0.0},
				Texture:  "pavers",
				UVScale:  uvOnce,
				Material: "cement",
			},
			// backdrop
			{
				Shape:    metadata.ShapePlane,
				Scale:    math.Vec3{X: 20.0, Y: 100.0, Z: 10.0},
				Rotation: math.Vec3{X: 90.0},
				Position: math.Vec3{X: 0.0, Y: 10.0, Z: -10.0},
				Texture:  "wood_planks",
				UVScale:  uvOnce,
				Material: "wood",
			},
		},
	},
	{
		Name: "cauldron",
		Objects: []metadata.RenderObject{
			// belly
			{
				Shape:    metadata.ShapeHalfSphere,
				Scale:    math.Vec3{X: 2.5, Y: 2.5, Z: 2.5},
				Rotation: math.Vec3{X: 180.0},
				Position: math.Vec3{X: -4.5, Y: 2.88, Z: 0.0},
				Texture:  "cauldron",
				UVScale:  uvOnce,
				Material: "metal",
			},
			// potion surface
			{
				Shape:    metadata.ShapeTaperedCylinder,
				Scale:    math.Vec3{X: 2.5, Y: 0.5, Z: 2.5},
				Rotation: math.Vec3{X: 180.0},
				Position: math.Vec3{X: -4.5, Y: 2.88, Z: 0.0},
				Texture:  "potion",
				UVScale:  uvOnce,
				Material: "potion",
			},
			// rim
			{
				Shape:    metadata.ShapeTorus,
				Scale:    math.Vec3{X: 2.2, Y: 2.2, Z: 2.2},
				Rotation: math.Vec3{X: 90.0},
				Position: math.Vec3{X: -4.5, Y: 2.88, Z: 0.0},
				Texture:  "cauldron",
				Material: "metal",
			},
			// legs
			{
				Shape:    metadata.ShapeTaperedCylinder,
				Scale:    math.Vec3{X: 0.35, Y: 0.9, Z: 0.35},
				Rotation: math.Vec3{X: 180.0, Y: -10.0, Z: 20.0},
				Position: math.Vec3{X: -5.8, Y: 0.9, Z: 0.25},
				Texture:  "cauldron",
				Material: "metal",
			},
			{
				Shape:    metadata.ShapeTaperedCylinder,
				Scale:    math.Vec3{X: 0.35, Y: 0.9, Z: 0.35},
				Rotation: math.Vec3{X: 180.0, Y: 110.0, Z: 20.0},
				Position: math.Vec3{X: -4.5, Y: 0.9, Z: -1.3},
				Texture:  "cauldron",
				Material: "metal",
			},
			{
				Shape:    metadata.ShapeTaperedCylinder,
				Scale:    math.Vec3{X: 0.35, Y: 0.9, Z: 0.35},
				Rotation: math.Vec3{X: 180.0, Y: 230.0, Z: 20.0},
				Position: math.Vec3{X: -3.5, Y: 0.9, Z: 1.0},
				Texture:  "cauldron",
				Material: "metal",
			},
		},
	},
	{
		Name: "straw_bale",
		Objects: []metadata.RenderObject{
			{
				Shape:    metadata.ShapeBox,
				Scale:    math.Vec3{X: 4.0, Y: 8.0, Z: 4.0},
				Rotation: math.Vec3{Y: 125.0, Z: 90.0},
				Position: math.Vec3{X: 0.5, Y: 2.001, Z: -1.0},
				Texture:  "straw_ends",
				UVScale:  uvOnce,
				Material: "straw",
			},
		},
	},
	{
		Name: "first_pumpkin",
		Objects: []metadata.RenderObject{
			{
				Shape:    metadata.ShapeSphere,
				Scale:    math.Vec3{X: 1.6, Y: 1.4, Z: 1.6},
				Position: math.Vec3{X: 1.5, Y: 5.251, Z: 1.0},
				Texture:  "pumpkin",
				UVScale:  uvOnce,
				Material: "pumpkin",
			},
			{
				Shape:    metadata.ShapeTaperedCylinder,
				Scale:    math.Vec3{X: 0.3, Y: 0.6, Z: 0.3},
				Rotation: math.Vec3{Y: 180.0, Z: 15.0},
				Position: math.Vec3{X: 1.5, Y: 6.551, Z: 1.0},
				Texture:  "stem",
				UVScale:  uvOnce,
				Material: "stem",
			},
		},
	},
	{
		Name: "second_pumpkin",
		Objects: []metadata.RenderObject{
			{
				Shape:    metadata.ShapeSphere,
				Scale:    math.Vec3{X: 1.9, Y: 1.5, Z: 1.9},
				Rotation: math.Vec3{Y: 45.0},
				Position: math.Vec3{X: 0.25, Y: 5.451, Z: -2.1},
				Texture:  "pumpkin",
				UVScale:  uvOnce,
				Material: "pumpkin",
			},
		},
	},
	{
		Name: "witch_hat",
		Objects: []metadata.RenderObject{
			// crown
			{
				Shape:    metadata.ShapeCone,
				Scale:    math.Vec3{X: 1.2, Y: 3.7, Z: 1.2},
				Rotation: math.Vec3{Y: 180.0, Z: -7.5},
				Position: math.Vec3{X: 0.2, Y: 6.8, Z: -2.3},
				Texture:  "black_brim",
				UVScale:  uvOnce,
				Material: "cloth",
			},
			// brim
			{
				Shape:    metadata.ShapeCylinder,
				Scale:    math.Vec3{X: 2.25, Y: 0.1, Z: 2.25},
				Rotation: math.Vec3{Y: 180.0, Z: -7.5},
				Position: math.Vec3{X: 0.2, Y: 6.8, Z: -2.3},
				Texture:  "black_brim",
				UVScale:  uvOnce,
				Material: "cloth",
			},
		},
	},
	{
		Name: "bat",
		Objects: []metadata.RenderObject{
			// head
			{
				Shape:    metadata.ShapeSphere,
				Scale:    math.Vec3{X: 0.75, Y: 0.5, Z: 0.62},
				Rotation: math.Vec3{X: 20.0, Y: 25.0, Z: 20.0},
				Position: math.Vec3{X: -7.3, Y: 9.88, Z: -3.0},
				Texture:  "bat_face",
				UVScale:  uvOnce,
				Material: "cloth",
			},
			// body
			{
				Shape:    metadata.ShapeSphere,
				Scale:    math.Vec3{X: 1.25, Y: 1.0, Z: 1.0},
				Rotation: math.Vec3{X: 20.0, Y: 20.0},
				Position: math.Vec3{X: -7.0, Y: 9.2, Z: -3.95},
				Texture:  "black_fur",
				UVScale:  uvOnce,
				Material: "cloth",
			},
			// left wing, inner to outer; the wings inherit the fur
			// texture and cloth material bound by the body
			{
				Shape:    metadata.ShapePrism,
				Scale:    math.Vec3{X: 1.6, Y: 0.15, Z: 1.6},
				Rotation: math.Vec3{X: 155.0, Y: 25.0, Z: -30.0},
				Position: math.Vec3{X: -5.7, Y: 9.9, Z: -3.85},
			},
			{
				Shape:    metadata.ShapePrism,
				Scale:    math.Vec3{X: 1.9, Y: 0.15, Z: 1.9},
				Rotation: math.Vec3{X: 155.0, Y: 35.0, Z: -30.0},
				Position: math.Vec3{X: -4.7, Y: 10.58, Z: -3.65},
			},
			{
				Shape:    metadata.ShapePrism,
				Scale:    math.Vec3{X: 2.1, Y: 0.15, Z: 1.9},
				Rotation: math.Vec3{X: 155.0, Y: 50.0, Z: -30.0},
				Position: math.Vec3{X: -3.7, Y: 11.5, Z: -3.15},
			},
			// right wing, inner to outer
			{
				Shape:    metadata.ShapePrism,
				Scale:    math.Vec3{X: 1.65, Y: 0.15, Z: 1.6},
				Rotation: math.Vec3{X: 140.0, Y: -23.0, Z: -25.0},
				Position: math.Vec3{X: -8.65, Y: 8.6, Z: -3.6},
			},
			{
				Shape:    metadata.ShapePrism,
				Scale:    math.Vec3{X: 1.9, Y: 0.15, Z: 1.9},
				Rotation: math.Vec3{X: 140.0, Y: -27.0, Z: -25.0},
				Position: math.Vec3{X: -9.6, Y: 8.45, Z: -3.1},
			},
			{
				Shape:    metadata.ShapePrism,
				Scale:    math.Vec3{X: 2.1, Y: 0.15, Z: 1.9},
				Rotation: math.Vec3{X: 140.0, Y: -35.0, Z: -25.0},
				Position: math.Vec3{X: -10.8, Y: 8.45, Z: -2.2},
			},
			// legs
			{
				Shape:    metadata.ShapeTaperedCylinder,
				Scale:    math.Vec3{X: 0.1, Y: 0.5, Z: 0.1},
				Rotation: math.Vec3{Y: 45.0, Z: 55.0},
				Position: math.Vec3{X: -5.8, Y: 8.4, Z: -4.5},
			},
			{
				Shape:    metadata.ShapeTaperedCylinder,
				Scale:    math.Vec3{X: 0.1, Y: 0.5, Z: 0.1},
				Rotation: math.Vec3{Y: 135.0, Z: 25.0},
				Position: math.Vec3{X: -7.3, Y: 7.8, Z: -4.2},
			},
			// ears
			{
				Shape:    metadata.ShapeHalfSphere,
				Scale:    math.Vec3{X: 0.28, Y: 0.25, Z: 0.78},
				Rotation: math.Vec3{X: -50.0, Y: 30.0, Z: 20.0},
				Position: math.Vec3{X: -6.9, Y: 10.25, Z: -2.85},
			},
			{
				Shape:    metadata.ShapeHalfSphere,
				Scale:    math.Vec3{X: 0.28, Y: 0.25, Z: 0.78},
				Rotation: math.Vec3{X: -25.0, Y: -60.0, Z: 60.0},
				Position: math.Vec3{X: -7.8, Y: 9.9, Z: -2.55},
			},
		},
	},
}
