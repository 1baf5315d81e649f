package systems

import (
	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer"
)

// Uniform names shared with the scene shader sources.
const (
	UniformModel         = "model"
	UniformObjectColor   = "objectColor"
	UniformObjectTexture = "objectTexture"
	UniformUseTexture    = "bUseTexture"
	UniformUseLighting   = "bUseLighting"
	UniformUVScale       = "UVscale"

	UniformMaterialDiffuse   = "material.diffuseColor"
	UniformMaterialSpecular  = "material.specularColor"
	UniformMaterialShininess = "material.shininess"
)

// ShaderStateSystem pushes per-draw state into the active shader
// program. Uniform state is sticky: nothing is reset between draw
// calls, so each draw must explicitly set every uniform it depends
// on, or it inherits whatever the previous draw left behind.
//
// Every setter is a silent no-op when no shader program is bound.
type ShaderStateSystem struct {
	program renderer.ShaderProgram
	// sub systems
	textureSystem  *TextureSystem
	materialSystem *MaterialSystem
}

func NewShaderStateSystem(program renderer.ShaderProgram, ts *TextureSystem, ms *MaterialSystem) *ShaderStateSystem {
	return &ShaderStateSystem{
		program:        program,
		textureSystem:  ts,
		materialSystem: ms,
	}
}

// SetTransform writes the model matrix for the next draw call.
func (ss *ShaderStateSystem) SetTransform(model math.Mat4) {
	if ss.program == nil {
		return
	}
	ss.program.SetMat4(UniformModel, model)
}

// SetColor switches the next draw call to flat-color mode. Mutually
// exclusive with SetTexture; whichever ran last wins, since both
// write the same use-texture flag.
func (ss *ShaderStateSystem) SetColor(r, g, b, a float32) {
	if ss.program == nil {
		return
	}
	ss.program.SetBool(UniformUseTexture, false)
	ss.program.SetVec4(UniformObjectColor, math.Vec4{X: r, Y: g, Z: b, W: a})
}

// SetTexture switches the next draw call to texture-sampling mode and
// selects the texture unit registered under the tag. An unknown tag
// resolves to -1 and the sampler uniform is written with it anyway,
// leaving the draw sampling an unbound unit rather than failing.
func (ss *ShaderStateSystem) SetTexture(tag string) {
	if ss.program == nil {
		return
	}
	ss.program.SetBool(UniformUseTexture, true)
	slot := ss.textureSystem.Slot(tag)
	ss.program.SetInt(UniformObjectTexture, int32(slot))
}

// SetMaterial writes the material properties registered under the
// tag. An unknown tag writes nothing, so the previously bound
// material stays in effect.
func (ss *ShaderStateSystem) SetMaterial(tag string) {
	if ss.program == nil {
		return
	}
	material, found := ss.materialSystem.Find(tag)
	if !found {
		return
	}
	ss.program.SetVec3(UniformMaterialDiffuse, material.DiffuseColor)
	ss.program.SetVec3(UniformMaterialSpecular, material.SpecularColor)
	ss.program.SetFloat(UniformMaterialShininess, material.Shininess)
}

// SetUVScale writes the texture coordinate multiplier, independent of
// texture and material state.
func (ss *ShaderStateSystem) SetUVScale(u, v float32) {
	if ss.program == nil {
		return
	}
	ss.program.SetVec2(UniformUVScale, math.Vec2{X: u, Y: v})
}
