package systems

import (
	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// LightSystem pushes a fixed light catalog into shader uniform state.
// It runs once during scene preparation; re-running it overwrites the
// uniforms with identical values.
type LightSystem struct {
	program renderer.ShaderProgram
}

func NewLightSystem(program renderer.ShaderProgram) *LightSystem {
	return &LightSystem{program: program}
}

// Configure writes every light descriptor plus the global lighting
// toggle. A nil shader program makes the call a no-op.
func (ls *LightSystem) Configure(lights *metadata.SceneLights) {
	if ls.program == nil {
		return
	}

	ls.program.SetBool(UniformUseLighting, lights.UseLighting)

	ls.program.SetVec3("directionalLight.direction", lights.Directional.Direction)
	ls.program.SetVec3("directionalLight.ambient", lights.Directional.Ambient)
	ls.program.SetVec3("directionalLight.diffuse", lights.Directional.Diffuse)
	ls.program.SetVec3("directionalLight.specular", lights.Directional.Specular)
	ls.program.SetBool("directionalLight.bActive", lights.Directional.Active)

	ls.program.SetVec3("pointLights[0].direction", lights.Point.Direction)
	ls.program.SetVec3("pointLights[0].ambient", lights.Point.Ambient)
	ls.program.SetVec3("pointLights[0].diffuse", lights.Point.Diffuse)
	ls.program.SetVec3("pointLights[0].specular", lights.Point.Specular)
	ls.program.SetBool("pointLights[0].bActive", lights.Point.Active)

	ls.program.SetVec3("spotlight.ambient", lights.Spot.Ambient)
	ls.program.SetVec3("spotlight.diffuse", lights.Spot.Diffuse)
	ls.program.SetVec3("spotlight.specular", lights.Spot.Specular)
	ls.program.SetFloat("spotlight.constant", lights.Spot.Constant)
	ls.program.SetFloat("spotlight.linear", lights.Spot.Linear)
	ls.program.SetFloat("spotlight.quadratic", lights.Spot.Quadratic)
	// the shader compares against cosines to avoid a per-fragment acos
	ls.program.SetFloat("spotlight.cutOff", math.Cos(math.DegToRad(lights.Spot.CutoffDeg)))
	ls.program.SetFloat("spotlight.outerCutoff", math.Cos(math.DegToRad(lights.Spot.OuterCutoffDeg)))
	ls.program.SetBool("spotlight.bActive", lights.Spot.Active)
}
