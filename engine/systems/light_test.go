package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

func testLights() metadata.SceneLights {
	return metadata.SceneLights{
		UseLighting: true,
		Directional: metadata.DirectionalLight{
			Direction: math.Vec3{X: -0.05, Y: -0.03, Z: -10.1},
			Active:    true,
		},
		Point: metadata.PointLight{
			Direction: math.Vec3{X: 5.0, Y: 14.0, Z: 0.0},
			Active:    true,
		},
		Spot: metadata.Spotlight{
			Constant:       1.0,
			Linear:         0.09,
			Quadratic:      0.032,
			CutoffDeg:      42.5,
			OuterCutoffDeg: 48.0,
			Active:         true,
		},
	}
}

func TestConfigureWritesCutoffAnglesAsCosines(t *testing.T) {
	program := &recordingProgram{}
	lights := testLights()

	NewLightSystem(program).Configure(&lights)

	cutoff, ok := program.last("spotlight.cutOff")
	require.True(t, ok)
	assert.InDelta(t, math.Cos(math.DegToRad(42.5)), cutoff.(float32), 1e-6)

	outer, ok := program.last("spotlight.outerCutoff")
	require.True(t, ok)
	assert.InDelta(t, math.Cos(math.DegToRad(48.0)), outer.(float32), 1e-6)
}

func TestConfigureWritesActivityFlags(t *testing.T) {
	program := &recordingProgram{}
	lights := testLights()

	NewLightSystem(program).Configure(&lights)

	for _, name := range []string{
		UniformUseLighting,
		"directionalLight.bActive",
		"pointLights[0].bActive",
		"spotlight.bActive",
	} {
		value, ok := program.last(name)
		require.True(t, ok, name)
		assert.Equal(t, true, value, name)
	}
}

func TestConfigureWritesPointLightPosition(t *testing.T) {
	program := &recordingProgram{}
	lights := testLights()

	NewLightSystem(program).Configure(&lights)

	value, ok := program.last("pointLights[0].direction")
	require.True(t, ok)
	assert.Equal(t, math.Vec3{X: 5.0, Y: 14.0, Z: 0.0}, value)
}

func TestConfigureNilProgramIsNoop(t *testing.T) {
	lights := testLights()
	assert.NotPanics(t, func() {
		NewLightSystem(nil).Configure(&lights)
	})
}
