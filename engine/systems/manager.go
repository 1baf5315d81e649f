package systems

import (
	"github.com/spaghettifunk/lantern/engine/assets"
	"github.com/spaghettifunk/lantern/engine/renderer"
)

// SystemManager wires the registries and binders together and owns
// their lifecycle. There is exactly one writer (the setup/render call
// sequence), so no locking is involved.
type SystemManager struct {
	TextureSystem  *TextureSystem
	MaterialSystem *MaterialSystem
	ShaderState    *ShaderStateSystem
	LightSystem    *LightSystem
}

func NewSystemManager(program renderer.ShaderProgram, backend renderer.Backend, am *assets.AssetManager) (*SystemManager, error) {
	ts, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureCount: MaxTextureUnits,
	}, am, backend)
	if err != nil {
		return nil, err
	}

	ms := NewMaterialSystem()

	return &SystemManager{
		TextureSystem:  ts,
		MaterialSystem: ms,
		ShaderState:    NewShaderStateSystem(program, ts, ms),
		LightSystem:    NewLightSystem(program),
	}, nil
}

func (sm *SystemManager) Shutdown() error {
	return sm.TextureSystem.Shutdown()
}
