package scene

import (
	"github.com/spaghettifunk/lantern/engine/core"
	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
	"github.com/spaghettifunk/lantern/engine/systems"
)

// SceneManager assembles and renders the fixed tableau. The scene
// content lives in the declarative tables of this package (textures,
// materials, lights, assemblies); this type is only the mechanism
// that walks them.
//
// Two phases, no transitions back: PrepareScene once, then
// RenderScene once per frame.
type SceneManager struct {
	systems *systems.SystemManager
	backend renderer.Backend
}

func NewSceneManager(sm *systems.SystemManager, backend renderer.Backend) *SceneManager {
	return &SceneManager{
		systems: sm,
		backend: backend,
	}
}

// PrepareScene loads the texture set, registers the material catalog,
// configures the lights and uploads the primitive meshes. A texture
// that fails to load is logged and skipped; the scene degrades
// visually instead of aborting. Mesh upload failures are fatal since
// nothing could be drawn without geometry.
func (s *SceneManager) PrepareScene() error {
	failures := 0
	for _, t := range sceneTextures {
		if !s.systems.TextureSystem.RegisterTexture(t.File, t.Tag) {
			failures++
		}
	}
	if failures > 0 {
		core.LogWarn("%d of %d scene textures failed to load; affected objects will render without them", failures, len(sceneTextures))
	}

	// the loaded textures need to be bound to sequential texture
	// units before any draw call resolves a tag to a slot
	s.systems.TextureSystem.BindAll()

	for _, m := range sceneMaterials {
		s.systems.MaterialSystem.RegisterMaterial(m)
	}

	s.systems.LightSystem.Configure(&sceneLights)

	// one instance of each primitive mesh is enough no matter how
	// many times it is drawn
	for _, shape := range metadata.AllShapes {
		if err := s.backend.MeshUpload(shape); err != nil {
			return err
		}
	}

	return nil
}

// RenderScene walks the tableau and issues every draw call in its
// fixed order. Redrawing is idempotent with respect to GPU state.
func (s *SceneManager) RenderScene() {
	for _, assembly := range tableau {
		for _, obj := range assembly.Objects {
			s.drawObject(obj)
		}
	}
}

// drawObject converts one tableau entry into shader state and a draw
// call. The binding order (transform, texture, UV scale, material)
// matters only in that skipped bindings leave sticky state from the
// previous object in effect.
func (s *SceneManager) drawObject(obj metadata.RenderObject) {
	state := s.systems.ShaderState

	model := math.ComposeModel(obj.Scale, obj.Rotation.X, obj.Rotation.Y, obj.Rotation.Z, obj.Position)
	state.SetTransform(model)

	if obj.Texture != "" {
		state.SetTexture(obj.Texture)
	}
	if obj.UVScale != (math.Vec2{}) {
		state.SetUVScale(obj.UVScale.X, obj.UVScale.Y)
	}
	if obj.Material != "" {
		state.SetMaterial(obj.Material)
	}

	s.backend.MeshDraw(obj.Shape)
}
