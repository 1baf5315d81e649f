package renderer

import (
	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// ShaderProgram is the named-uniform surface of the active shader
// program. Implementations write values into GPU uniform state; the
// values persist until overwritten.
type ShaderProgram interface {
	SetMat4(name string, value math.Mat4)
	SetVec2(name string, value math.Vec2)
	SetVec3(name string, value math.Vec3)
	SetVec4(name string, value math.Vec4)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetBool(name string, value bool)
}

// Backend is the GPU capability the systems draw through. Exactly one
// backend exists per engine and all calls happen on the render thread.
type Backend interface {
	Initialize() error
	Shutdown() error
	// BeginFrame clears the render targets ahead of a new frame.
	BeginFrame()
	// TextureCreate uploads decoded image data as a 2D texture with
	// repeat wrapping, linear filtering and generated mipmaps. Only
	// 3- and 4-channel images are supported.
	TextureCreate(img *metadata.ImageData) (uint32, error)
	// TextureBind makes the texture available for sampling on the
	// given texture unit.
	TextureBind(unit uint32, handle uint32)
	// TexturesDestroy releases the given texture handles in bulk.
	TexturesDestroy(handles []uint32)
	// MeshUpload tessellates the primitive and uploads its geometry.
	// Uploading the same shape twice is a no-op.
	MeshUpload(shape metadata.Shape) error
	// MeshDraw issues the draw call for a previously uploaded
	// primitive, consuming the currently bound uniform state.
	MeshDraw(shape metadata.Shape)
}
