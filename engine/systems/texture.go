package systems

import (
	"fmt"

	"github.com/spaghettifunk/lantern/engine/assets"
	"github.com/spaghettifunk/lantern/engine/core"
	"github.com/spaghettifunk/lantern/engine/renderer"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// MaxTextureUnits is the number of texture units the scene shader can
// sample from. Registration beyond this bound fails.
const MaxTextureUnits uint32 = 16

type TextureSystemConfig struct {
	/** @brief The maximum number of textures that can be registered at once. */
	MaxTextureCount uint32
}

// TextureSystem owns the tag-keyed registry of GPU-resident textures.
// The index of a texture in registration order doubles as the texture
// unit it is bound to by BindAll.
type TextureSystem struct {
	Config *TextureSystemConfig
	// Registered textures, in registration order.
	RegisteredTextures []*metadata.Texture
	// sub systems
	assetManager *assets.AssetManager
	backend      renderer.Backend
}

func NewTextureSystem(config *TextureSystemConfig, am *assets.AssetManager, backend renderer.Backend) (*TextureSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("func NewTextureSystem - config.MaxTextureCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	if config.MaxTextureCount > MaxTextureUnits {
		core.LogWarn("func NewTextureSystem - config.MaxTextureCount %d exceeds the %d available texture units; clamping", config.MaxTextureCount, MaxTextureUnits)
		config.MaxTextureCount = MaxTextureUnits
	}

	return &TextureSystem{
		Config:             config,
		RegisteredTextures: make([]*metadata.Texture, 0, config.MaxTextureCount),
		assetManager:       am,
		backend:            backend,
	}, nil
}

// RegisterTexture decodes the image at filePath, uploads it to the
// GPU and appends it to the registry under the given tag. A failure
// (decode error, unsupported channel count, full registry) is logged
// and leaves the registry unchanged.
func (ts *TextureSystem) RegisterTexture(filePath, tag string) bool {
	if uint32(len(ts.RegisteredTextures)) >= ts.Config.MaxTextureCount {
		core.LogError("cannot register texture '%s': all %d texture slots are in use", tag, ts.Config.MaxTextureCount)
		return false
	}

	img, err := ts.assetManager.LoadImage(filePath)
	if err != nil {
		core.LogError("could not load image %s: %v", filePath, err)
		return false
	}

	if img.ChannelCount != 3 && img.ChannelCount != 4 {
		core.LogError("image %s has %d channels; only 3- and 4-channel images are supported", filePath, img.ChannelCount)
		return false
	}

	handle, err := ts.backend.TextureCreate(img)
	if err != nil {
		core.LogError("could not upload texture '%s': %v", tag, err)
		return false
	}

	core.LogInfo("loaded texture '%s' from %s (%dx%d, %d channels)", tag, filePath, img.Width, img.Height, img.ChannelCount)

	ts.RegisteredTextures = append(ts.RegisteredTextures, &metadata.Texture{
		Tag:          tag,
		Handle:       handle,
		Width:        img.Width,
		Height:       img.Height,
		ChannelCount: img.ChannelCount,
	})

	return true
}

// BindAll binds every registered texture to a sequential texture
// unit, in registration order starting at unit 0. Must be called once
// after registration and before any draw that samples by slot.
func (ts *TextureSystem) BindAll() {
	for i, t := range ts.RegisteredTextures {
		ts.backend.TextureBind(uint32(i), t.Handle)
	}
}

// Slot returns the texture unit assigned to the tag, or -1 when the
// tag was never registered.
func (ts *TextureSystem) Slot(tag string) int {
	for i, t := range ts.RegisteredTextures {
		if t.Tag == tag {
			return i
		}
	}
	return -1
}

// Count returns the number of registered textures.
func (ts *TextureSystem) Count() int {
	return len(ts.RegisteredTextures)
}

// Shutdown releases every registered GPU texture in bulk.
func (ts *TextureSystem) Shutdown() error {
	if len(ts.RegisteredTextures) == 0 {
		return nil
	}
	handles := make([]uint32, len(ts.RegisteredTextures))
	for i, t := range ts.RegisteredTextures {
		handles[i] = t.Handle
	}
	ts.backend.TexturesDestroy(handles)
	ts.RegisteredTextures = ts.RegisteredTextures[:0]
	return nil
}
