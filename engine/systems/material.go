package systems

import (
	"github.com/spaghettifunk/lantern/engine/core"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// MaterialSystem owns the tag-keyed catalog of material properties.
// Lookups scan in registration order and return the first match, so a
// duplicate registration can never be reached; it is kept but warned
// about.
type MaterialSystem struct {
	// Registered materials, in registration order.
	RegisteredMaterials []metadata.Material
}

func NewMaterialSystem() *MaterialSystem {
	return &MaterialSystem{
		RegisteredMaterials: make([]metadata.Material, 0),
	}
}

// RegisterMaterial appends a material definition to the catalog.
func (ms *MaterialSystem) RegisterMaterial(material metadata.Material) {
	if _, found := ms.Find(material.Tag); found {
		core.LogWarn("material tag '%s' already registered; the first registration wins on lookup", material.Tag)
	}
	ms.RegisteredMaterials = append(ms.RegisteredMaterials, material)
}

// Find returns the first material registered under the tag. The
// second return value is false when the tag is unknown or the catalog
// is empty.
func (ms *MaterialSystem) Find(tag string) (metadata.Material, bool) {
	for _, m := range ms.RegisteredMaterials {
		if m.Tag == tag {
			return m, true
		}
	}
	return metadata.Material{}, false
}

// Count returns the number of registered materials, duplicates
// included.
func (ms *MaterialSystem) Count() int {
	return len(ms.RegisteredMaterials)
}
