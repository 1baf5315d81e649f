package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

func TestFindReturnsRegisteredMaterial(t *testing.T) {
	ms := NewMaterialSystem()
	ms.RegisterMaterial(metadata.Material{
		Tag:           "pumpkin",
		DiffuseColor:  math.Vec3{X: 1.0, Y: 0.65, Z: 0.0},
		SpecularColor: math.Vec3{X: 1.0, Y: 0.85, Z: 0.0},
		Shininess:     12.0,
	})

	m, found := ms.Find("pumpkin")
	require.True(t, found)
	assert.Equal(t, math.Vec3{X: 1.0, Y: 0.65, Z: 0.0}, m.DiffuseColor)
	assert.Equal(t, float32(12.0), m.Shininess)
}

func TestFindOnEmptyCatalogMisses(t *testing.T) {
	ms := NewMaterialSystem()
	_, found := ms.Find("anything")
	assert.False(t, found)
	assert.Equal(t, 0, ms.Count())
}

func TestDuplicateTagFirstRegistrationWins(t *testing.T) {
	ms := NewMaterialSystem()
	ms.RegisterMaterial(metadata.Material{Tag: "cloth", Shininess: 2.0})
	ms.RegisterMaterial(metadata.Material{Tag: "cloth", Shininess: 99.0})

	m, found := ms.Find("cloth")
	require.True(t, found)
	assert.Equal(t, float32(2.0), m.Shininess)

	// the duplicate is kept but can never be reached
	assert.Equal(t, 2, ms.Count())
}
