package systems

import (
	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// uniformWrite captures a single named uniform store.
type uniformWrite struct {
	Name  string
	Value any
}

// recordingProgram implements renderer.ShaderProgram and records every
// write in order, so tests can assert on sticky uniform state.
type recordingProgram struct {
	Writes []uniformWrite
}

func (p *recordingProgram) record(name string, value any) {
	p.Writes = append(p.Writes, uniformWrite{Name: name, Value: value})
}

func (p *recordingProgram) SetMat4(name string, value math.Mat4) { p.record(name, value) }
func (p *recordingProgram) SetVec2(name string, value math.Vec2) { p.record(name, value) }
func (p *recordingProgram) SetVec3(name string, value math.Vec3) { p.record(name, value) }
func (p *recordingProgram) SetVec4(name string, value math.Vec4) { p.record(name, value) }
func (p *recordingProgram) SetInt(name string, value int32)      { p.record(name, value) }
func (p *recordingProgram) SetFloat(name string, value float32)  { p.record(name, value) }
func (p *recordingProgram) SetBool(name string, value bool)      { p.record(name, value) }

// last returns the most recent value written under name.
func (p *recordingProgram) last(name string) (any, bool) {
	for i := len(p.Writes) - 1; i >= 0; i-- {
		if p.Writes[i].Name == name {
			return p.Writes[i].Value, true
		}
	}
	return nil, false
}

func (p *recordingProgram) count(name string) int {
	n := 0
	for _, w := range p.Writes {
		if w.Name == name {
			n++
		}
	}
	return n
}

type textureBinding struct {
	Unit   uint32
	Handle uint32
}

// fakeBackend implements renderer.Backend against in-memory state.
type fakeBackend struct {
	nextHandle uint32
	Created    []uint32
	Bound      []textureBinding
	Destroyed  [][]uint32
	Uploaded   []metadata.Shape
	Drawn      []metadata.Shape
}

func (b *fakeBackend) Initialize() error { return nil }
func (b *fakeBackend) Shutdown() error   { return nil }
func (b *fakeBackend) BeginFrame()       {}

func (b *fakeBackend) TextureCreate(img *metadata.ImageData) (uint32, error) {
	b.nextHandle++
	b.Created = append(b.Created, b.nextHandle)
	return b.nextHandle, nil
}

func (b *fakeBackend) TextureBind(unit uint32, handle uint32) {
	b.Bound = append(b.Bound, textureBinding{Unit: unit, Handle: handle})
}

func (b *fakeBackend) TexturesDestroy(handles []uint32) {
	b.Destroyed = append(b.Destroyed, handles)
}

func (b *fakeBackend) MeshUpload(shape metadata.Shape) error {
	b.Uploaded = append(b.Uploaded, shape)
	return nil
}

func (b *fakeBackend) MeshDraw(shape metadata.Shape) {
	b.Drawn = append(b.Drawn, shape)
}
