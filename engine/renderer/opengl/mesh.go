package opengl

import (
	"fmt"

	"github.com/spaghettifunk/lantern/engine/math"
	"github.com/spaghettifunk/lantern/engine/renderer/metadata"
)

// Tessellation density for the curved primitives.
const (
	meshSegments = 32
	meshRings    = 16
)

// meshBuilder accumulates interleaved vertex data: position (3),
// normal (3), texcoord (2).
type meshBuilder struct {
	vertices []float32
	indices  []uint32
	count    uint32
}

func (mb *meshBuilder) vertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	mb.vertices = append(mb.vertices, px, py, pz, nx, ny, nz, u, v)
	mb.count++
	return mb.count - 1
}

func (mb *meshBuilder) triangle(a, b, c uint32) {
	mb.indices = append(mb.indices, a, b, c)
}

func (mb *meshBuilder) quad(a, b, c, d uint32) {
	mb.triangle(a, b, c)
	mb.triangle(a, c, d)
}

// tessellate produces the geometry of one primitive. Primitives are
// unit sized and centered the way the tableau's transforms expect:
// the plane and box straddle the origin, the cylinder family rises
// from y=0 to y=1, the spheres have radius 1, and the torus lies in
// the XY plane.
func tessellate(shape metadata.Shape) ([]float32, []uint32, error) {
	switch shape {
	case metadata.ShapePlane:
		return planeMesh()
	case metadata.ShapeBox:
		return boxMesh()
	case metadata.ShapeCylinder:
		return lathedMesh(1.0, true)
	case metadata.ShapeCone:
		return lathedMesh(0.0, false)
	case metadata.ShapeTaperedCylinder:
		return lathedMesh(0.5, true)
	case metadata.ShapePrism:
		return prismMesh()
	case metadata.ShapeSphere:
		return sphereMesh(false)
	case metadata.ShapeHalfSphere:
		return sphereMesh(true)
	case metadata.ShapeTorus:
		return torusMesh()
	}
	return nil, nil, fmt.Errorf("unknown shape %d", shape)
}

func planeMesh() ([]float32, []uint32, error) {
	mb := &meshBuilder{}
	a := mb.vertex(-1, 0, -1, 0, 1, 0, 0, 1)
	b := mb.vertex(1, 0, -1, 0, 1, 0, 1, 1)
	c := mb.vertex(1, 0, 1, 0, 1, 0, 1, 0)
	d := mb.vertex(-1, 0, 1, 0, 1, 0, 0, 0)
	mb.quad(a, b, c, d)
	return mb.vertices, mb.indices, nil
}

func boxMesh() ([]float32, []uint32, error) {
	mb := &meshBuilder{}
	// per-face vertices so each face gets a flat normal
	faces := []struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}{
		{math.Vec3{Z: 1}, [4]math.Vec3{{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}}},
		{math.Vec3{Z: -1}, [4]math.Vec3{{X: 0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}}},
		{math.Vec3{X: 1}, [4]math.Vec3{{X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5}}},
		{math.Vec3{X: -1}, [4]math.Vec3{{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: -0.5}}},
		{math.Vec3{Y: 1}, [4]math.Vec3{{X: -0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}}},
		{math.Vec3{Y: -1}, [4]math.Vec3{{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5}}},
	}
	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	for _, f := range faces {
		var ids [4]uint32
		for i, p := range f.corners {
			ids[i] = mb.vertex(p.X, p.Y, p.Z, f.normal.X, f.normal.Y, f.normal.Z, uvs[i].X, uvs[i].Y)
		}
		mb.quad(ids[0], ids[1], ids[2], ids[3])
	}
	return mb.vertices, mb.indices, nil
}

// lathedMesh builds the cylinder family: base radius 1 at y=0, the
// given top radius at y=1. A zero top radius produces a cone (and no
// top cap regardless of wantTopCap).
func lathedMesh(topRadius float32, wantTopCap bool) ([]float32, []uint32, error) {
	mb := &meshBuilder{}

	// side
	var prevBottom, prevTop uint32
	for i := 0; i <= meshSegments; i++ {
		angle := float32(i) / meshSegments * 2 * math.Pi
		c := math.Cos(angle)
		s := math.Sin(angle)
		n := math.Vec3{X: c, Y: 1 - topRadius, Z: s}.Normalized()
		u := float32(i) / meshSegments

		bottom := mb.vertex(c, 0, s, n.X, n.Y, n.Z, u, 0)
		top := mb.vertex(topRadius*c, 1, topRadius*s, n.X, n.Y, n.Z, u, 1)
		if i > 0 {
			mb.quad(prevBottom, bottom, top, prevTop)
		}
		prevBottom, prevTop = bottom, top
	}

	// bottom cap
	capFan(mb, 0, 1, -1)
	if wantTopCap && topRadius > 0 {
		capFan(mb, 1, topRadius, 1)
	}

	return mb.vertices, mb.indices, nil
}

// capFan adds a disk at the given height, facing up (ny=1) or down
// (ny=-1).
func capFan(mb *meshBuilder, y, radius, ny float32) {
	center := mb.vertex(0, y, 0, 0, ny, 0, 0.5, 0.5)
	var prev uint32
	for i := 0; i <= meshSegments; i++ {
		angle := float32(i) / meshSegments * 2 * math.Pi
		c := math.Cos(angle)
		s := math.Sin(angle)
		rim := mb.vertex(radius*c, y, radius*s, 0, ny, 0, c*0.5+0.5, s*0.5+0.5)
		if i > 0 {
			if ny > 0 {
				mb.triangle(center, rim, prev)
			} else {
				mb.triangle(center, prev, rim)
			}
		}
		prev = rim
	}
}

// sphereMesh builds a unit lat-long sphere, or the upper hemisphere
// only.
func sphereMesh(half bool) ([]float32, []uint32, error) {
	mb := &meshBuilder{}

	rings := meshRings
	maxPhi := math.Pi
	if half {
		rings = meshRings / 2
		maxPhi = math.Pi / 2
	}

	for r := 0; r <= rings; r++ {
		phi := float32(r) / float32(rings) * maxPhi
		y := math.Cos(phi)
		ringRadius := math.Sin(phi)
		for s := 0; s <= meshSegments; s++ {
			theta := float32(s) / meshSegments * 2 * math.Pi
			x := ringRadius * math.Cos(theta)
			z := ringRadius * math.Sin(theta)
			mb.vertex(x, y, z, x, y, z, float32(s)/meshSegments, 1-float32(r)/float32(rings))
		}
	}

	stride := uint32(meshSegments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < meshSegments; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			mb.quad(a, a+1, b+1, b)
		}
	}

	return mb.vertices, mb.indices, nil
}

// torusMesh builds a ring in the XY plane with major radius 0.85 and
// tube radius 0.15, so the outer edge touches radius 1.
func torusMesh() ([]float32, []uint32, error) {
	const major = float32(0.85)
	const minor = float32(0.15)

	mb := &meshBuilder{}
	for i := 0; i <= meshSegments; i++ {
		u := float32(i) / meshSegments * 2 * math.Pi
		cu := math.Cos(u)
		su := math.Sin(u)
		for j := 0; j <= meshRings; j++ {
			v := float32(j) / float32(meshRings) * 2 * math.Pi
			cv := math.Cos(v)
			sv := math.Sin(v)
			x := (major + minor*cv) * cu
			y := (major + minor*cv) * su
			z := minor * sv
			mb.vertex(x, y, z, cv*cu, cv*su, sv, float32(i)/meshSegments, float32(j)/float32(meshRings))
		}
	}

	stride := uint32(meshRings + 1)
	for i := 0; i < meshSegments; i++ {
		for j := 0; j < meshRings; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			mb.quad(a, b, b+1, a+1)
		}
	}

	return mb.vertices, mb.indices, nil
}

// prismMesh builds a triangular prism: an isosceles triangle in the
// XZ plane extruded along Y, sized to fit the unit cube.
func prismMesh() ([]float32, []uint32, error) {
	mb := &meshBuilder{}

	tri := [3]math.Vec2{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0, Y: 0.5}}

	// top and bottom caps
	for _, face := range []struct{ y, ny float32 }{{0.5, 1}, {-0.5, -1}} {
		var ids [3]uint32
		for i, p := range tri {
			ids[i] = mb.vertex(p.X, face.y, p.Y, 0, face.ny, 0, p.X+0.5, p.Y+0.5)
		}
		if face.ny > 0 {
			mb.triangle(ids[0], ids[2], ids[1])
		} else {
			mb.triangle(ids[0], ids[1], ids[2])
		}
	}

	// sides
	for i := 0; i < 3; i++ {
		p0 := tri[i]
		p1 := tri[(i+1)%3]
		edge := math.Vec3{X: p1.X - p0.X, Z: p1.Y - p0.Y}
		n := math.Vec3{Y: 1}.Cross(edge).Normalized()

		a := mb.vertex(p0.X, -0.5, p0.Y, n.X, n.Y, n.Z, 0, 0)
		b := mb.vertex(p1.X, -0.5, p1.Y, n.X, n.Y, n.Z, 1, 0)
		c := mb.vertex(p1.X, 0.5, p1.Y, n.X, n.Y, n.Z, 1, 1)
		d := mb.vertex(p0.X, 0.5, p0.Y, n.X, n.Y, n.Z, 0, 1)
		mb.quad(a, b, c, d)
	}

	return mb.vertices, mb.indices, nil
}
