package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-5

func assertVec4(t *testing.T, expected, actual Vec4) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta)
	assert.InDelta(t, expected.Y, actual.Y, delta)
	assert.InDelta(t, expected.Z, actual.Z, delta)
	assert.InDelta(t, expected.W, actual.W, delta)
}

func TestIdentityLeavesVectorUnchanged(t *testing.T) {
	v := Vec4{X: 1.5, Y: -2.0, Z: 3.25, W: 1.0}
	assertVec4(t, v, NewMat4Identity().MulVec4(v))
}

func TestTranslationMovesPoint(t *testing.T) {
	m := NewMat4Translation(Vec3{X: 1.0, Y: 2.0, Z: 3.0})
	out := m.MulVec4(Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 1.0})
	assertVec4(t, Vec4{X: 2.0, Y: 3.0, Z: 4.0, W: 1.0}, out)
}

func TestTranslationIgnoresDirections(t *testing.T) {
	// w=0 vectors are directions and must not pick up the offset
	m := NewMat4Translation(Vec3{X: 5.0, Y: 5.0, Z: 5.0})
	out := m.MulVec4(Vec4{X: 1.0, Y: 0.0, Z: 0.0, W: 0.0})
	assertVec4(t, Vec4{X: 1.0}, out)
}

func TestEulerYRotatesXAxisTowardNegativeZ(t *testing.T) {
	m := NewMat4EulerY(DegToRad(90.0))
	out := m.MulVec4(Vec4{X: 1.0, W: 1.0})
	assertVec4(t, Vec4{Z: -1.0, W: 1.0}, out)
}

func TestEulerXRotatesYAxisTowardZ(t *testing.T) {
	m := NewMat4EulerX(DegToRad(90.0))
	out := m.MulVec4(Vec4{Y: 1.0, W: 1.0})
	assertVec4(t, Vec4{Z: 1.0, W: 1.0}, out)
}

func TestEulerZRotatesXAxisTowardY(t *testing.T) {
	m := NewMat4EulerZ(DegToRad(90.0))
	out := m.MulVec4(Vec4{X: 1.0, W: 1.0})
	assertVec4(t, Vec4{Y: 1.0, W: 1.0}, out)
}

func TestMulAppliesRightFactorFirst(t *testing.T) {
	scale := NewMat4Scale(Vec3{X: 2.0, Y: 2.0, Z: 2.0})
	translate := NewMat4Translation(Vec3{X: 1.0, Y: 0.0, Z: 0.0})

	// translate·scale: scale first, then move
	out := translate.Mul(scale).MulVec4(Vec4{X: 1.0, W: 1.0})
	assertVec4(t, Vec4{X: 3.0, W: 1.0}, out)

	// scale·translate: move first, then scale the offset too
	out = scale.Mul(translate).MulVec4(Vec4{X: 1.0, W: 1.0})
	assertVec4(t, Vec4{X: 4.0, W: 1.0}, out)
}

func TestComposeModelWithoutRotationIsTranslateScale(t *testing.T) {
	m := ComposeModel(Vec3{X: 1.6, Y: 1.4, Z: 1.6}, 0, 0, 0, Vec3{X: 1.5, Y: 5.251, Z: 1.0})
	out := m.MulVec4(Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 1.0})
	assertVec4(t, Vec4{X: 3.1, Y: 6.651, Z: 2.6, W: 1.0}, out)
}

func TestComposeModelAppliesZRotationBeforeX(t *testing.T) {
	// with Z first: (1,0,0) -> (0,1,0) -> (0,0,1)
	// the opposite order would yield (0,1,0)
	m := ComposeModel(Vec3{X: 1.0, Y: 1.0, Z: 1.0}, 90.0, 0, 90.0, Vec3{})
	out := m.MulVec4(Vec4{X: 1.0, W: 1.0})
	assertVec4(t, Vec4{Z: 1.0, W: 1.0}, out)
}

func TestComposeModelScalesBeforeRotating(t *testing.T) {
	// non-uniform scale on X then a 90 degree yaw; rotating first
	// would scale the rotated axis instead
	m := ComposeModel(Vec3{X: 3.0, Y: 1.0, Z: 1.0}, 0, 90.0, 0, Vec3{})
	out := m.MulVec4(Vec4{X: 1.0, W: 1.0})
	assertVec4(t, Vec4{Z: -3.0, W: 1.0}, out)
}

func TestComposeModelIsDeterministic(t *testing.T) {
	a := ComposeModel(Vec3{X: 2.1, Y: 0.15, Z: 1.9}, 140.0, -35.0, -25.0, Vec3{X: -10.8, Y: 8.45, Z: -2.2})
	b := ComposeModel(Vec3{X: 2.1, Y: 0.15, Z: 1.9}, 140.0, -35.0, -25.0, Vec3{X: -10.8, Y: 8.45, Z: -2.2})
	assert.Equal(t, a, b)
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{X: 0.0, Y: 7.0, Z: 17.0}
	view := NewMat4LookAt(eye, Vec3{X: -1.0, Y: 5.0, Z: 0.0}, Vec3{Y: 1.0})
	out := view.MulVec4(Vec4{X: eye.X, Y: eye.Y, Z: eye.Z, W: 1.0})
	assertVec4(t, Vec4{W: 1.0}, out)
}

func TestLookAtTargetLandsOnNegativeZ(t *testing.T) {
	eye := Vec3{Z: 10.0}
	target := Vec3{}
	view := NewMat4LookAt(eye, target, Vec3{Y: 1.0})
	out := view.MulVec4(Vec4{W: 1.0})
	assertVec4(t, Vec4{Z: -10.0, W: 1.0}, out)
}

func TestPerspectiveProducesClipW(t *testing.T) {
	proj := NewMat4Perspective(DegToRad(45.0), 16.0/9.0, 0.1, 100.0)
	out := proj.MulVec4(Vec4{X: 0.0, Y: 0.0, Z: -5.0, W: 1.0})
	assert.InDelta(t, 5.0, float64(out.W), delta)
}
