package math

// Matrices are stored column-major (Data[col*4+row]) and multiply
// column vectors, matching the OpenGL uniform convention.

func NewMat4Identity() Mat4 {
	return Mat4{Data: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	return out
}

func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

// NewMat4EulerX builds a rotation of `angleRad` radians around the X axis.
func NewMat4EulerX(angleRad float32) Mat4 {
	out := NewMat4Identity()
	c := Cos(angleRad)
	s := Sin(angleRad)
	out.Data[5] = c
	out.Data[6] = s
	out.Data[9] = -s
	out.Data[10] = c
	return out
}

// NewMat4EulerY builds a rotation of `angleRad` radians around the Y axis.
func NewMat4EulerY(angleRad float32) Mat4 {
	out := NewMat4Identity()
	c := Cos(angleRad)
	s := Sin(angleRad)
	out.Data[0] = c
	out.Data[2] = -s
	out.Data[8] = s
	out.Data[10] = c
	return out
}

// NewMat4EulerZ builds a rotation of `angleRad` radians around the Z axis.
func NewMat4EulerZ(angleRad float32) Mat4 {
	out := NewMat4Identity()
	c := Cos(angleRad)
	s := Sin(angleRad)
	out.Data[0] = c
	out.Data[1] = s
	out.Data[4] = -s
	out.Data[5] = c
	return out
}

// NewMat4Perspective builds a right-handed perspective projection.
func NewMat4Perspective(fovRad, aspect, near, far float32) Mat4 {
	f := 1.0 / Tan(fovRad*0.5)
	out := Mat4{}
	out.Data[0] = f / aspect
	out.Data[5] = f
	out.Data[10] = (far + near) / (near - far)
	out.Data[11] = -1
	out.Data[14] = (2.0 * far * near) / (near - far)
	return out
}

// NewMat4LookAt builds a view matrix from an eye position looking at
// a target position.
func NewMat4LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalized()
	side := forward.Cross(up).Normalized()
	u := side.Cross(forward)

	out := NewMat4Identity()
	out.Data[0] = side.X
	out.Data[4] = side.Y
	out.Data[8] = side.Z
	out.Data[1] = u.X
	out.Data[5] = u.Y
	out.Data[9] = u.Z
	out.Data[2] = -forward.X
	out.Data[6] = -forward.Y
	out.Data[10] = -forward.Z
	out.Data[12] = -side.Dot(eye)
	out.Data[13] = -u.Dot(eye)
	out.Data[14] = forward.Dot(eye)
	return out
}

// Mul returns the matrix product a·b, so that the resulting matrix
// applies b first and a second when transforming a column vector.
func (a Mat4) Mul(b Mat4) Mat4 {
	out := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a.Data[k*4+row] * b.Data[col*4+k]
			}
			out.Data[col*4+row] = sum
		}
	}
	return out
}

// MulVec4 transforms the column vector v by the matrix.
func (a Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: a.Data[0]*v.X + a.Data[4]*v.Y + a.Data[8]*v.Z + a.Data[12]*v.W,
		Y: a.Data[1]*v.X + a.Data[5]*v.Y + a.Data[9]*v.Z + a.Data[13]*v.W,
		Z: a.Data[2]*v.X + a.Data[6]*v.Y + a.Data[10]*v.Z + a.Data[14]*v.W,
		W: a.Data[3]*v.X + a.Data[7]*v.Y + a.Data[11]*v.Z + a.Data[15]*v.W,
	}
}

// ComposeModel converts per-object placement parameters into a single
// model matrix. The composition order is a contract: the result is
// Translation · RotationX · RotationY · RotationZ · Scale, so a point
// is scaled first and translated last. Angles are in degrees.
func ComposeModel(scale Vec3, rotXDeg, rotYDeg, rotZDeg float32, position Vec3) Mat4 {
	translation := NewMat4Translation(position)
	rotationX := NewMat4EulerX(DegToRad(rotXDeg))
	rotationY := NewMat4EulerY(DegToRad(rotYDeg))
	rotationZ := NewMat4EulerZ(DegToRad(rotZDeg))
	scaling := NewMat4Scale(scale)

	return translation.Mul(rotationX).Mul(rotationY).Mul(rotationZ).Mul(scaling)
}
