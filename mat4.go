package vantage

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix in column-major order:
//
//	| m[0] m[4] m[8]  m[12] |
//	| m[1] m[5] m[9]  m[13] |
//	| m[2] m[6] m[10] m[14] |
//	| m[3] m[7] m[11] m[15] |
type Mat4 [16]float32

// Identity4 is the 4x4 identity matrix.
var Identity4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// TransformPoint applies m to p as a position (w = 1) and returns the
// transformed position along with its clip-space w component.
func (m Mat4) TransformPoint(p Vec3) (Vec3, float32) {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	return Vec3{x, y, z}, w
}

// TransformDir applies m to d as a direction (w = 0).
func (m Mat4) TransformDir(d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Translation returns a translation matrix.
func Translation(t Vec3) Mat4 {
	m := Identity4
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// Scaling returns a non-uniform scale matrix.
func Scaling(s Vec3) Mat4 {
	m := Identity4
	m[0], m[5], m[10] = s.X, s.Y, s.Z
	return m
}

// RotationEuler returns a rotation matrix from XYZ euler angles in radians,
// applied in Z * Y * X order.
func RotationEuler(r Vec3) Mat4 {
	sx, cx := math32.Sincos(r.X)
	sy, cy := math32.Sincos(r.Y)
	sz, cz := math32.Sincos(r.Z)

	rx := Identity4
	rx[5], rx[9], rx[6], rx[10] = cx, -sx, sx, cx
	ry := Identity4
	ry[0], ry[8], ry[2], ry[10] = cy, sy, -sy, cy
	rz := Identity4
	rz[0], rz[4], rz[1], rz[5] = cz, -sz, sz, cz

	return rz.Mul(ry).Mul(rx)
}

// LookAt builds a right-handed view matrix for a camera at eye looking at
// center with the given up vector.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up.Normalized()).Normalized()
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Perspective builds a right-handed perspective projection matrix.
// fovy is the vertical field of view in radians.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	t := math32.Tan(fovy / 2)
	var m Mat4
	m[0] = 1 / (aspect * t)
	m[5] = 1 / t
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -(2 * far * near) / (far - near)
	return m
}

// ProjectPoint maps a world-space point through viewProj into canvas
// coordinates for a width x height canvas, returning the canvas position,
// the normalized depth, and false when the point is behind the eye plane.
func ProjectPoint(viewProj Mat4, p Vec3, width, height int) (x, y, depth float32, ok bool) {
	clip, w := viewProj.TransformPoint(p)
	if w <= 1e-6 {
		return 0, 0, 0, false
	}
	ndcX := clip.X / w
	ndcY := clip.Y / w
	depth = clip.Z / w
	x = (ndcX + 1) * 0.5 * float32(width)
	y = (1 - ndcY) * 0.5 * float32(height)
	return x, y, depth, true
}
