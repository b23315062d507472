package ncube

import (
	"math"

	"github.com/westphae/quaternion"
)

// Axis identifies a rotation axis of the cube lattice.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

func checkAxis(a Axis) {
	if a < AxisX || a > AxisZ {
		panic(ErrInvalidAxis)
	}
}

// Vec3 is a point or direction in the cube's lattice space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) along(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func (v Vec3) rotate(q quaternion.Quaternion) Vec3 {
	r := q.RotateVec3(quaternion.Vec3{X: v.X, Y: v.Y, Z: v.Z})
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

// axisRotation returns the quaternion for a rotation of the given angle in
// degrees about the given axis.
func axisRotation(a Axis, degrees float64) quaternion.Quaternion {
	half := degrees * math.Pi / 360
	c, s := math.Cos(half), math.Sin(half)
	switch a {
	case AxisX:
		return quaternion.Quaternion{W: c, X: s}
	case AxisY:
		return quaternion.Quaternion{W: c, Y: s}
	default:
		return quaternion.Quaternion{W: c, Z: s}
	}
}

// Mat4 is a 4x4 homogeneous transform in row-major order.
type Mat4 [4][4]float64

// mat4 builds the homogeneous transform for an orientation plus translation.
func mat4(q quaternion.Quaternion, t Vec3) Mat4 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Mat4{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y), t.X},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x), t.Y},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y), t.Z},
		{0, 0, 0, 1},
	}
}
