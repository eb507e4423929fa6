// internal/utils/vec.go
package utils

import "math"

// Vec3 — вектор в мировых координатах. Y направлена вверх.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

var (
	Up   = Vec3{Y: 1}
	Zero = Vec3{}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) SqrLength() float64 {
	return v.Dot(v)
}

// Normalized returns the unit vector, or zero for a zero-length vector.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Distance между двумя точками.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// MoveTowards moves current toward target by at most maxDelta without overshooting.
func MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	diff := target.Sub(current)
	dist := diff.Length()
	if dist <= maxDelta || dist < 1e-9 {
		return target
	}
	return current.Add(diff.Scale(maxDelta / dist))
}

// Forward returns the horizontal facing for a yaw angle. Yaw 0 faces +Z.
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// YawTowards returns the yaw that faces from -> to on the XZ plane.
func YawTowards(from, to Vec3) float64 {
	return math.Atan2(to.X-from.X, to.Z-from.Z)
}

// Reflect mirrors v around the plane with the given unit normal.
func Reflect(v, normal Vec3) Vec3 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// RotateY rotates v around the vertical axis by yaw, matching Forward: RotateY(+Z, yaw) == Forward(yaw).
func RotateY(v Vec3, yaw float64) Vec3 {
	sin, cos := math.Sin(yaw), math.Cos(yaw)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
