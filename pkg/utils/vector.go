package utils

import "math"

// Vec3 世界空间中的点或方向。X/Z 为地面，Y 向上。
type Vec3 struct {
	X, Y, Z float64
}

// V3 builds a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize 返回单位长度的 v，零向量保持为零
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// AddScaled returns v + d*s.
func (v Vec3) AddScaled(d Vec3, s float64) Vec3 {
	return Vec3{v.X + d.X*s, v.Y + d.Y*s, v.Z + d.Z*s}
}

// YawTowards 返回让位于 from 的物体朝向 to 的绕 Y 旋转角。
// yaw 为 0 朝向 +Z，π/2 朝向 +X。
func YawTowards(from, to Vec3) float64 {
	return math.Atan2(to.X-from.X, to.Z-from.Z)
}

// RotateY 将 v 绕 Y 轴旋转 yaw 弧度，
// 约定与 YawTowards 相同。
func (v Vec3) RotateY(yaw float64) Vec3 {
	sin, cos := math.Sincos(yaw)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
