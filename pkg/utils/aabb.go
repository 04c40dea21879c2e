package utils

import "math"

// AABB 世界空间的轴对齐碰撞盒。
// 空盒在每个轴上 Min 都大于 Max，不与任何盒重叠。
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB 返回不包含任何点的空盒
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty 碰撞盒是否为空
func (b AABB) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Intersects 两个碰撞盒是否重叠，
// 面相接也算重叠。
func (b AABB) Intersects(o AABB) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Max.X >= o.Min.X && b.Min.X <= o.Max.X &&
		b.Max.Y >= o.Min.Y && b.Min.Y <= o.Max.Y &&
		b.Max.Z >= o.Min.Z && b.Min.Z <= o.Max.Z
}

// ExpandByPoint 扩展碰撞盒以包含 p
func (b AABB) ExpandByPoint(p Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// OrientedAABB 返回局部盒(给定半尺寸)绕 Y 旋转 yaw 并放到 center 后
// 的世界空间包围盒。
func OrientedAABB(center, halfExtents Vec3, yaw float64) AABB {
	box := EmptyAABB()
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				corner := Vec3{halfExtents.X * sx, halfExtents.Y * sy, halfExtents.Z * sz}
				box = box.ExpandByPoint(center.Add(corner.RotateY(yaw)))
			}
		}
	}
	return box
}
