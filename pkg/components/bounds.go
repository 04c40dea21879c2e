package components

import "github.com/bananacat/portfolio/pkg/utils"

// BoundsComponent 是实体的碰撞体积。
// Box 每帧根据 Transform 重新计算，不跨帧缓存。
type BoundsComponent struct {
	HalfExtents utils.Vec3 // 旋转前的局部半尺寸
	LocalCenter utils.Vec3 // 碰撞盒中心相对 Transform 的偏移，随 yaw 旋转
	Disabled    bool       // 禁用时碰撞盒为空，不与任何物体重叠
	Box         utils.AABB
}
