package components

import "github.com/bananacat/portfolio/pkg/utils"

// CameraComponent 是跟随镜头。从 Offset 方向注视 Target，
// 距离为 Distance，鼠标滚轮在 [MinDistance, MaxDistance] 内调整。
type CameraComponent struct {
	Target      utils.Vec3
	Offset      utils.Vec3
	Distance    float64
	MinDistance float64
	MaxDistance float64
	ZoomSpeed   float64
}

// ClampDistance 将 Distance 限制在当前范围内
func (c *CameraComponent) ClampDistance() {
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
