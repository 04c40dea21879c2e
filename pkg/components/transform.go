// Package components 定义挂载在实体上的纯数据组件。
// 组件只包含少量访问方法，逻辑由系统负责。
package components

import (
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/utils"
)

// TransformComponent 实体在世界中的位置和朝向
type TransformComponent struct {
	Position utils.Vec3
	Yaw      float64 // 绕 Y 轴的旋转(弧度)，0 朝向 +Z
}

// FollowComponent 让实体与目标实体保持固定偏移。
// 灯光和武器用它跟随角色。
type FollowComponent struct {
	Target ecs.EntityID
	Offset utils.Vec3
}
