package systems

import (
	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/utils"
)

// BoundsSystem 根据 Transform 重新计算所有世界空间碰撞盒。
// 没有粗检测阶段，每帧整体重建一次。
type BoundsSystem struct {
	entityManager *ecs.EntityManager
}

// NewBoundsSystem 创建碰撞盒系统
func NewBoundsSystem(em *ecs.EntityManager) *BoundsSystem {
	return &BoundsSystem{entityManager: em}
}

// Update 重建所有碰撞盒，禁用的体积变为空盒
func (s *BoundsSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.BoundsComponent, *components.TransformComponent](s.entityManager)
	for _, id := range ids {
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		bounds.Box = WorldBox(bounds, tr)
	}
}

// WorldBox 返回体积在给定 Transform 下的世界空间碰撞盒
func WorldBox(bounds *components.BoundsComponent, tr *components.TransformComponent) utils.AABB {
	if bounds.Disabled {
		return utils.EmptyAABB()
	}
	center := tr.Position.Add(bounds.LocalCenter.RotateY(tr.Yaw))
	return utils.OrientedAABB(center, bounds.HalfExtents, tr.Yaw)
}

func boxOf(em *ecs.EntityManager, id ecs.EntityID) utils.AABB {
	bounds, ok := ecs.GetComponent[*components.BoundsComponent](em, id)
	if !ok {
		return utils.EmptyAABB()
	}
	return bounds.Box
}
