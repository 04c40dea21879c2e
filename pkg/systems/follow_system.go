package systems

import (
	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/ecs"
)

// FollowSystem 让跟随者(灯光、武器)与目标保持固定偏移
type FollowSystem struct {
	entityManager *ecs.EntityManager
}

// NewFollowSystem 创建跟随系统
func NewFollowSystem(em *ecs.EntityManager) *FollowSystem {
	return &FollowSystem{entityManager: em}
}

// Update 将每个跟随者放到目标位置加偏移处
func (s *FollowSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.FollowComponent, *components.TransformComponent](s.entityManager)
	for _, id := range ids {
		follow, _ := ecs.GetComponent[*components.FollowComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		target, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, follow.Target)
		if !ok {
			continue
		}
		tr.Position = target.Position.Add(follow.Offset)
	}
}
