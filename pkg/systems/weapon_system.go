package systems

import (
	"math"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/ecs"
)

// WeaponSystem 让激活的武器绕 Y 轴旋转
type WeaponSystem struct {
	entityManager *ecs.EntityManager
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager) *WeaponSystem {
	return &WeaponSystem{entityManager: em}
}

// Update 将每把激活的武器转动 SpinRate*dt，yaw 保持在 [0, 2π)
func (s *WeaponSystem) Update(dt float64) {
	ids := ecs.GetEntitiesWith2[*components.WeaponComponent, *components.TransformComponent](s.entityManager)
	for _, id := range ids {
		w, _ := ecs.GetComponent[*components.WeaponComponent](s.entityManager, id)
		if !w.Active {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		tr.Yaw = math.Mod(tr.Yaw+w.SpinRate*dt, 2*math.Pi)
		if tr.Yaw < 0 {
			tr.Yaw += 2 * math.Pi
		}
	}
}
