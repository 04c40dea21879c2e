// Package entities 根据配置创建体验中的各个实体。
package entities

import (
	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/utils"
)

// 世界的绘制层级，从后往前
const (
	LayerGround    = 0
	LayerPortfolio = 10
	LayerHotspot   = 20
	LayerEnemy     = 30
	LayerCharacter = 40
	LayerWeapon    = 45
	LayerMenuPlane = 90
)

// NewCharacterEntity 在出生点创建玩家角色
func NewCharacterEntity(em *ecs.EntityManager, cfg config.CharacterConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position: cfg.Spawn.Vec3(),
		Yaw:      cfg.SpawnYaw(),
	})
	ecs.AddComponent(em, id, &components.CharacterComponent{
		MoveSpeed: cfg.MoveSpeed,
		Animation: components.AnimationIdle,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		Current: cfg.MaxHealth,
		Max:     cfg.MaxHealth,
	})
	ecs.AddComponent(em, id, &components.BoundsComponent{
		HalfExtents: cfg.HalfExtents.Vec3(),
		LocalCenter: utils.V3(0, cfg.BoundsLift, 0),
	})
	ecs.AddComponent(em, id, &components.RenderableComponent{
		Shape: components.ShapeCircle,
		Color: config.ColorCharacter,
		Layer: LayerCharacter,
	})
	return id
}

// NewWeaponEntity 创建武士刀。武器跟随角色，
// 但在生存模式开始前保持隐藏且不参与碰撞。
func NewWeaponEntity(em *ecs.EntityManager, cfg config.WeaponConfig, character ecs.EntityID, at utils.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: at})
	ecs.AddComponent(em, id, &components.FollowComponent{Target: character})
	ecs.AddComponent(em, id, &components.WeaponComponent{
		SpinRate: cfg.SpinRate,
		Length:   cfg.Length,
		Width:    cfg.Width,
	})
	// 刀身沿武器朝向从角色处延伸
	ecs.AddComponent(em, id, &components.BoundsComponent{
		HalfExtents: utils.V3(cfg.Width/2, cfg.Height/2, cfg.Length/2),
		LocalCenter: utils.V3(0, cfg.Height/2, cfg.Length/2),
		Disabled:    true,
		Box:         utils.EmptyAABB(),
	})
	ecs.AddComponent(em, id, &components.RenderableComponent{
		Shape:  components.ShapeBlade,
		Color:  config.ColorWeapon,
		Layer:  LayerWeapon,
		Hidden: true,
	})
	return id
}
