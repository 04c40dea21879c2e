package systems

import (
	"log"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/utils"
)

// EnemySystem 处理敌人碰撞并驱动敌人朝角色移动
type EnemySystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        config.EnemiesConfig
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(em *ecs.EntityManager, gs *game.GameState, cfg config.EnemiesConfig) *EnemySystem {
	return &EnemySystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
	}
}

// Update 为每个存活的敌人执行一帧逻辑。武器优先于身体接触：
// 同时碰到两者的敌人只受武器伤害。
// 生命值耗尽的敌人在同一帧被销毁。
func (s *EnemySystem) Update(dt float64) {
	character, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.gameState.Character)
	if !ok {
		return
	}
	characterHealth, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.gameState.Character)
	characterBox := boxOf(s.entityManager, s.gameState.Character)
	weaponBox := boxOf(s.entityManager, s.gameState.Weapon)

	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.TransformComponent, *components.HealthComponent](s.entityManager)
	for _, id := range ids {
		if s.entityManager.IsMarked(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		box := boxOf(s.entityManager, id)

		switch {
		case box.Intersects(weaponBox):
			health.Damage(s.config.WeaponDamage)
		case box.Intersects(characterBox):
			health.Damage(s.config.ContactDamage)
			if characterHealth != nil {
				characterHealth.Damage(s.config.PlayerDamage)
			}
		}

		if health.IsDepleted() {
			log.Printf("[EnemySystem] %s %d defeated", enemy.Species, id)
			s.entityManager.DestroyEntity(id)
			continue
		}

		steer(tr, enemy, character.Position, dt)
	}
}

// steer 让敌人转向目标并沿地面前进
func steer(tr *components.TransformComponent, enemy *components.EnemyComponent, target utils.Vec3, dt float64) {
	to := target.Sub(tr.Position)
	to.Y = 0
	if to.Length() == 0 {
		return
	}
	dir := to.Normalize()
	tr.Yaw = utils.YawTowards(tr.Position, target) + enemy.RotationOffset
	tr.Position = tr.Position.AddScaled(dir, enemy.Speed*dt)
}
