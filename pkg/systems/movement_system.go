// Package systems 包含体验的逐帧逻辑。每个系统负责一个关注点，
// 由 ExperienceScene 按固定顺序驱动。
package systems

import (
	"log"
	"math"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/utils"
)

// MovementSystem 根据按住的方向键移动角色
type MovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, gs *game.GameState) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Direction 将按住的按键转换为地面上每个轴向的步进。
// W/S 控制 Z，A/D 控制 X；相反的按键互相抵消。
func Direction(keys game.KeyState) (dx, dz float64) {
	if keys.Up {
		dz--
	}
	if keys.Down {
		dz++
	}
	if keys.Left {
		dx--
	}
	if keys.Right {
		dx++
	}
	return dx, dz
}

// Facing 返回步进对应的朝向，步进为零时返回 false
func Facing(dx, dz float64) (float64, bool) {
	if dx == 0 && dz == 0 {
		return 0, false
	}
	return math.Atan2(dx, dz), true
}

// Update 执行一帧移动。Exploring 和 SurvivalActive 以外的模式下
// 角色原地播放待机动画。
func (s *MovementSystem) Update(keys game.KeyState, dt float64) {
	id := s.gameState.Character
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return
	}
	ch, ok := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
	if !ok {
		return
	}

	if keys.Debug {
		log.Printf("[MovementSystem] Character at (%.2f, %.2f, %.2f) yaw %.2f", tr.Position.X, tr.Position.Y, tr.Position.Z, tr.Yaw)
	}

	if !s.gameState.Mode().AllowsMovement() {
		ch.Animation = components.AnimationIdle
		ch.AnimTime = 0
		return
	}

	dx, dz := Direction(keys)
	yaw, moving := Facing(dx, dz)
	if !moving {
		ch.Animation = components.AnimationIdle
		ch.AnimTime = 0
		return
	}

	tr.Yaw = yaw
	tr.Position = tr.Position.Add(utils.V3(dx, 0, dz).Scale(ch.MoveSpeed * dt))
	ch.Animation = components.AnimationMoving
	ch.AnimTime += dt
}
