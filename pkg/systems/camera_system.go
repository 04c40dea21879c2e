package systems

import (
	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
)

// CameraSystem 让镜头跟随角色并处理滚轮缩放。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(em *ecs.EntityManager, gs *game.GameState) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Camera 返回镜头组件(世界中存在镜头时)
func (s *CameraSystem) Camera() (*components.CameraComponent, bool) {
	return ecs.GetComponent[*components.CameraComponent](s.entityManager, s.gameState.Camera)
}

// Update 更新镜头目标并按滚轮增量缩放。
// 向上滚动拉近镜头。
func (s *CameraSystem) Update(wheel float64) {
	cam, ok := s.Camera()
	if !ok {
		return
	}
	if target, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.gameState.Character); ok {
		cam.Target = target.Position
	}
	if wheel != 0 {
		cam.Distance -= wheel * cam.ZoomSpeed
	}
	cam.ClampDistance()

	if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.gameState.Camera); ok {
		tr.Position = cam.Target.Add(cam.Offset.Normalize().Scale(cam.Distance))
	}
}
