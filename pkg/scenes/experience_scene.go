package scenes

import (
	"log"
	"math/rand/v2"

	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/entities"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/systems"
	"github.com/bananacat/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ExperienceDeps 体验场景从 app 获取的依赖
type ExperienceDeps struct {
	Config    *config.ExperienceConfig
	Resources *game.ResourceManager // 图片和字体；为 nil 时绘制纯色形状
	Audio     game.AudioPlayer
	Links     game.LinkOpener
	Rand      *rand.Rand

	// Restart 重建世界，死亡状态下按 R 时调用
	Restart func()

	// Input 返回本帧的按键快照，默认为 game.ReadKeyState
	Input func() game.KeyState
}

// ExperienceScene 可行走作品集的一局：全新的世界、
// 游戏状态和系统集合。重启会构建新的场景。
type ExperienceScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.ExperienceConfig

	restart func()
	input   func() game.KeyState

	cameraSystem     *systems.CameraSystem
	followSystem     *systems.FollowSystem
	movementSystem   *systems.MovementSystem
	boundsSystem     *systems.BoundsSystem
	enemySystem      *systems.EnemySystem
	spawnerSystem    *systems.SpawnerSystem
	hotspotSystem    *systems.HotspotSystem
	transitionSystem *systems.TransitionSystem
	weaponSystem     *systems.WeaponSystem
	deathSystem      *systems.DeathSystem
	renderSystem     *systems.RenderSystem
	hudSystem        *systems.HUDSystem
}

// NewExperienceScene 构建世界并组装各系统
func NewExperienceScene(deps ExperienceDeps) *ExperienceScene {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	cfg := deps.Config
	entities.BuildWorld(em, cfg, gs)

	rng := deps.Rand
	if rng == nil {
		rng = utils.NewRand(0)
	}
	input := deps.Input
	if input == nil {
		input = game.ReadKeyState
	}

	s := &ExperienceScene{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		restart:       deps.Restart,
		input:         input,
	}

	s.cameraSystem = systems.NewCameraSystem(em, gs)
	s.followSystem = systems.NewFollowSystem(em)
	s.movementSystem = systems.NewMovementSystem(em, gs)
	s.boundsSystem = systems.NewBoundsSystem(em)
	s.enemySystem = systems.NewEnemySystem(em, gs, cfg.Enemies)
	s.spawnerSystem = systems.NewSpawnerSystem(em, gs, cfg.Spawner, cfg.Enemies, rng)
	s.transitionSystem = systems.NewTransitionSystem(em, gs, deps.Audio, cfg, s.spawnerSystem.Ticker())
	s.hotspotSystem = systems.NewHotspotSystem(em, gs, deps.Links, s.transitionSystem)
	s.weaponSystem = systems.NewWeaponSystem(em)
	s.deathSystem = systems.NewDeathSystem(em, gs, deps.Audio, cfg.Audio.Lose, s.spawnerSystem.Ticker())
	s.renderSystem = systems.NewRenderSystem(em, gs, deps.Resources, cfg.Camera)
	s.hudSystem = systems.NewHUDSystem(em, gs, deps.Resources, s.hotspotSystem, s.spawnerSystem)

	return s
}

// Start 执行开始手势：播放环境音乐，
// 菜单平面开始下降。
func (s *ExperienceScene) Start() error {
	return s.transitionSystem.StartPortfolio()
}

// GameState 返回本局的状态
func (s *ExperienceScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回本局的世界
func (s *ExperienceScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Spawner 返回生存刷怪系统
func (s *ExperienceScene) Spawner() *systems.SpawnerSystem {
	return s.spawnerSystem
}

// Update 推进一帧
func (s *ExperienceScene) Update(deltaTime float64) {
	keys := s.input()

	s.deathSystem.Update()
	if s.gameState.IsDead() {
		if keys.Restart {
			log.Printf("[ExperienceScene] Restart requested")
			if s.restart != nil {
				s.restart()
			}
		}
		return
	}

	s.cameraSystem.Update(keys.Wheel)
	s.followSystem.Update()

	s.transitionSystem.Update(deltaTime)
	if s.gameState.Mode() == game.ModeSurvivalActive {
		s.weaponSystem.Update(deltaTime)
		s.spawnerSystem.Update(deltaTime)
	}

	s.boundsSystem.Update()
	s.enemySystem.Update(deltaTime)
	s.hotspotSystem.Update(keys.Interact, deltaTime)
	s.movementSystem.Update(keys, deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制世界和 HUD
func (s *ExperienceScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.hudSystem.Draw(screen)
}
