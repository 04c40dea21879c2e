package systems

import (
	"fmt"
	"log"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
)

// TransitionSystem 执行两段脚本化过渡：开始手势后降下菜单平面，
// 以及生存模式开始前让作品集模型下沉。
type TransitionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audio         game.AudioPlayer
	config        *config.ExperienceConfig
	ticker        *SpawnTicker
}

// NewTransitionSystem 创建过渡系统。
// ticker 在生存模式激活时启动。
func NewTransitionSystem(em *ecs.EntityManager, gs *game.GameState, audio game.AudioPlayer, cfg *config.ExperienceConfig, ticker *SpawnTicker) *TransitionSystem {
	return &TransitionSystem{
		entityManager: em,
		gameState:     gs,
		audio:         audio,
		config:        cfg,
		ticker:        ticker,
	}
}

// StartPortfolio 处理开始手势：播放环境音乐，
// 菜单平面开始下降。
func (s *TransitionSystem) StartPortfolio() error {
	if err := s.gameState.Transition(game.ModePortfolioTransition); err != nil {
		return fmt.Errorf("start portfolio: %w", err)
	}
	track := s.config.Audio.Ambient
	s.audio.PlayMusic(track.ID, track.Volume)
	return nil
}

// BeginSurvival 将环境音乐换成生存音乐并开始让作品集下沉。
// 仅在 Exploring 模式下有效。
func (s *TransitionSystem) BeginSurvival() error {
	if err := s.gameState.Transition(game.ModeSurvivalTransition); err != nil {
		return fmt.Errorf("begin survival: %w", err)
	}
	s.audio.StopMusic()
	track := s.config.Audio.Survival
	s.audio.PlayMusic(track.ID, track.Volume)
	return nil
}

// Update 推进当前进行中的过渡
func (s *TransitionSystem) Update(dt float64) {
	switch s.gameState.Mode() {
	case game.ModePortfolioTransition:
		s.updatePortfolio(dt)
	case game.ModeSurvivalTransition:
		s.updateSurvival(dt)
	}
}

func (s *TransitionSystem) updatePortfolio(dt float64) {
	id := s.gameState.MenuPlane
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		s.finishPortfolio()
		return
	}
	sink, ok := ecs.GetComponent[*components.SinkComponent](s.entityManager, id)
	if !ok {
		s.finishPortfolio()
		return
	}
	if tr.Position.Y < sink.Threshold {
		s.finishPortfolio()
		return
	}
	tr.Position.Y -= sink.LowerRate * dt
}

func (s *TransitionSystem) finishPortfolio() {
	if scenery, ok := ecs.GetComponent[*components.SceneryComponent](s.entityManager, s.gameState.MenuPlane); ok {
		scenery.Hidden = true
	}
	if r, ok := ecs.GetComponent[*components.RenderableComponent](s.entityManager, s.gameState.MenuPlane); ok {
		r.Hidden = true
	}
	if err := s.gameState.Transition(game.ModeExploring); err != nil {
		log.Printf("[TransitionSystem] %v", err)
	}
}

func (s *TransitionSystem) updateSurvival(dt float64) {
	id := s.gameState.Portfolio
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		s.finishSurvival()
		return
	}
	sink, ok := ecs.GetComponent[*components.SinkComponent](s.entityManager, id)
	if !ok {
		s.finishSurvival()
		return
	}
	if tr.Position.Y <= sink.Threshold {
		s.finishSurvival()
		return
	}

	tr.Position.Y -= sink.LowerRate * dt

	if cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.gameState.Camera); ok {
		if cam.MinDistance < cam.MaxDistance {
			cam.MinDistance += s.config.Camera.SurvivalZoomRate * dt
			if cam.MinDistance > cam.MaxDistance {
				cam.MinDistance = cam.MaxDistance
			}
		}
		cam.ClampDistance()
	}

	if light, ok := ecs.GetComponent[*components.LightComponent](s.entityManager, s.gameState.Light); ok {
		if light.Intensity < light.MaxIntensity {
			light.Intensity += light.RampRate * dt
			if light.Intensity > light.MaxIntensity {
				light.Intensity = light.MaxIntensity
			}
		}
	}
}

// finishSurvival 为角色装备武器并启动刷怪计时器
func (s *TransitionSystem) finishSurvival() {
	s.gameState.ShowHealthBar()

	weapon := s.gameState.Weapon
	if w, ok := ecs.GetComponent[*components.WeaponComponent](s.entityManager, weapon); ok {
		w.Active = true
	}
	if b, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, weapon); ok {
		b.Disabled = false
	}
	if r, ok := ecs.GetComponent[*components.RenderableComponent](s.entityManager, weapon); ok {
		r.Hidden = false
	}

	if err := s.gameState.Transition(game.ModeSurvivalActive); err != nil {
		log.Printf("[TransitionSystem] %v", err)
		return
	}
	s.ticker.Start()
	log.Printf("[TransitionSystem] Survival started")
}
