package systems

import (
	"log"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/utils"
)

// SurvivalStarter 开始生存过渡
type SurvivalStarter interface {
	BeginSurvival() error
}

// HotspotSystem 升起角色所站的按钮，
// 并在按下交互键时执行按钮动作。
type HotspotSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	opener        game.LinkOpener
	survival      SurvivalStarter
}

// NewHotspotSystem 创建交互按钮系统
func NewHotspotSystem(em *ecs.EntityManager, gs *game.GameState, opener game.LinkOpener, survival SurvivalStarter) *HotspotSystem {
	return &HotspotSystem{
		entityManager: em,
		gameState:     gs,
		opener:        opener,
		survival:      survival,
	}
}

// Update 让每个按钮向升起或静止偏移插值；
// 本帧按下交互键时，触发角色所重叠的每个按钮。
func (s *HotspotSystem) Update(interact bool, dt float64) {
	characterBox := boxOf(s.entityManager, s.gameState.Character)
	baseY := 0.0
	if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.gameState.Portfolio); ok {
		baseY = tr.Position.Y
	}

	ids := ecs.GetEntitiesWith2[*components.HotspotComponent, *components.TransformComponent](s.entityManager)
	for _, id := range ids {
		hs, _ := ecs.GetComponent[*components.HotspotComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		hs.Overlapping = boxOf(s.entityManager, id).Intersects(characterBox)
		hs.Offset = utils.Lerp(hs.Offset, hs.DesiredOffset(), dt)

		tr.Position.Y = hs.Offset
		if hs.OnPortfolio {
			tr.Position.Y += baseY
		}

		if interact && hs.Overlapping {
			s.trigger(hs)
		}
	}
}

// Focused 返回角色重叠的第一个按钮
func (s *HotspotSystem) Focused() (*components.HotspotComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.HotspotComponent](s.entityManager) {
		hs, _ := ecs.GetComponent[*components.HotspotComponent](s.entityManager, id)
		if hs.Overlapping {
			return hs, true
		}
	}
	return nil, false
}

func (s *HotspotSystem) trigger(hs *components.HotspotComponent) {
	switch hs.Action {
	case config.ActionOpenURL:
		s.open(hs.Name, hs.Target)
	case config.ActionOpenMail:
		s.open(hs.Name, game.MailtoURL(hs.Target, hs.Subject, hs.Body))
	case config.ActionSurvival:
		if s.survival == nil {
			return
		}
		if err := s.survival.BeginSurvival(); err != nil {
			log.Printf("[HotspotSystem] %s ignored: %v", hs.Name, err)
		}
	default:
		log.Printf("[HotspotSystem] Warning: %s has unknown action %q", hs.Name, hs.Action)
	}
}

func (s *HotspotSystem) open(name, url string) {
	if s.opener == nil {
		return
	}
	log.Printf("[HotspotSystem] %s opens %s", name, url)
	if err := s.opener.OpenURL(url); err != nil {
		log.Printf("[HotspotSystem] Warning: failed to open %s: %v", url, err)
	}
}
