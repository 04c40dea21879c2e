package systems

import (
	"log"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
)

// DeathSystem 在角色生命值耗尽时结束本局
type DeathSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audio         game.AudioPlayer
	lose          config.AudioTrack
	ticker        *SpawnTicker
}

// NewDeathSystem 创建死亡系统
func NewDeathSystem(em *ecs.EntityManager, gs *game.GameState, audio game.AudioPlayer, lose config.AudioTrack, ticker *SpawnTicker) *DeathSystem {
	return &DeathSystem{
		entityManager: em,
		gameState:     gs,
		audio:         audio,
		lose:          lose,
		ticker:        ticker,
	}
}

// Update 在角色生命值归零的第一帧进入 Dead：
// 停止音乐、取消刷怪并只播放一次失败音效。
// 返回本帧角色是否死亡。
func (s *DeathSystem) Update() bool {
	if s.gameState.IsDead() {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.gameState.Character)
	if !ok || !health.IsDepleted() {
		return false
	}

	if err := s.gameState.Transition(game.ModeDead); err != nil {
		log.Printf("[DeathSystem] %v", err)
		return false
	}
	s.audio.StopMusic()
	s.ticker.Stop()
	if s.gameState.MarkLoseCuePlayed() {
		s.audio.PlaySound(s.lose.ID, s.lose.Volume)
	}
	log.Printf("[DeathSystem] Character died")
	return true
}
