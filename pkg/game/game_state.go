package game

import (
	"fmt"
	"log"

	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/google/uuid"
)

// GameState 是一个体验场景内各系统共享的世界状态。
// 重启时会创建带新会话ID的 GameState，
// 世界之间不保留任何状态。
type GameState struct {
	Session uuid.UUID

	mode             Mode
	loseCuePlayed    bool
	healthBarVisible bool

	// 关键实体，由场景在构建世界时设置
	Character ecs.EntityID
	Weapon    ecs.EntityID
	Camera    ecs.EntityID
	Light     ecs.EntityID
	Portfolio ecs.EntityID
	MenuPlane ecs.EntityID
}

// NewGameState 以 ModeExploring 和新的会话ID创建世界状态
func NewGameState() *GameState {
	gs := &GameState{
		Session: uuid.New(),
		mode:    ModeExploring,
	}
	log.Printf("[GameState] New session %s", gs.Session)
	return gs
}

// Mode 返回当前模式
func (gs *GameState) Mode() Mode {
	return gs.mode
}

// Transition 切换到目标模式，非法切换返回 ErrInvalidTransition
func (gs *GameState) Transition(to Mode) error {
	if !CanTransition(gs.mode, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, gs.mode, to)
	}
	log.Printf("[GameState] Session %s: %s -> %s", gs.shortSession(), gs.mode, to)
	gs.mode = to
	return nil
}

// IsDead 角色是否已在本世界中死亡
func (gs *GameState) IsDead() bool {
	return gs.mode == ModeDead
}

// MarkLoseCuePlayed 记录失败音效已播放，返回是否为第一次调用。
// 每个世界最多播放一次。
func (gs *GameState) MarkLoseCuePlayed() bool {
	if gs.loseCuePlayed {
		return false
	}
	gs.loseCuePlayed = true
	return true
}

// LoseCuePlayed 失败音效是否已播放
func (gs *GameState) LoseCuePlayed() bool {
	return gs.loseCuePlayed
}

// ShowHealthBar 显示生存血条
func (gs *GameState) ShowHealthBar() {
	gs.healthBarVisible = true
}

// HealthBarVisible 血条是否可见
func (gs *GameState) HealthBarVisible() bool {
	return gs.healthBarVisible
}

func (gs *GameState) shortSession() string {
	return gs.Session.String()[:8]
}
