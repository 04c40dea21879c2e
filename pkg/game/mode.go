package game

import (
	"errors"
	"fmt"
)

// Mode 体验的顶层状态
type Mode int

const (
	// ModeExploring 在作品集周围自由行走
	ModeExploring Mode = iota
	// ModePortfolioTransition 开始手势后降下菜单平面
	ModePortfolioTransition
	// ModeSurvivalTransition 生存开始前作品集下沉
	ModeSurvivalTransition
	// ModeSurvivalActive 刷怪并旋转武器
	ModeSurvivalActive
	// ModeDead 终止状态，直到世界重建
	ModeDead
)

// ErrInvalidTransition 状态机禁止的模式切换
var ErrInvalidTransition = errors.New("invalid mode transition")

func (m Mode) String() string {
	switch m {
	case ModeExploring:
		return "Exploring"
	case ModePortfolioTransition:
		return "PortfolioTransition"
	case ModeSurvivalTransition:
		return "SurvivalTransition"
	case ModeSurvivalActive:
		return "SurvivalActive"
	case ModeDead:
		return "Dead"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// allowedTransitions 除死亡外的合法切换(任何非死亡模式都可进入死亡)
var allowedTransitions = map[Mode][]Mode{
	ModeExploring:           {ModePortfolioTransition, ModeSurvivalTransition},
	ModePortfolioTransition: {ModeExploring},
	ModeSurvivalTransition:  {ModeSurvivalActive},
}

// CanTransition from -> to 是否为合法的模式切换
func CanTransition(from, to Mode) bool {
	if from == ModeDead {
		return false
	}
	if to == ModeDead {
		return true
	}
	for _, m := range allowedTransitions[from] {
		if m == to {
			return true
		}
	}
	return false
}

// AllowsMovement 按住移动键时角色是否可以移动
func (m Mode) AllowsMovement() bool {
	return m == ModeExploring || m == ModeSurvivalActive
}
