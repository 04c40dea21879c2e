package components

// AnimationState 角色当前的动画片段
type AnimationState int

const (
	AnimationIdle AnimationState = iota
	AnimationMoving
)

func (a AnimationState) String() string {
	if a == AnimationMoving {
		return "moving"
	}
	return "idle"
}

// CharacterComponent 标记玩家角色
type CharacterComponent struct {
	MoveSpeed float64 // 每个轴向的移动速度(单位/秒)
	Animation AnimationState
	// AnimTime 播放时累加，切换片段时清零
	AnimTime float64
}
