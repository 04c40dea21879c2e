package components

// EnemyComponent 标记生存模式中的敌人
type EnemyComponent struct {
	Species        string
	Speed          float64 // 朝角色移动的速度(单位/秒)
	RotationOffset float64 // 叠加到朝向上的旋转偏移，使模型面朝前方
}
