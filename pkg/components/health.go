package components

// HealthComponent 存储角色和敌人的生命值
type HealthComponent struct {
	Current float64
	Max     float64
}

// Damage 扣除生命值并限制在 0 以上，返回新的生命值
func (h *HealthComponent) Damage(amount float64) float64 {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// IsDepleted 生命值是否已归零
func (h *HealthComponent) IsDepleted() bool {
	return h.Current <= 0
}

// Percent 返回 Current/Max 映射到 [0, 100] 的百分比
func (h *HealthComponent) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	p := h.Current / h.Max * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
