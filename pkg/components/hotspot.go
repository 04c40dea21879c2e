package components

import "github.com/bananacat/portfolio/pkg/config"

// HotspotComponent 是地面上的可交互按钮。
//
// 世界高度 = 父级高度(OnPortfolio 时为作品集模型，否则为地面) + Offset。
// 角色站在按钮上时 Offset 向 Raised 插值，否则向 Rest 插值。
type HotspotComponent struct {
	Name        string
	Action      config.HotspotAction
	Target      string
	Subject     string
	Body        string
	Offset      float64
	Rest        float64
	Raised      float64
	OnPortfolio bool
	Overlapping bool // 每帧由 HotspotSystem 设置
}

// DesiredOffset 返回当前插值的目标偏移
func (h *HotspotComponent) DesiredOffset() float64 {
	if h.Overlapping {
		return h.Raised
	}
	return h.Rest
}
