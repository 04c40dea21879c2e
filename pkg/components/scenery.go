package components

// SceneryKind 标识世界中的静态物体
type SceneryKind int

const (
	SceneryMainPlane SceneryKind = iota
	SceneryMenuPlane
	SceneryPortfolio
)

func (k SceneryKind) String() string {
	switch k {
	case SceneryMainPlane:
		return "main-plane"
	case SceneryMenuPlane:
		return "menu-plane"
	case SceneryPortfolio:
		return "portfolio"
	default:
		return "unknown"
	}
}

// SceneryComponent 世界中的平面矩形
type SceneryComponent struct {
	Kind   SceneryKind
	Width  float64 // 局部 X 方向
	Depth  float64 // 局部 Z 方向
	Image  string  // 可选的资源图片ID，绘制在矩形上
	Hidden bool
}

// SinkComponent 在过渡期间让实体下沉
type SinkComponent struct {
	StartY    float64
	LowerRate float64 // 每秒下沉的距离
	Threshold float64 // Y 低于该值时过渡结束
}
