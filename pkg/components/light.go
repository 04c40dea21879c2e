package components

// LightComponent 跟随角色的平行光
type LightComponent struct {
	Intensity    float64
	MaxIntensity float64
	RampRate     float64 // 生存过渡期间每秒增加的光照强度
}
