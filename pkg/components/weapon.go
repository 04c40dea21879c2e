package components

// WeaponComponent 生存模式中旋转的香蕉武士刀
type WeaponComponent struct {
	SpinRate float64 // 绕 Y 轴的旋转速度(弧度/秒)
	Length   float64
	Width    float64
	Active   bool // 是否旋转并参与碰撞，生存开始前为 false
}
