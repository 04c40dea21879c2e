// Package utils 包含系统和场景共用的数学工具：
// 向量、碰撞盒、插值以及世界到屏幕的投影。
//
// # 坐标系统
//
//   - 世界坐标：X/Z 为地面，Y 向上(配置文件使用的单位)。
//   - 屏幕坐标：距窗口左上角的像素。
//
// 体验采用俯视绘制。镜头从上方注视目标；+X 向右，+Z 向屏幕下方，
// 高度(Y)按 HeightLift 比例把点向屏幕上方抬起，
// 便于看清升起和下沉的物体。
package utils

// HeightLift 每单位高度将点向屏幕上方移动的距离(以地面单位的比例计)
const HeightLift = 0.5

// Projection 单帧的世界坐标到屏幕像素映射
type Projection struct {
	Target        Vec3    // world point at the center of the screen
	PixelsPerUnit float64 // pixels per world unit at this zoom
	ScreenWidth   float64
	ScreenHeight  float64
}

// NewProjection 根据镜头距离构建投影。
// 拉远镜头(距离变大)会让世界在屏幕上缩小。
func NewProjection(target Vec3, basePixelsPerUnit, referenceDistance, distance, screenW, screenH float64) Projection {
	scale := basePixelsPerUnit
	if distance > 0 {
		scale = basePixelsPerUnit * referenceDistance / distance
	}
	return Projection{
		Target:        target,
		PixelsPerUnit: scale,
		ScreenWidth:   screenW,
		ScreenHeight:  screenH,
	}
}

// WorldToScreen 将世界坐标转换为屏幕像素
func (p Projection) WorldToScreen(w Vec3) (float64, float64) {
	sx := p.ScreenWidth/2 + (w.X-p.Target.X)*p.PixelsPerUnit
	sy := p.ScreenHeight/2 + (w.Z-p.Target.Z)*p.PixelsPerUnit - (w.Y-p.Target.Y)*p.PixelsPerUnit*HeightLift
	return sx, sy
}

// Length converts a world length to pixels.
func (p Projection) Length(l float64) float64 {
	return l * p.PixelsPerUnit
}

// Visible reports whether a screen point, grown by margin pixels, lies on screen.
func (p Projection) Visible(sx, sy, margin float64) bool {
	return sx >= -margin && sx <= p.ScreenWidth+margin &&
		sy >= -margin && sy <= p.ScreenHeight+margin
}
