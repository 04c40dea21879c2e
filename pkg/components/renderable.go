package components

import "image/color"

// Shape 俯视绘制时使用的形状
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeBlade
)

// RenderableComponent 描述实体的俯视绘制方式。
// Layer 越小越先绘制。
type RenderableComponent struct {
	Shape  Shape
	Color  color.RGBA
	Layer  int
	Hidden bool
	Image  string // 可选的资源图片ID，存在时代替形状绘制
}
