package config

import "image/color"

// 窗口和 HUD 布局

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Banana Cat Portfolio"

	// HealthBarWidth 和 HealthBarHeight 生存血条尺寸
	HealthBarWidth  float64 = 320
	HealthBarHeight float64 = 20

	// HealthBarMargin 血条距左上角的距离
	HealthBarMargin float64 = 24

	// HUDFontSize 提示和状态文字大小
	HUDFontSize float64 = 18

	// DeadFontSize 死亡横幅文字大小
	DeadFontSize float64 = 48

	// OffscreenMargin 实体超出屏幕多少像素内仍然绘制
	OffscreenMargin float64 = 64
)

// 调色板
var (
	ColorBackground   = color.RGBA{0, 0, 0, 255}
	ColorMainPlane    = color.RGBA{28, 32, 44, 255}
	ColorMenuPlane    = color.RGBA{246, 214, 72, 255}
	ColorPortfolio    = color.RGBA{236, 236, 228, 255}
	ColorCharacter    = color.RGBA{255, 206, 84, 255}
	ColorWeapon       = color.RGBA{250, 230, 90, 255}
	ColorMouse        = color.RGBA{150, 150, 160, 255}
	ColorCockroach    = color.RGBA{120, 72, 40, 255}
	ColorHotspot      = color.RGBA{66, 133, 244, 255}
	ColorHotspotFocus = color.RGBA{120, 190, 255, 255}
	ColorRedButton    = color.RGBA{220, 40, 40, 255}
	ColorHealthBack   = color.RGBA{60, 60, 60, 220}
	ColorHealthFill   = color.RGBA{220, 50, 60, 255}
	ColorText         = color.RGBA{240, 240, 240, 255}
	ColorTextAccent   = color.RGBA{255, 206, 84, 255}
	ColorOverlay      = color.RGBA{0, 0, 0, 160}
)
