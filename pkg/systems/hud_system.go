package systems

import (
	"fmt"
	"image/color"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDSystem 绘制屏幕空间的界面：生存血条、
// 交互提示和死亡横幅。
type HUDSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	resourceManager *game.ResourceManager
	hotspots        *HotspotSystem
	spawner         *SpawnerSystem
}

// NewHUDSystem 创建 HUD 系统
func NewHUDSystem(em *ecs.EntityManager, gs *game.GameState, rm *game.ResourceManager, hotspots *HotspotSystem, spawner *SpawnerSystem) *HUDSystem {
	return &HUDSystem{
		entityManager:   em,
		gameState:       gs,
		resourceManager: rm,
		hotspots:        hotspots,
		spawner:         spawner,
	}
}

// HealthBarFill 根据生命百分比返回血条填充宽度
func HealthBarFill(percent, width float64) float64 {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return width
	}
	return width * percent / 100
}

// HintText 返回当前模式下屏幕底部的提示文字
func HintText(mode game.Mode, focused *components.HotspotComponent) string {
	switch mode {
	case game.ModeExploring:
		if focused == nil {
			return "WASD / arrows to move, mouse wheel to zoom"
		}
		if focused.Action == config.ActionSurvival {
			return "Press F to start survival"
		}
		return fmt.Sprintf("Press F to open %s", focused.Name)
	case game.ModeSurvivalTransition:
		return "Get ready..."
	case game.ModeSurvivalActive:
		return "Survive!"
	case game.ModeDead:
		return "Press R to restart"
	default:
		return ""
	}
}

// Draw 在世界之上绘制 HUD
func (s *HUDSystem) Draw(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	if s.gameState.HealthBarVisible() {
		s.drawHealthBar(screen)
	}

	var focused *components.HotspotComponent
	if s.hotspots != nil {
		if hs, ok := s.hotspots.Focused(); ok {
			focused = hs
		}
	}

	if s.gameState.IsDead() {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.ColorOverlay, false)
		s.drawText(screen, "YOU DIED", config.DeadFontSize, w/2, h/2-config.DeadFontSize, config.ColorHealthFill)
	}

	if hint := HintText(s.gameState.Mode(), focused); hint != "" {
		s.drawText(screen, hint, config.HUDFontSize, w/2, h-config.HealthBarMargin-config.HUDFontSize, config.ColorText)
	}
}

func (s *HUDSystem) drawHealthBar(screen *ebiten.Image) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.gameState.Character)
	if !ok {
		return
	}
	x := float32(config.HealthBarMargin)
	y := float32(config.HealthBarMargin)
	percent := health.Percent()

	vector.DrawFilledRect(screen, x, y, float32(config.HealthBarWidth), float32(config.HealthBarHeight), config.ColorHealthBack, false)
	fill := HealthBarFill(percent, config.HealthBarWidth)
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, float32(fill), float32(config.HealthBarHeight), config.ColorHealthFill, false)
	}
	vector.StrokeRect(screen, x, y, float32(config.HealthBarWidth), float32(config.HealthBarHeight), 2, config.ColorText, false)

	label := fmt.Sprintf("HP %.0f", percent)
	if s.spawner != nil {
		label = fmt.Sprintf("%s   enemies %d", label, s.spawner.LiveEnemies())
	}
	s.drawTextAt(screen, label, config.HUDFontSize, config.HealthBarMargin, config.HealthBarMargin+config.HealthBarHeight+6, config.ColorText, text.AlignStart)
}

func (s *HUDSystem) drawText(screen *ebiten.Image, str string, size, x, y float64, clr color.RGBA) {
	s.drawTextAt(screen, str, size, x, y, clr, text.AlignCenter)
}

func (s *HUDSystem) drawTextAt(screen *ebiten.Image, str string, size, x, y float64, clr color.RGBA, align text.Align) {
	if s.resourceManager == nil {
		return
	}
	face := s.resourceManager.Face(size)
	if face == nil {
		return
	}

	shadowOp := &text.DrawOptions{}
	shadowOp.GeoM.Translate(x+2, y+2)
	shadowOp.PrimaryAlign = align
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 160})
	text.Draw(screen, str, face, shadowOp)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
