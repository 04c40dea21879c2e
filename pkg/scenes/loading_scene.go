// Package scenes holds the two screens of the program: the asset loading
// screen with its start gesture, and the walkable experience.
package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AssetLoader loads the manifest one entry at a time.
// *game.ResourceManager implements it.
type AssetLoader interface {
	LoadNext() (bool, error)
	Progress() game.LoadProgress
	Face(size float64) *text.GoTextFace
}

// LoadingScene loads one asset per frame while drawing a progress bar.
// Once everything settled it shows a Start button; clicking it (or
// pressing Enter or Space) calls onStart.
type LoadingScene struct {
	loader  AssetLoader
	onStart func()

	// startInput reports the start gesture for the given button rectangle.
	startInput func(button image.Rectangle) bool

	elapsedTime float64
	readyAt     float64
	complete    bool
	started     bool
	loadErr     error
}

// NewLoadingScene creates the loading scene. The loader must already have
// begun loading (see ResourceManager.BeginLoading).
func NewLoadingScene(loader AssetLoader, onStart func()) *LoadingScene {
	return &LoadingScene{
		loader:     loader,
		onStart:    onStart,
		startInput: readStartGesture,
	}
}

// Update loads the next asset, or waits for the start gesture.
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime
	if s.loadErr != nil || s.started {
		return
	}

	if !s.complete {
		done, err := s.loader.LoadNext()
		if err != nil {
			s.loadErr = err
			log.Printf("[LoadingScene] Loading stopped: %v", err)
			return
		}
		if done {
			s.complete = true
			s.readyAt = s.elapsedTime
			log.Printf("[LoadingScene] All assets settled (%d skipped)", s.loader.Progress().Skipped)
		}
		return
	}

	if s.startInput(startButtonRect()) {
		s.onClickStart()
	}
}

// Percent returns the progress shown on the bar.
func (s *LoadingScene) Percent() float64 {
	return s.loader.Progress().Percent()
}

// Ready reports whether the Start button is available.
func (s *LoadingScene) Ready() bool {
	return s.complete && s.loadErr == nil
}

// Err returns the error that stopped loading, if any.
func (s *LoadingScene) Err() error {
	return s.loadErr
}

func (s *LoadingScene) onClickStart() {
	s.started = true
	log.Printf("[LoadingScene] Start gesture received")
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	if s.onStart != nil {
		s.onStart()
	}
}

func startButtonRect() image.Rectangle {
	x := int((config.GameWindowWidth - config.StartButtonWidth) / 2)
	y := int(config.LoadingBarY - config.StartButtonHeight/2)
	return image.Rect(x, y, x+int(config.StartButtonWidth), y+int(config.StartButtonHeight))
}

func readStartGesture(button image.Rectangle) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	hovering := image.Pt(ebiten.CursorPosition()).In(button)
	if hovering {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	return hovering && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw renders the title, the progress bar or Start button, and any error.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	centerX := float64(config.GameWindowWidth) / 2

	s.drawText(screen, config.GameWindowTitle, config.LoadingTitleFontSize, centerX, config.LoadingTitleY, config.ColorTextAccent, 1)

	switch {
	case s.loadErr != nil:
		s.drawProgressBar(screen)
		msg := fmt.Sprintf("Failed to load: %v", s.loadErr)
		y := float64(config.LoadingBarY + config.LoadingBarHeight + 24)
		for _, line := range utils.WrapText(msg, s.loader.Face(config.LoadingTextFontSize), config.LoadingBarWidth) {
			s.drawText(screen, line, config.LoadingTextFontSize, centerX, y, config.ColorHealthFill, 1)
			y += config.LoadingTextFontSize * 1.4
		}
	case s.complete:
		s.drawStartButton(screen)
	default:
		s.drawProgressBar(screen)
	}
}

func (s *LoadingScene) drawProgressBar(screen *ebiten.Image) {
	x := float32((config.GameWindowWidth - config.LoadingBarWidth) / 2)
	y := float32(config.LoadingBarY)
	w := float32(config.LoadingBarWidth)
	h := float32(config.LoadingBarHeight)

	percent := s.Percent()
	vector.DrawFilledRect(screen, x, y, w, h, config.ColorHealthBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(percent/100), h, config.ColorMenuPlane, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ColorText, false)

	s.drawText(screen, fmt.Sprintf("%.0f%%", percent), config.LoadingTextFontSize,
		float64(config.GameWindowWidth)/2, config.LoadingBarY-config.LoadingTextFontSize-8, config.ColorText, 1)
}

func (s *LoadingScene) drawStartButton(screen *ebiten.Image) {
	alpha := utils.Ratio(s.elapsedTime-s.readyAt, config.LoadingFadeDuration)
	if config.LoadingFadeDuration <= 0 {
		alpha = 1
	}
	r := startButtonRect()
	fill := scaleAlpha(config.ColorRedButton, alpha)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, true)

	cy := float64(r.Min.Y) + (float64(r.Dy())-config.LoadingTextFontSize)/2
	s.drawText(screen, "Start", config.LoadingTextFontSize, float64(r.Min.X+r.Dx()/2), cy, config.ColorText, alpha)
}

func (s *LoadingScene) drawText(screen *ebiten.Image, str string, size, x, y float64, clr color.RGBA, alpha float64) {
	face := s.loader.Face(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}

func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp(alpha, 0, 1)
	return color.RGBA{uint8(float64(c.R) * a), uint8(float64(c.G) * a), uint8(float64(c.B) * a), uint8(float64(c.A) * a)}
}
