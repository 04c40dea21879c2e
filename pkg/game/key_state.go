package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyState 单帧的输入快照。系统读取它而不是直接查询 Ebitengine，
// 便于在测试中驱动。
type KeyState struct {
	Up, Down, Left, Right bool // 按住

	Interact bool // 本帧按下
	Restart  bool // 本帧按下
	Debug    bool // 按住

	Wheel float64 // 垂直滚轮增量，向上滚动为正
}

var (
	upKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ReadKeyState 读取键盘和鼠标滚轮状态
func ReadKeyState() KeyState {
	_, wheelY := ebiten.Wheel()
	return KeyState{
		Up:       anyPressed(upKeys),
		Down:     anyPressed(downKeys),
		Left:     anyPressed(leftKeys),
		Right:    anyPressed(rightKeys),
		Interact: inpututil.IsKeyJustPressed(ebiten.KeyF),
		Restart:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Debug:    ebiten.IsKeyPressed(ebiten.KeyZ),
		Wheel:    wheelY,
	}
}
