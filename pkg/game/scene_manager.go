package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 构建全新的体验场景。首次开始和每次重启都会调用，
// 上一个世界的任何内容都不会保留。
type SceneFactory func() Scene

// SceneManager holds the active scene and forwards the game loop to it.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	reloads      int
}

// NewSceneManager returns a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory installs the builder used by Reload.
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换当前场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene returns the active scene, or nil.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 用新构建的场景替换当前场景。
// 未设置工厂或工厂返回 nil 时返回 false。
func (sm *SceneManager) Reload() bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return false
	}

	newScene := sm.sceneFactory()
	if newScene == nil {
		log.Printf("[SceneManager] Error: scene factory returned nil")
		return false
	}
	sm.reloads++
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] Scene rebuilt (reload #%d)", sm.reloads)
	return true
}

// Update forwards to the active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw forwards to the active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
