package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the application's high-level state by controlling
// which scene is active. It ensures only one scene's Update and Draw
// methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
	}
}

// SwitchTo changes the active scene to the provided scene.
// 切出前先调用旧场景的 Teardown（如果实现了 Teardownable），
// 保证动画会话与指针捕获等全局资源被释放。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if old, ok := sm.currentScene.(Teardownable); ok {
		old.Teardown()
		log.Printf("[SceneManager] Previous scene torn down")
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
