package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., battle, game over).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// SceneManager 管理当前活动的场景
type SceneManager struct {
	current Scene
}

// NewSceneManager 创建场景管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetScene 切换当前场景
func (sm *SceneManager) SetScene(scene Scene) {
	sm.current = scene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw 渲染当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
