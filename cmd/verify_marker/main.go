// Package main 提供阈值标记线的独立验证工具
// 用于观察拖拽换算、钳制与指针捕获的行为
//
// 用法:
//
//	go run cmd/verify_marker/main.go
//
// 功能:
//   - 图表上显示一条可拖拽的标记线，抓住两端手柄上下拖动
//   - 按 G 切换手柄开关（验证纯装饰模式）
//   - 按 C 切换受控回调（验证无回调时的纯视觉拖拽）
//   - 按 ESC 退出
package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/burst/pkg/components"
	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/ecs"
	"github.com/gonewx/burst/pkg/game"
	"github.com/gonewx/burst/pkg/systems"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// VerifyGame 验证工具的游戏结构
type VerifyGame struct {
	entityManager *ecs.EntityManager
	themeManager  *game.ThemeManager

	markerSystem       *systems.MarkerSystem
	markerRenderSystem *systems.MarkerRenderSystem

	markerEntity ecs.EntityID
	marker       *components.MarkerComponent
	setPosition  func(float64)
}

// NewVerifyGame 创建验证工具
func NewVerifyGame() *VerifyGame {
	em := ecs.NewEntityManager()
	tm := game.NewThemeManager(game.ThemeDark)
	markerCfg := config.DefaultMarkerConfig()

	g := &VerifyGame{
		entityManager: em,
		themeManager:  tm,
	}

	g.markerSystem = systems.NewMarkerSystem(em, markerCfg)
	g.markerRenderSystem = systems.NewMarkerRenderSystem(em, g.markerSystem, tm, markerCfg)

	marker := &components.MarkerComponent{
		Position:        100,
		AllowGrabber:    true,
		ContainerWidth:  config.VolumeChartWidth,
		ContainerHeight: config.VolumeChartHeight,
	}
	g.setPosition = func(pct float64) {
		marker.Position = pct
	}
	marker.SetPosition = g.setPosition
	marker.OnRelease = func() {
		log.Printf("[Verify] Released at %.1f", marker.Position)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, marker)
	em.AddComponent(entityID, &components.PositionComponent{
		X: config.VolumeChartX,
		Y: config.VolumeChartY,
	})

	g.markerEntity = entityID
	g.marker = marker
	return g
}

// Update 更新逻辑
func (g *VerifyGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.marker.AllowGrabber = !g.marker.AllowGrabber
		log.Printf("[Verify] AllowGrabber = %v", g.marker.AllowGrabber)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if g.marker.SetPosition == nil {
			g.marker.SetPosition = g.setPosition
		} else {
			g.marker.SetPosition = nil
		}
		log.Printf("[Verify] Controlled callback = %v", g.marker.SetPosition != nil)
	}

	g.markerSystem.Update(1.0 / 60.0)
	g.entityManager.RemoveMarkedEntities()
	return nil
}

// Draw 渲染画面
func (g *VerifyGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.themeManager.BackgroundColor())

	// 图表外框
	accent := g.themeManager.AccentColor()
	vector.StrokeRect(screen,
		float32(config.VolumeChartX), float32(config.VolumeChartY),
		float32(config.VolumeChartWidth), float32(config.VolumeChartHeight),
		1, accent, false)

	g.markerRenderSystem.Draw(screen)

	ebiten.SetWindowTitle(fmt.Sprintf("标记线验证 - %.1f", g.marker.Position))
}

// Layout 返回逻辑屏幕尺寸
func (g *VerifyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	g := NewVerifyGame()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("标记线验证")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
