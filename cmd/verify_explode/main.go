// Package main 提供文字爆炸动画的独立验证工具
// 用于在完整应用之外单独观察爆炸会话的粒子行为
//
// 用法:
//
//	go run cmd/verify_explode/main.go
//
// 功能:
//   - 显示一个聚焦的输入框，输入文字后按回车触发爆炸
//   - 按 T 切换明暗主题（验证粒子颜色跟随主题解析色）
//   - 按 ESC 退出
package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

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

	textInputSystem       *systems.TextInputSystem
	textInputRenderSystem *systems.TextInputRenderSystem
	explodeSystem         *systems.ExplodeSystem
	explodeRenderSystem   *systems.ExplodeRenderSystem

	inputEntity ecs.EntityID
}

// NewVerifyGame 创建验证工具
func NewVerifyGame() (*VerifyGame, error) {
	rm := game.NewResourceManager()
	em := ecs.NewEntityManager()
	tm := game.NewThemeManager(game.ThemeDark)

	font, err := rm.LoadFont("assets/fonts/SimHei.ttf", config.SearchBarFontSize)
	if err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}

	g := &VerifyGame{
		entityManager: em,
		themeManager:  tm,
	}

	g.textInputSystem = systems.NewTextInputSystem(em)
	g.textInputRenderSystem = systems.NewTextInputRenderSystem(em, tm)
	g.explodeSystem = systems.NewExplodeSystem(em, tm, config.DefaultExplodeConfig())
	g.explodeRenderSystem = systems.NewExplodeRenderSystem(em)

	// 装配输入框实体
	entityID := em.CreateEntity()
	input := &components.TextInputComponent{
		Face:        font,
		FontSize:    config.SearchBarFontSize,
		Width:       config.SearchBarWidth,
		Height:      config.SearchBarHeight,
		MaxLength:   100,
		Placeholder: "输入文字后按回车",
		IsFocused:   true,
	}
	explode := &components.ExplodeComponent{
		OriginX: config.SearchBarX + 8 - 20,
		OriginY: config.SearchBarY + config.SearchBarHeight/2 - float64(config.ExplodeCanvasSize)/2,
		SetValue: func(value string) {
			input.Text = value
			input.CursorPosition = len([]rune(value))
		},
	}
	input.OnSubmit = func(value string) {
		if g.explodeSystem.Trigger(g.inputEntity) {
			log.Printf("[Verify] Session triggered for %q", value)
		}
	}

	em.AddComponent(entityID, input)
	em.AddComponent(entityID, explode)
	em.AddComponent(entityID, &components.PositionComponent{X: config.SearchBarX, Y: config.SearchBarY})
	g.inputEntity = entityID

	return g, nil
}

// Update 更新逻辑
func (g *VerifyGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if g.themeManager.Resolved() == game.ThemeDark {
			g.themeManager.SetMode(game.ThemeLight)
		} else {
			g.themeManager.SetMode(game.ThemeDark)
		}
	}

	deltaTime := 1.0 / 60.0
	g.textInputSystem.Update(deltaTime)
	g.explodeSystem.Update(deltaTime)
	g.entityManager.RemoveMarkedEntities()
	return nil
}

// Draw 渲染画面
func (g *VerifyGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.themeManager.BackgroundColor())
	g.textInputRenderSystem.Draw(screen)
	g.explodeRenderSystem.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
func (g *VerifyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	g, err := NewVerifyGame()
	if err != nil {
		log.Fatalf("[Verify] 初始化失败: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("爆炸动画验证")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
