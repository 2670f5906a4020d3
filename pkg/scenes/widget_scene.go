package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/burst/pkg/components"
	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/ecs"
	"github.com/gonewx/burst/pkg/game"
	"github.com/gonewx/burst/pkg/systems"
)

// 字体资源路径
const defaultFontPath = "assets/fonts/SimHei.ttf"

// WidgetScene 演示场景：搜索栏 + 音量阈值图表
//
// 搜索栏提交时触发文字爆炸动画（粒子散开后由引擎清空输入值）；
// 图表上的阈值标记线可以通过两端手柄拖拽，拖拽结果写入设置并持久化。
type WidgetScene struct {
	entityManager   *ecs.EntityManager
	settingsManager *game.SettingsManager
	themeManager    *game.ThemeManager

	textInputSystem       *systems.TextInputSystem
	textInputRenderSystem *systems.TextInputRenderSystem
	explodeSystem         *systems.ExplodeSystem
	explodeRenderSystem   *systems.ExplodeRenderSystem
	markerSystem          *systems.MarkerSystem
	markerRenderSystem    *systems.MarkerRenderSystem

	searchEntity ecs.EntityID
	chartEntity  ecs.EntityID
}

// NewWidgetScene 创建演示场景并装配实体
func NewWidgetScene(sm *game.SettingsManager, tm *game.ThemeManager, rm *game.ResourceManager, explodeCfg *config.ExplodeConfig, markerCfg *config.MarkerConfig) *WidgetScene {
	em := ecs.NewEntityManager()

	scene := &WidgetScene{
		entityManager:   em,
		settingsManager: sm,
		themeManager:    tm,
	}

	scene.textInputSystem = systems.NewTextInputSystem(em)
	scene.textInputRenderSystem = systems.NewTextInputRenderSystem(em, tm)
	scene.explodeSystem = systems.NewExplodeSystem(em, tm, explodeCfg)
	scene.explodeRenderSystem = systems.NewExplodeRenderSystem(em)
	scene.markerSystem = systems.NewMarkerSystem(em, markerCfg)
	scene.markerRenderSystem = systems.NewMarkerRenderSystem(em, scene.markerSystem, tm, markerCfg)

	scene.createSearchBar(rm)
	scene.createVolumeChart()

	return scene
}

// createSearchBar 装配搜索输入框实体（文本输入 + 爆炸动画）
func (s *WidgetScene) createSearchBar(rm *game.ResourceManager) {
	face, err := rm.LoadFont(defaultFontPath, config.SearchBarFontSize)
	if err != nil {
		// 字体缺失时输入框仍可用（占位渲染），爆炸触发走降级清空
		log.Printf("[WidgetScene] Font unavailable, explode sessions will degrade: %v", err)
		face = nil
	}

	entityID := s.entityManager.CreateEntity()

	input := &components.TextInputComponent{
		Face:        face,
		FontSize:    config.SearchBarFontSize,
		Width:       config.SearchBarWidth,
		Height:      config.SearchBarHeight,
		MaxLength:   100,
		Placeholder: "输入文字后按回车",
		IsFocused:   true,
	}

	explode := &components.ExplodeComponent{
		// 离屏画布坐标到屏幕坐标的平移：
		// 光栅化把文本画在 (20, 画布中线)，这里对齐到输入框的文本基线
		OriginX: config.SearchBarX + 8 - 20,
		OriginY: config.SearchBarY + config.SearchBarHeight/2 - float64(config.ExplodeCanvasSize)/2,
		SetValue: func(value string) {
			input.Text = value
			input.CursorPosition = len([]rune(value))
		},
	}

	input.OnSubmit = func(value string) {
		// 会话进行中：重复提交被忽略，直到会话回到 Idle
		if explode.Animating {
			return
		}
		if !s.settingsManager.GetSettings().ExplodeEnabled {
			s.submitPlain(input, value)
			return
		}
		if !s.explodeSystem.Trigger(s.searchEntity) {
			// 空文本或超长文本：走普通提交路径
			s.submitPlain(input, value)
		}
	}

	s.entityManager.AddComponent(entityID, input)
	s.entityManager.AddComponent(entityID, explode)
	s.entityManager.AddComponent(entityID, &components.PositionComponent{
		X: config.SearchBarX,
		Y: config.SearchBarY,
	})

	s.searchEntity = entityID
}

// submitPlain 无动画的普通提交：记录并立即清空
func (s *WidgetScene) submitPlain(input *components.TextInputComponent, value string) {
	if value == "" {
		return
	}
	log.Printf("[WidgetScene] Submitted: %q", value)
	input.Text = ""
	input.CursorPosition = 0
}

// createVolumeChart 装配音量阈值图表实体（可拖拽标记线）
func (s *WidgetScene) createVolumeChart() {
	entityID := s.entityManager.CreateEntity()

	marker := &components.MarkerComponent{
		Position:        s.settingsManager.GetSettings().VolumeThreshold,
		AllowGrabber:    true,
		ContainerWidth:  config.VolumeChartWidth,
		ContainerHeight: config.VolumeChartHeight,
	}
	// 受控模式：标记只提议，这里写回并同步设置
	marker.SetPosition = func(pct float64) {
		marker.Position = pct
		s.settingsManager.SetVolumeThreshold(pct)
	}
	marker.OnRelease = func() {
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[WidgetScene] Failed to persist threshold: %v", err)
		}
	}

	s.entityManager.AddComponent(entityID, marker)
	s.entityManager.AddComponent(entityID, &components.PositionComponent{
		X: config.VolumeChartX,
		Y: config.VolumeChartY,
	})

	s.chartEntity = entityID
}

// Update 推进场景一帧
func (s *WidgetScene) Update(deltaTime float64) {
	s.textInputSystem.Update(deltaTime)
	s.explodeSystem.Update(deltaTime)
	s.markerSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 渲染场景
func (s *WidgetScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.themeManager.BackgroundColor())

	s.drawChartFrame(screen)
	s.textInputRenderSystem.Draw(screen)
	s.markerRenderSystem.Draw(screen)
	s.explodeRenderSystem.Draw(screen)
}

// drawChartFrame 绘制图表外框和刻度横线
func (s *WidgetScene) drawChartFrame(screen *ebiten.Image) {
	accent := s.themeManager.AccentColor()
	frame := color.RGBA{R: accent.R, G: accent.G, B: accent.B, A: 0x50}

	x := float32(config.VolumeChartX)
	y := float32(config.VolumeChartY)
	w := float32(config.VolumeChartWidth)
	h := float32(config.VolumeChartHeight)

	vector.StrokeRect(screen, x, y, w, h, 1, frame, false)

	// 25% 间隔的刻度横线
	for i := 1; i < 4; i++ {
		lineY := y + h*float32(i)/4
		vector.StrokeLine(screen, x, lineY, x+w, lineY, 1, frame, false)
	}
}

// SaveOnExit 退出时保存设置
func (s *WidgetScene) SaveOnExit() bool {
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[WidgetScene] Failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// Teardown 场景切出时释放全局资源
// 取消进行中的爆炸会话（不再回调宿主），释放标记持有的指针捕获
func (s *WidgetScene) Teardown() {
	s.explodeSystem.Cancel(s.searchEntity)
	s.markerSystem.Teardown()
	s.entityManager.RemoveMarkedEntities()
}
