// Package app 提供应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：装配设置、主题、配置与演示场景，
// 并实现 ebiten.Game 接口驱动主循环。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/game"
	"github.com/gonewx/burst/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Theme 强制使用的主题（"light"/"dark"/"system"），为空则使用保存的设置
	Theme string
	// Fullscreen 启动时直接进入全屏
	Fullscreen bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 打开本地数据存储；失败时设置层降级为内存模式，应用仍可运行
	gdataManager, err := gdata.Open(gdata.Config{AppName: "burst"})
	if err != nil {
		log.Printf("[App] Local storage unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	// 命令行主题优先于保存的设置
	if cfg.Theme != "" {
		settingsManager.SetTheme(game.ThemeMode(cfg.Theme))
	}
	themeManager := game.NewThemeManager(game.ThemeMode(settingsManager.GetSettings().Theme))

	// 加载控件配置（文件缺失时使用内置默认值）
	explodeCfg, err := config.LoadExplodeConfig("assets/config/explode.yaml")
	if err != nil {
		return nil, fmt.Errorf("爆炸动画配置加载失败: %w", err)
	}
	markerCfg, err := config.LoadMarkerConfig("assets/config/marker.yaml")
	if err != nil {
		return nil, fmt.Errorf("标记配置加载失败: %w", err)
	}

	resourceManager := game.NewResourceManager()

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewWidgetScene(settingsManager, themeManager, resourceManager, explodeCfg, markerCfg))

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 接管窗口关闭事件，退出前保存场景状态
	ebiten.SetWindowClosingHandled(true)

	log.Printf("[App] Initialized (theme=%s)", themeManager.Resolved())

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭：先给当前场景保存状态的机会，再终止主循环
	if ebiten.IsWindowBeingClosed() {
		if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
			if !saveable.SaveOnExit() {
				log.Printf("[App] Scene failed to save state on exit")
			}
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在应用关闭时保存状态
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
