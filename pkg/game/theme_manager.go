package game

import "image/color"

// ThemeMode 主题模式（三态）
type ThemeMode string

const (
	// ThemeLight 浅色主题
	ThemeLight ThemeMode = "light"
	// ThemeDark 深色主题
	ThemeDark ThemeMode = "dark"
	// ThemeSystem 跟随系统
	// 当前实现解析为深色（没有可移植的系统主题查询途径）
	ThemeSystem ThemeMode = "system"
)

// ThemeManager 主题管理器
// 负责三态主题模式的解析与前景/背景色选取。
//
// 爆炸引擎绘制文字前必须从这里取解析后的文字颜色，
// 不允许写死颜色：背景可能随主题反转。
type ThemeManager struct {
	mode ThemeMode
}

// NewThemeManager 创建主题管理器
// 非法的 mode 回退为 ThemeSystem
func NewThemeManager(mode ThemeMode) *ThemeManager {
	switch mode {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		mode = ThemeSystem
	}
	return &ThemeManager{mode: mode}
}

// Mode 返回当前主题模式（未解析的三态值）
func (tm *ThemeManager) Mode() ThemeMode {
	return tm.mode
}

// SetMode 切换主题模式
// 非法值被忽略
func (tm *ThemeManager) SetMode(mode ThemeMode) {
	switch mode {
	case ThemeLight, ThemeDark, ThemeSystem:
		tm.mode = mode
	}
}

// Resolved 返回解析后的二态主题（light 或 dark）
func (tm *ThemeManager) Resolved() ThemeMode {
	if tm.mode == ThemeSystem {
		return ThemeDark
	}
	return tm.mode
}

// TextColor 返回当前主题下的文字颜色
func (tm *ThemeManager) TextColor() color.RGBA {
	if tm.Resolved() == ThemeDark {
		return color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	}
	return color.RGBA{R: 0x17, G: 0x17, B: 0x17, A: 0xff}
}

// BackgroundColor 返回当前主题下的背景色
func (tm *ThemeManager) BackgroundColor() color.RGBA {
	if tm.Resolved() == ThemeDark {
		return color.RGBA{R: 0x12, G: 0x12, B: 0x14, A: 0xff}
	}
	return color.RGBA{R: 0xf5, G: 0xf5, B: 0xf7, A: 0xff}
}

// AccentColor 返回标记线与手柄的强调色
func (tm *ThemeManager) AccentColor() color.RGBA {
	if tm.Resolved() == ThemeDark {
		return color.RGBA{R: 0x4f, G: 0x9c, B: 0xf5, A: 0xff}
	}
	return color.RGBA{R: 0x1a, G: 0x6d, B: 0xd4, A: 0xff}
}
