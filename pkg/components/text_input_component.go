package components

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// TextInputComponent 文本输入框组件
// 爆炸引擎从这里读取"活"输入框的文本与字体样式（相当于读取计算样式），
// 保证采样出的粒子与输入框的实际渲染视觉一致。
type TextInputComponent struct {
	// 输入框文本
	Text string // 当前输入的文本

	// 字体样式（爆炸引擎的采样依据）
	Face     *text.GoTextFace // 字体，nil 时引擎降级为立即清空
	FontSize float64          // 字号（像素），0 使用 Face.Size

	// 输入框布局
	Width  float64 // 输入框宽度（像素）
	Height float64 // 输入框高度（像素）

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）

	// 提交回调（Enter 键触发）
	OnSubmit func(text string)
}
