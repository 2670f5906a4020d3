package config

// UI 布局相关的常量配置
// 演示场景（搜索栏 + 音量阈值图表）的窗口与控件布局参数

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600
)

// 搜索栏布局
//
// 调整指南：
//   - X: 向右增加，向左减少
//   - Y: 向下增加，向上减少
//   - 屏幕尺寸：800x600
const (
	// SearchBarX 搜索输入框 X 坐标
	SearchBarX float64 = 150

	// SearchBarY 搜索输入框 Y 坐标
	SearchBarY float64 = 80

	// SearchBarWidth 搜索输入框宽度
	SearchBarWidth float64 = 500

	// SearchBarHeight 搜索输入框高度
	SearchBarHeight float64 = 44

	// SearchBarFontSize 搜索输入框字号
	SearchBarFontSize float64 = 24
)

// 音量阈值图表布局
const (
	// VolumeChartX 图表绘图区 X 坐标
	VolumeChartX float64 = 150

	// VolumeChartY 图表绘图区 Y 坐标
	VolumeChartY float64 = 200

	// VolumeChartWidth 图表绘图区宽度
	VolumeChartWidth float64 = 500

	// VolumeChartHeight 图表绘图区高度
	VolumeChartHeight float64 = 300
)
