package components

// MarkerComponent 可拖拽位置标记组件
// 在宿主图表的纵向范围内渲染一条水平线，拖拽时把指针纵向偏移
// 换算成 0~200 的百分比上报给宿主（受控组件模式）。
//
// 0~200 的双倍刻度允许视觉上越过名义 0~100 数据范围（overshoot），
// 数值语义由宿主图表自行解释，标记本身不关心。
type MarkerComponent struct {
	// Position 当前百分比位置（0~200），由宿主持有并传入
	// 标记永远不自行修改该值，只通过 SetPosition 提议更新
	Position float64

	// AllowGrabber 严格模式开关
	// true:  两端渲染拖拽手柄，并处理指针事件
	// false: 渲染装饰圆点，完全不挂接指针处理
	AllowGrabber bool

	// SetPosition 宿主的位置更新回调
	// 为 nil 时拖拽降级为纯视觉反馈（仅当次会话内有效）
	SetPosition func(pct float64)

	// OnRelease 拖拽结束回调（可选，用于音效等）
	OnRelease func()

	// 容器布局（图表绘图区，屏幕坐标）
	// 每次拖拽开始时快照到 Bounds*，拖拽期间布局变化不影响本次会话
	ContainerWidth  float64
	ContainerHeight float64

	// 拖拽会话状态
	IsDragging  bool
	BoundsTop   float64 // 拖拽开始时快照的容器顶部Y
	BoundsH     float64 // 拖拽开始时快照的容器高度
	DragValue   float64 // 无回调时的临时视觉位置（会话结束即失效）
	GrabberSize float64 // 手柄方块边长（像素），0 使用 config 默认值；命中区域外扩为两倍宽
}
