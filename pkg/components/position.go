package components

// PositionComponent 位置组件（屏幕坐标，像素）
// 纯数据组件，遵循 ECS 原则，不包含任何方法
type PositionComponent struct {
	X float64
	Y float64
}
