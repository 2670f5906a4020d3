package components

import "github.com/gonewx/burst/pkg/ecs"

// ExplodeComponent 文字爆炸会话组件
// 挂在输入框宿主实体上，记录一次"绘制-采样-动画"会话的运行状态。
//
// 会话生命周期：Idle → Drawing → Animating → Idle。
// 同一实体同时最多只有一个活动会话；动画进行中再次触发会被忽略，
// 直到会话回到 Idle。
type ExplodeComponent struct {
	// Animating 会话是否进行中
	// 宿主应在 true 期间禁止重复提交
	Animating bool

	// ActiveParticles 本会话仍存活的粒子实体列表
	ActiveParticles []ecs.EntityID

	// SetValue 宿主文本值的设置器
	// 会话正常结束或降级清空时，恰好调用一次 SetValue("")
	SetValue func(value string)

	// MaxTriggerLength 触发动画的文本长度上限（字符数）
	// 0 表示使用配置里的默认上限
	MaxTriggerLength int

	// OriginX/OriginY 画布在屏幕上的映射原点
	// 粒子渲染位置 = 画布坐标 + 原点偏移
	OriginX float64
	OriginY float64

	// FrameCount 会话已运行的帧数（调试与测试用）
	FrameCount int
}
