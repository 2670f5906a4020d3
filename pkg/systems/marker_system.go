package systems

import (
	"math"

	"github.com/gonewx/burst/pkg/components"
	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/ecs"
	"github.com/gonewx/burst/pkg/utils"
)

// MarkerPointerInput 标记系统指针输入接口
// 用于依赖注入，支持测试时 mock
type MarkerPointerInput interface {
	PointerPosition() (int, int)
	IsPointerPressed() bool
	IsPointerJustPressed() bool
}

// ebitenMarkerPointerInput Ebitengine 默认实现（鼠标 + 触摸）
type ebitenMarkerPointerInput struct{}

func (e *ebitenMarkerPointerInput) PointerPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenMarkerPointerInput) IsPointerPressed() bool {
	return utils.IsPointerPressed()
}

func (e *ebitenMarkerPointerInput) IsPointerJustPressed() bool {
	pressed, _, _ := utils.IsPointerJustPressed()
	return pressed
}

// MarkerSystem 位置标记拖拽系统
//
// 职责：
//   - 检测指针是否按在标记线两端的手柄上
//   - 拖拽开始时快照容器边界并独占全局指针捕获
//   - 拖拽期间把指针纵向偏移换算为 0~200 的百分比，经回调上报宿主
//   - 指针释放（无论在容器内外）或组件卸载时释放捕获，绝不泄漏
//
// 标记自身永远不写 Position：宿主是唯一数据源（受控组件模式），
// 可视位置与应用状态之间不会产生漂移。
type MarkerSystem struct {
	entityManager *ecs.EntityManager
	config        *config.MarkerConfig
	input         MarkerPointerInput
	capture       *utils.PointerCapture
}

// NewMarkerSystem 创建标记拖拽系统
func NewMarkerSystem(em *ecs.EntityManager, cfg *config.MarkerConfig) *MarkerSystem {
	if cfg == nil {
		cfg = config.DefaultMarkerConfig()
	}
	return &MarkerSystem{
		entityManager: em,
		config:        cfg,
		input:         &ebitenMarkerPointerInput{},
		capture:       utils.GetPointerCapture(),
	}
}

// NewMarkerSystemWithInput 创建带自定义输入和捕获资源的标记系统（用于测试）
func NewMarkerSystemWithInput(em *ecs.EntityManager, cfg *config.MarkerConfig, input MarkerPointerInput, capture *utils.PointerCapture) *MarkerSystem {
	s := NewMarkerSystem(em, cfg)
	s.input = input
	s.capture = capture
	return s
}

// Update 更新所有标记的拖拽状态
func (s *MarkerSystem) Update(deltaTime float64) {
	pointerX, pointerY := s.input.PointerPosition()
	pressed := s.input.IsPointerPressed()
	justPressed := s.input.IsPointerJustPressed()

	entities := ecs.GetEntitiesWith2[*components.MarkerComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		marker, _ := ecs.GetComponent[*components.MarkerComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if marker == nil || pos == nil {
			continue
		}

		// 严格模式开关：关闭手柄时完全不处理指针
		// 运行中被关闭的话，先结束可能遗留的拖拽会话
		if !marker.AllowGrabber {
			if marker.IsDragging {
				s.endDrag(entityID, marker)
			}
			continue
		}

		if !marker.IsDragging {
			// 新会话只能从手柄上按下开始
			if justPressed && s.hitGrabber(marker, pos, float64(pointerX), float64(pointerY)) {
				s.beginDrag(entityID, marker, pos)
			}
			continue
		}

		// 拖拽进行中
		if !pressed {
			// 指针释放（包括容器外释放）：必须结束会话并释放捕获
			s.endDrag(entityID, marker)
			if marker.OnRelease != nil {
				marker.OnRelease()
			}
			continue
		}

		pct := s.calculatePercentage(float64(pointerY), marker.BoundsTop, marker.BoundsH)
		if marker.SetPosition != nil {
			// 受控模式：只提议更新，宿主写回 Position
			if pct != marker.Position {
				marker.SetPosition(pct)
			}
		} else {
			// 无回调：纯视觉拖拽，临时值仅本次会话内有效
			marker.DragValue = pct
		}
	}
}

// beginDrag 开始拖拽会话
// 容器边界在每次会话开始时重新快照（两次拖拽之间布局可能变化）
func (s *MarkerSystem) beginDrag(entityID ecs.EntityID, marker *components.MarkerComponent, pos *components.PositionComponent) {
	if !s.capture.Acquire(uint64(entityID)) {
		// 其他持有者正在拖拽，本标记不启动会话
		return
	}
	marker.IsDragging = true
	marker.BoundsTop = pos.Y
	marker.BoundsH = marker.ContainerHeight
	marker.DragValue = marker.Position
}

// endDrag 结束拖拽会话并释放指针捕获
// 所有退出路径（正常释放、模式切换、卸载）都经过这里，保证配对释放
func (s *MarkerSystem) endDrag(entityID ecs.EntityID, marker *components.MarkerComponent) {
	marker.IsDragging = false
	marker.DragValue = 0
	s.capture.Release(uint64(entityID))
}

// ReleaseEntity 组件卸载/实体销毁时的强制清理
// 正在拖拽的标记会释放指针捕获，避免监听泄漏到后续场景
func (s *MarkerSystem) ReleaseEntity(entityID ecs.EntityID) {
	marker, ok := ecs.GetComponent[*components.MarkerComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	if marker.IsDragging {
		s.endDrag(entityID, marker)
	}
}

// Teardown 场景销毁时释放所有标记持有的全局资源
func (s *MarkerSystem) Teardown() {
	entities := ecs.GetEntitiesWith1[*components.MarkerComponent](s.entityManager)
	for _, entityID := range entities {
		s.ReleaseEntity(entityID)
	}
}

// hitGrabber 检测指针是否落在标记线两端的手柄上
// 命中范围按 GrabberSize 向手柄中心四周外扩，是可视方块（边长 GrabberSize）
// 的两倍宽，给触摸输入留出更大的命中面积
func (s *MarkerSystem) hitGrabber(marker *components.MarkerComponent, pos *components.PositionComponent, px, py float64) bool {
	size := marker.GrabberSize
	if size == 0 {
		size = s.config.GrabberSize
	}

	lineY := s.MarkerScreenY(marker, pos)

	// 左右两端各一个手柄
	leftX := pos.X
	rightX := pos.X + marker.ContainerWidth

	return (math.Abs(px-leftX) <= size && math.Abs(py-lineY) <= size) ||
		(math.Abs(px-rightX) <= size && math.Abs(py-lineY) <= size)
}

// MarkerScreenY 计算标记线当前应渲染的屏幕Y坐标
// 渲染位置只反映传入的 Position 属性；仅在"无回调的视觉拖拽"会话中
// 临时使用 DragValue
func (s *MarkerSystem) MarkerScreenY(marker *components.MarkerComponent, pos *components.PositionComponent) float64 {
	pct := marker.Position
	if marker.IsDragging && marker.SetPosition == nil {
		pct = marker.DragValue
	}
	return pos.Y + (pct/config.MarkerScaleMax)*marker.ContainerHeight
}

// calculatePercentage 把指针Y坐标换算为 0~200 的百分比
// 公式：clamp((pointerY - containerTop) / containerHeight * 200, 0, 200)
func (s *MarkerSystem) calculatePercentage(pointerY, boundsTop, boundsH float64) float64 {
	if boundsH <= 0 {
		return 0
	}
	pct := (pointerY - boundsTop) / boundsH * config.MarkerScaleMax
	if pct < 0 {
		return 0
	}
	if pct > config.MarkerScaleMax {
		return config.MarkerScaleMax
	}
	return pct
}
