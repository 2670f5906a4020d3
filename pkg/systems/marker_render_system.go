package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/burst/pkg/components"
	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/ecs"
	"github.com/gonewx/burst/pkg/game"
)

// MarkerRenderSystem 位置标记渲染系统
// 绘制标记线和两端的手柄（AllowGrabber=true）或装饰圆点（false）
type MarkerRenderSystem struct {
	entityManager *ecs.EntityManager
	markerSystem  *MarkerSystem
	themeManager  *game.ThemeManager
	config        *config.MarkerConfig
}

// NewMarkerRenderSystem 创建标记渲染系统
// markerSystem 用于复用屏幕坐标换算（渲染与命中检测必须一致）
func NewMarkerRenderSystem(em *ecs.EntityManager, ms *MarkerSystem, tm *game.ThemeManager, cfg *config.MarkerConfig) *MarkerRenderSystem {
	if cfg == nil {
		cfg = config.DefaultMarkerConfig()
	}
	return &MarkerRenderSystem{
		entityManager: em,
		markerSystem:  ms,
		themeManager:  tm,
		config:        cfg,
	}
}

// Draw 绘制所有位置标记
func (s *MarkerRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.MarkerComponent, *components.PositionComponent](s.entityManager)

	accent := s.themeManager.AccentColor()

	for _, entityID := range entities {
		marker, _ := ecs.GetComponent[*components.MarkerComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if marker == nil || pos == nil {
			continue
		}

		lineY := float32(s.markerSystem.MarkerScreenY(marker, pos))
		leftX := float32(pos.X)
		rightX := float32(pos.X + marker.ContainerWidth)

		// 标记线
		vector.StrokeLine(screen, leftX, lineY, rightX, lineY, float32(s.config.LineThickness), accent, true)

		if marker.AllowGrabber {
			// 两端手柄（方块，拖拽中放大以示反馈）
			size := float32(marker.GrabberSize)
			if size == 0 {
				size = float32(s.config.GrabberSize)
			}
			if marker.IsDragging {
				size *= 1.25
			}
			vector.DrawFilledRect(screen, leftX-size/2, lineY-size/2, size, size, accent, true)
			vector.DrawFilledRect(screen, rightX-size/2, lineY-size/2, size, size, accent, true)
		} else {
			// 装饰圆点（纯静态，无交互语义）
			r := float32(s.config.DotRadius)
			vector.DrawFilledCircle(screen, leftX, lineY, r, accent, true)
			vector.DrawFilledCircle(screen, rightX, lineY, r, accent, true)
		}
	}
}
