package systems

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/burst/pkg/components"
	"github.com/gonewx/burst/pkg/config"
	"github.com/gonewx/burst/pkg/ecs"
	"github.com/gonewx/burst/pkg/game"
)

// TextRasterizer 文字光栅化接口
// 用于依赖注入，支持测试时 mock（不依赖图形上下文）
//
// Rasterize 把文本按给定字体和颜色绘制到固定尺寸的离屏画布上，
// 返回 RGBA 像素缓冲（4 字节/像素，行优先）及画布宽高。
// 调用结束后画布必须被清空，像素缓冲是唯一输出。
type TextRasterizer interface {
	Rasterize(textStr string, face *text.GoTextFace, clr color.RGBA) (pix []byte, width, height int, err error)
}

// ebitenTextRasterizer Ebitengine 默认实现
// 离屏画布在首次使用时创建，之后复用（避免每次触发重新分配显存）
type ebitenTextRasterizer struct {
	offscreen *ebiten.Image
	pix       []byte
}

func (r *ebitenTextRasterizer) Rasterize(textStr string, face *text.GoTextFace, clr color.RGBA) ([]byte, int, int, error) {
	if face == nil {
		return nil, 0, 0, fmt.Errorf("rasterize: nil font face")
	}

	const size = config.ExplodeCanvasSize
	if r.offscreen == nil {
		r.offscreen = ebiten.NewImage(size, size)
		r.pix = make([]byte, 4*size*size)
	}

	// 文字绘制在画布垂直中线附近，与输入框的实际渲染样式一致
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, float64(size)/2-face.Size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.offscreen, textStr, face, op)

	// 回读整个像素缓冲
	r.offscreen.ReadPixels(r.pix)

	// 采样完成后立即清空画布（画布不是可见的动画表面）
	r.offscreen.Clear()

	return r.pix, size, size, nil
}

// ExplodeSystem 文字爆炸系统
// 负责一次爆炸会话的完整生命周期：
//
//	绘制阶段（同步）：按输入框的字体样式和主题色把文本光栅化到离屏画布，
//	逐像素采样 alpha 超过阈值的点生成粒子，然后清空画布。
//	动画阶段（每帧）：粒子做有界随机漂移并按固定量缩小，
//	尺寸归零或漂移越界的粒子退役；粒子全部退役后结束会话，
//	恰好调用一次宿主的 SetValue("")。
//
// 失败语义全部是静默降级：输入组件缺失时 no-op，光栅化失败时
// 立即无动画清空。动画是装饰性的，绝不阻塞宿主的提交流程。
type ExplodeSystem struct {
	entityManager *ecs.EntityManager
	themeManager  *game.ThemeManager
	config        *config.ExplodeConfig
	rasterizer    TextRasterizer
}

// NewExplodeSystem 创建文字爆炸系统
func NewExplodeSystem(em *ecs.EntityManager, tm *game.ThemeManager, cfg *config.ExplodeConfig) *ExplodeSystem {
	if cfg == nil {
		cfg = config.DefaultExplodeConfig()
	}
	return &ExplodeSystem{
		entityManager: em,
		themeManager:  tm,
		config:        cfg,
		rasterizer:    &ebitenTextRasterizer{},
	}
}

// NewExplodeSystemWithRasterizer 创建带自定义光栅化器的爆炸系统（用于测试）
func NewExplodeSystemWithRasterizer(em *ecs.EntityManager, tm *game.ThemeManager, cfg *config.ExplodeConfig, r TextRasterizer) *ExplodeSystem {
	s := NewExplodeSystem(em, tm, cfg)
	s.rasterizer = r
	return s
}

// Trigger 触发一次爆炸会话
//
// no-op 条件（返回 false，不产生任何粒子，Animating 保持 false）：
//   - 实体没有 ExplodeComponent 或 TextInputComponent（输入引用不可用）
//   - 文本为空
//   - 文本长度超过上限（宿主应走普通提交流程）
//   - 已有会话在进行中（忽略策略：直到会话回到 Idle 前重复触发无效）
//
// 降级条件（返回 true，立即无动画清空宿主文本）：
//   - 光栅化失败（字体缺失、图形环境不支持）
//   - 光栅化成功但没有采样到任何粒子
func (s *ExplodeSystem) Trigger(entityID ecs.EntityID) bool {
	explode, ok := ecs.GetComponent[*components.ExplodeComponent](s.entityManager, entityID)
	if !ok {
		return false
	}

	// 会话进行中，忽略新触发
	if explode.Animating {
		log.Printf("[ExplodeSystem] Trigger ignored: session already animating (entity=%d)", entityID)
		return false
	}

	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
	if !ok {
		// 输入引用不可用，静默 no-op
		return false
	}

	value := input.Text
	if value == "" {
		return false
	}

	// 长度门限：超限时交还宿主的普通提交路径
	maxLen := explode.MaxTriggerLength
	if maxLen == 0 {
		maxLen = s.config.MaxLength
	}
	if len([]rune(value)) > maxLen {
		log.Printf("[ExplodeSystem] Trigger skipped: text length %d exceeds ceiling %d", len([]rune(value)), maxLen)
		return false
	}

	// 绘制阶段：主题解析色，绝不写死颜色（背景可能随主题反转）
	textColor := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if s.themeManager != nil {
		textColor = s.themeManager.TextColor()
	}

	pix, width, height, err := s.rasterizer.Rasterize(value, input.Face, textColor)
	if err != nil {
		// 光栅化不可用：降级为立即清空，绝不让宿主卡住
		log.Printf("[ExplodeSystem] Rasterize failed, degrading to instant clear: %v", err)
		s.clearHostValue(explode)
		return true
	}

	spawned := s.sampleParticles(explode, pix, width, height)
	if spawned == 0 {
		// 空白文本等极端情况：没有可动画的内容，同样立即清空
		s.clearHostValue(explode)
		return true
	}

	explode.Animating = true
	explode.FrameCount = 0
	log.Printf("[ExplodeSystem] Session started: %d particles (entity=%d)", spawned, entityID)
	return true
}

// sampleParticles 扫描像素缓冲，为每个不透明像素生成一个粒子实体
// 返回生成的粒子数
func (s *ExplodeSystem) sampleParticles(explode *components.ExplodeComponent, pix []byte, width, height int) int {
	step := s.config.SampleStep
	if step < 1 {
		step = 1
	}

	spawned := 0
	for y := 0; y < height; y += step {
		for x := 0; x < width; x += step {
			idx := (y*width + x) * 4
			alpha := pix[idx+3]
			if alpha <= config.ExplodeAlphaThreshold {
				continue
			}

			particleID := s.entityManager.CreateEntity()
			s.entityManager.AddComponent(particleID, &components.TextParticleComponent{
				OriginX: float64(x),
				OriginY: float64(y),
				R:       pix[idx],
				G:       pix[idx+1],
				B:       pix[idx+2],
				A:       alpha,
				Size:    s.config.InitialSize,
			})
			s.entityManager.AddComponent(particleID, &components.PositionComponent{
				X: float64(x),
				Y: float64(y),
			})

			explode.ActiveParticles = append(explode.ActiveParticles, particleID)
			spawned++
		}
	}

	return spawned
}

// Update 推进所有进行中的爆炸会话一帧
func (s *ExplodeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.ExplodeComponent](s.entityManager)

	for _, entityID := range entities {
		explode, ok := ecs.GetComponent[*components.ExplodeComponent](s.entityManager, entityID)
		if !ok || !explode.Animating {
			continue
		}

		explode.FrameCount++
		alive := explode.ActiveParticles[:0]

		for _, particleID := range explode.ActiveParticles {
			particle, hasParticle := ecs.GetComponent[*components.TextParticleComponent](s.entityManager, particleID)
			pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, particleID)
			if !hasParticle || !hasPos {
				continue
			}

			// 有界随机漂移（不是重力模拟）+ 固定尺寸递减
			jitter := s.config.JitterAmplitude
			pos.X += (rand.Float64()*2 - 1) * jitter
			pos.Y += (rand.Float64()*2 - 1) * jitter
			particle.Size -= s.config.SizeDecrement

			if particle.Size <= 0 ||
				math.Abs(pos.X-particle.OriginX) > s.config.DriftBound ||
				math.Abs(pos.Y-particle.OriginY) > s.config.DriftBound {
				s.entityManager.DestroyEntity(particleID)
				continue
			}

			alive = append(alive, particleID)
		}

		explode.ActiveParticles = alive

		// 粒子耗尽：结束会话并通知宿主清空
		if len(explode.ActiveParticles) == 0 {
			explode.ActiveParticles = nil
			explode.Animating = false
			s.clearHostValue(explode)
			log.Printf("[ExplodeSystem] Session finished after %d frames (entity=%d)", explode.FrameCount, entityID)
		}
	}
}

// Cancel 强制取消实体上的爆炸会话（场景销毁/组件卸载时调用）
// 已调度的粒子全部销毁，不再发生任何 SetValue 调用
func (s *ExplodeSystem) Cancel(entityID ecs.EntityID) {
	explode, ok := ecs.GetComponent[*components.ExplodeComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	for _, particleID := range explode.ActiveParticles {
		s.entityManager.DestroyEntity(particleID)
	}
	explode.ActiveParticles = nil
	explode.Animating = false
	explode.FrameCount = 0
}

// clearHostValue 通知宿主清空文本值
func (s *ExplodeSystem) clearHostValue(explode *components.ExplodeComponent) {
	if explode.SetValue != nil {
		explode.SetValue("")
	}
}
