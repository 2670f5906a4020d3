package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/burst/pkg/components"
	"github.com/gonewx/burst/pkg/ecs"
)

// 无纹理彩色四边形的公共贴图源
// 3x3 白图取中心 1x1，避免采样到边缘导致的颜色渗漏
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ExplodeRenderSystem 文字爆炸粒子渲染系统
// 把所有进行中会话的存活粒子按顶点批量绘制到屏幕
// （每个粒子 4 顶点 2 三角形，单次 DrawTriangles 提交）
type ExplodeRenderSystem struct {
	entityManager *ecs.EntityManager

	// 顶点/索引数组复用，避免每帧分配
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewExplodeRenderSystem 创建爆炸粒子渲染系统
func NewExplodeRenderSystem(em *ecs.EntityManager) *ExplodeRenderSystem {
	return &ExplodeRenderSystem{
		entityManager: em,
		vertices:      make([]ebiten.Vertex, 0, 4096),
		indices:       make([]uint16, 0, 6144),
	}
}

// Draw 绘制所有存活的文字粒子
func (s *ExplodeRenderSystem) Draw(screen *ebiten.Image) {
	explodeEntities := ecs.GetEntitiesWith1[*components.ExplodeComponent](s.entityManager)

	for _, entityID := range explodeEntities {
		explode, ok := ecs.GetComponent[*components.ExplodeComponent](s.entityManager, entityID)
		if !ok || !explode.Animating {
			continue
		}

		// 重置数组（保留容量）
		s.vertices = s.vertices[:0]
		s.indices = s.indices[:0]

		for _, particleID := range explode.ActiveParticles {
			particle, hasParticle := ecs.GetComponent[*components.TextParticleComponent](s.entityManager, particleID)
			pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, particleID)
			if !hasParticle || !hasPos || particle.Size <= 0 {
				continue
			}

			// 画布坐标 → 屏幕坐标
			cx := float32(explode.OriginX + pos.X)
			cy := float32(explode.OriginY + pos.Y)
			half := float32(particle.Size)

			r := float32(particle.R) / 255
			g := float32(particle.G) / 255
			b := float32(particle.B) / 255
			a := float32(particle.A) / 255

			base := uint16(len(s.vertices))
			corners := [4][2]float32{
				{cx - half, cy - half},
				{cx + half, cy - half},
				{cx - half, cy + half},
				{cx + half, cy + half},
			}
			for _, c := range corners {
				s.vertices = append(s.vertices, ebiten.Vertex{
					DstX:   c[0],
					DstY:   c[1],
					SrcX:   1,
					SrcY:   1,
					ColorR: r,
					ColorG: g,
					ColorB: b,
					ColorA: a,
				})
			}
			s.indices = append(s.indices,
				base+0, base+1, base+2, // 第一个三角形
				base+1, base+3, base+2, // 第二个三角形
			)
		}

		if len(s.vertices) == 0 {
			continue
		}

		op := &ebiten.DrawTrianglesOptions{}
		op.AntiAlias = true
		screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
	}
}
