package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/burst/pkg/components"
	"github.com/gonewx/burst/pkg/ecs"
	"github.com/gonewx/burst/pkg/game"
)

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框边框、文本、占位符和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	themeManager  *game.ThemeManager
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, tm *game.ThemeManager) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		themeManager:  tm,
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if input == nil || pos == nil {
			continue
		}

		// 爆炸会话期间隐藏文本：粒子就是文字的视觉延续，双重绘制会穿帮
		hideText := false
		if explode, ok := ecs.GetComponent[*components.ExplodeComponent](s.entityManager, entityID); ok {
			hideText = explode.Animating
		}

		s.drawInputBox(screen, input, pos, hideText)
	}
}

// drawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) drawInputBox(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent, hideText bool) {
	x := float32(pos.X)
	y := float32(pos.Y)
	width := float32(input.Width)
	height := float32(input.Height)

	textColor := s.themeManager.TextColor()
	accent := s.themeManager.AccentColor()

	// 边框（聚焦时用强调色）
	borderColor := textColor
	if input.IsFocused {
		borderColor = accent
	}
	vector.StrokeRect(screen, x, y, width, height, 1.5, borderColor, true)

	if input.Face == nil {
		return
	}

	paddingLeft := 8.0
	textY := pos.Y + (input.Height-input.Face.Size)/2

	// 占位符（输入框为空且未聚焦时显示，半透明）
	if input.Text == "" && input.Placeholder != "" && !input.IsFocused {
		op := &text.DrawOptions{}
		op.GeoM.Translate(pos.X+paddingLeft, textY)
		op.ColorScale.ScaleWithColor(textColor)
		op.ColorScale.ScaleAlpha(0.4)
		text.Draw(screen, input.Placeholder, input.Face, op)
		return
	}

	if !hideText && input.Text != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(pos.X+paddingLeft, textY)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, input.Text, input.Face, op)
	}

	// 光标
	if input.IsFocused && input.CursorVisible && !hideText {
		runes := []rune(input.Text)
		cursorPos := input.CursorPosition
		if cursorPos > len(runes) {
			cursorPos = len(runes)
		}
		prefixWidth, _ := text.Measure(string(runes[:cursorPos]), input.Face, 0)
		cursorX := float32(pos.X + paddingLeft + prefixWidth)
		vector.StrokeLine(screen, cursorX, float32(textY), cursorX, float32(textY+input.Face.Size), 1.5, textColor, true)
	}
}
