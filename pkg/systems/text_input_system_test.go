package systems

import (
	"testing"

	"github.com/gonewx/burst/pkg/components"
	"github.com/gonewx/burst/pkg/ecs"
)

func newTextInputSystemForTest() (*TextInputSystem, *components.TextInputComponent) {
	em := ecs.NewEntityManager()
	system := NewTextInputSystem(em)
	input := &components.TextInputComponent{
		CursorVisible: true,
		MaxLength:     64,
	}
	return system, input
}

// TestTextInputSystem_InsertText 测试光标位置插入
func TestTextInputSystem_InsertText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		insert     string
		wantText   string
		wantCursor int
	}{
		{"空文本插入", "", 0, "hi", "hi", 2},
		{"末尾追加", "ab", 2, "c", "abc", 3},
		{"中间插入", "ab", 1, "x", "axb", 2},
		{"开头插入", "ab", 0, "x", "xab", 1},
		{"中文插入", "你好", 1, "啊", "你啊好", 2},
		{"控制字符被过滤", "ab", 1, "x\n\ty", "axyb", 3},
		{"纯控制字符不改变文本", "ab", 1, "\n\t", "ab", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, input := newTextInputSystemForTest()
			input.Text = tt.text
			input.CursorPosition = tt.cursor

			system.insertText(input, tt.insert)

			if input.Text != tt.wantText {
				t.Errorf("text = %q, want %q", input.Text, tt.wantText)
			}
			if input.CursorPosition != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", input.CursorPosition, tt.wantCursor)
			}
		})
	}
}

// TestTextInputSystem_MaxLength 测试最大长度限制
func TestTextInputSystem_MaxLength(t *testing.T) {
	system, input := newTextInputSystemForTest()
	input.MaxLength = 3
	input.Text = "ab"
	input.CursorPosition = 2

	system.insertText(input, "c")
	if input.Text != "abc" {
		t.Errorf("insert within limit should succeed, got %q", input.Text)
	}

	system.insertText(input, "d")
	if input.Text != "abc" {
		t.Errorf("insert past limit must be rejected, got %q", input.Text)
	}
}

// TestTextInputSystem_DeleteChars 测试退格和 Delete
func TestTextInputSystem_DeleteChars(t *testing.T) {
	system, input := newTextInputSystemForTest()
	input.Text = "abc"
	input.CursorPosition = 2

	system.deleteCharBefore(input)
	if input.Text != "ac" || input.CursorPosition != 1 {
		t.Errorf("backspace: got %q cursor %d", input.Text, input.CursorPosition)
	}

	system.deleteCharAfter(input)
	if input.Text != "a" || input.CursorPosition != 1 {
		t.Errorf("delete: got %q cursor %d", input.Text, input.CursorPosition)
	}

	// 边界：光标在开头退格、在结尾 Delete 均为 no-op
	input.CursorPosition = 0
	system.deleteCharBefore(input)
	if input.Text != "a" {
		t.Errorf("backspace at start must be a no-op, got %q", input.Text)
	}
	input.CursorPosition = 1
	system.deleteCharAfter(input)
	if input.Text != "a" {
		t.Errorf("delete at end must be a no-op, got %q", input.Text)
	}
}

// TestTextInputSystem_CursorMovement 测试光标移动边界
func TestTextInputSystem_CursorMovement(t *testing.T) {
	system, input := newTextInputSystemForTest()
	input.Text = "你好"
	input.CursorPosition = 0

	system.moveCursorLeft(input)
	if input.CursorPosition != 0 {
		t.Error("cursor must not move before the start")
	}

	system.moveCursorRight(input)
	system.moveCursorRight(input)
	system.moveCursorRight(input)
	if input.CursorPosition != 2 {
		t.Errorf("cursor must stop at the rune count, got %d", input.CursorPosition)
	}
}

// TestTextInputSystem_CursorBlink 测试光标闪烁计时
func TestTextInputSystem_CursorBlink(t *testing.T) {
	system, input := newTextInputSystemForTest()
	input.CursorVisible = true

	// 累计超过半秒后翻转可见性
	for i := 0; i < 31; i++ {
		system.updateCursorBlink(input, 1.0/60.0)
	}
	if input.CursorVisible {
		t.Error("cursor should toggle off after the blink interval")
	}

	for i := 0; i < 31; i++ {
		system.updateCursorBlink(input, 1.0/60.0)
	}
	if !input.CursorVisible {
		t.Error("cursor should toggle back on")
	}
}
