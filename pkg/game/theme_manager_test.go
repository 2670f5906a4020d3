package game

import "testing"

// TestThemeManager_Resolved 测试三态主题解析
func TestThemeManager_Resolved(t *testing.T) {
	tests := []struct {
		mode     ThemeMode
		resolved ThemeMode
	}{
		{mode: ThemeLight, resolved: ThemeLight},
		{mode: ThemeDark, resolved: ThemeDark},
		{mode: ThemeSystem, resolved: ThemeDark}, // system 解析为深色
	}

	for _, tt := range tests {
		tm := NewThemeManager(tt.mode)
		if got := tm.Resolved(); got != tt.resolved {
			t.Errorf("NewThemeManager(%v).Resolved() = %v, want %v", tt.mode, got, tt.resolved)
		}
	}
}

// TestThemeManager_InvalidMode 测试非法模式回退
func TestThemeManager_InvalidMode(t *testing.T) {
	tm := NewThemeManager(ThemeMode("sepia"))
	if tm.Mode() != ThemeSystem {
		t.Errorf("invalid mode should fall back to system, got %v", tm.Mode())
	}

	tm.SetMode(ThemeMode("bogus"))
	if tm.Mode() != ThemeSystem {
		t.Error("SetMode must ignore invalid values")
	}

	tm.SetMode(ThemeLight)
	if tm.Mode() != ThemeLight {
		t.Error("SetMode must accept valid values")
	}
}

// TestThemeManager_Colors 测试前景/背景配色随主题反转
func TestThemeManager_Colors(t *testing.T) {
	light := NewThemeManager(ThemeLight)
	dark := NewThemeManager(ThemeDark)

	// 浅色主题：深色文字；深色主题：浅色文字
	if light.TextColor().R >= 0x80 {
		t.Error("light theme text should be dark")
	}
	if dark.TextColor().R < 0x80 {
		t.Error("dark theme text should be light")
	}

	// 文字颜色必须不透明
	if light.TextColor().A != 0xff || dark.TextColor().A != 0xff {
		t.Error("text colors must be fully opaque")
	}

	if light.TextColor() == dark.TextColor() {
		t.Error("themes must not share a hardcoded text color")
	}
}
