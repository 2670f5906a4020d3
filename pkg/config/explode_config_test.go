package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultExplodeConfig 测试默认配置合法
func TestDefaultExplodeConfig(t *testing.T) {
	cfg := DefaultExplodeConfig()

	if cfg.MaxLength != DefaultExplodeMaxLength {
		t.Errorf("default MaxLength should be %d, got %d", DefaultExplodeMaxLength, cfg.MaxLength)
	}
	if err := validateExplodeConfig(cfg); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

// TestExplodeConfig_MaxFrames 测试帧数上界计算
func TestExplodeConfig_MaxFrames(t *testing.T) {
	tests := []struct {
		name          string
		initialSize   float64
		sizeDecrement float64
		expected      int
	}{
		{name: "整除", initialSize: 2.0, sizeDecrement: 0.5, expected: 4},
		{name: "向上取整", initialSize: 2.0, sizeDecrement: 0.3, expected: 7},
		{name: "默认参数", initialSize: 2.0, sizeDecrement: 0.05, expected: 40},
		{name: "非法递减量", initialSize: 2.0, sizeDecrement: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ExplodeConfig{InitialSize: tt.initialSize, SizeDecrement: tt.sizeDecrement}
			if got := cfg.MaxFrames(); got != tt.expected {
				t.Errorf("MaxFrames() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

// TestLoadExplodeConfig_MissingFile 测试文件缺失时降级为默认配置
func TestLoadExplodeConfig_MissingFile(t *testing.T) {
	cfg, err := LoadExplodeConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got: %v", err)
	}
	if cfg.MaxLength != DefaultExplodeMaxLength {
		t.Errorf("missing file should yield defaults, got MaxLength=%d", cfg.MaxLength)
	}
}

// TestLoadExplodeConfig_PartialFile 测试部分字段配置 + 默认值回填
func TestLoadExplodeConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explode.yaml")
	content := "maxLength: 30\nsizeDecrement: 0.1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadExplodeConfig(path)
	if err != nil {
		t.Fatalf("LoadExplodeConfig failed: %v", err)
	}

	if cfg.MaxLength != 30 {
		t.Errorf("MaxLength should be 30, got %d", cfg.MaxLength)
	}
	if cfg.SizeDecrement != 0.1 {
		t.Errorf("SizeDecrement should be 0.1, got %f", cfg.SizeDecrement)
	}
	// 未配置字段回填默认值
	if cfg.InitialSize != 2.0 {
		t.Errorf("InitialSize should fall back to 2.0, got %f", cfg.InitialSize)
	}
	if cfg.SampleStep != 1 {
		t.Errorf("SampleStep should fall back to 1, got %d", cfg.SampleStep)
	}
}

// TestLoadExplodeConfig_InvalidValues 测试非法值报错
func TestLoadExplodeConfig_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explode.yaml")
	content := "initialSize: -5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadExplodeConfig(path); err == nil {
		t.Error("negative initialSize should be rejected")
	}
}

// TestLoadExplodeConfig_BadYAML 测试YAML语法错误报错
func TestLoadExplodeConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explode.yaml")
	if err := os.WriteFile(path, []byte("maxLength: [oops"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadExplodeConfig(path); err == nil {
		t.Error("malformed YAML should be rejected")
	}
}
