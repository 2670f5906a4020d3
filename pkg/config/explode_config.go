package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 文字爆炸引擎配置常量

const (
	// ExplodeCanvasSize 离屏采样画布的固定边长（像素）
	//
	// 无论输入文本多大，绘制阶段都在 ExplodeCanvasSize × ExplodeCanvasSize
	// 的画布上进行，保证采样密度一致。这是公开契约的一部分：
	// 需要视觉比例对齐的宿主应据此预缩放上报的字号。
	ExplodeCanvasSize = 1000

	// DefaultExplodeMaxLength 触发爆炸动画的默认文本长度上限（字符数）
	// 超过上限时 Trigger 是 no-op，宿主走普通提交流程
	DefaultExplodeMaxLength = 50

	// ExplodeAlphaThreshold 像素采样的 alpha 阈值（0~255）
	// 只有 alpha 超过该近零阈值的像素才会生成粒子
	ExplodeAlphaThreshold = 10
)

// ExplodeConfig 文字爆炸动画调参
type ExplodeConfig struct {
	// MaxLength 触发动画的文本长度上限（字符数）
	MaxLength int `yaml:"maxLength"`

	// SampleStep 像素采样步长（1 = 逐像素采样）
	// 大于 1 时按步长跳采，降低粒子密度换取性能
	SampleStep int `yaml:"sampleStep"`

	// InitialSize 粒子初始半边长（像素）
	InitialSize float64 `yaml:"initialSize"`

	// SizeDecrement 每帧的尺寸递减量（像素/帧）
	// 与 InitialSize 一起给出动画帧数的确定性上界:
	// ceil(InitialSize / SizeDecrement)
	SizeDecrement float64 `yaml:"sizeDecrement"`

	// JitterAmplitude 每帧随机漂移幅度（像素，双向）
	JitterAmplitude float64 `yaml:"jitterAmplitude"`

	// DriftBound 粒子相对原点的最大漂移距离（像素）
	// 超出即提前退役
	DriftBound float64 `yaml:"driftBound"`
}

// DefaultExplodeConfig 返回默认调参
func DefaultExplodeConfig() *ExplodeConfig {
	return &ExplodeConfig{
		MaxLength:       DefaultExplodeMaxLength,
		SampleStep:      1,
		InitialSize:     2.0,
		SizeDecrement:   0.05,
		JitterAmplitude: 1.5,
		DriftBound:      100.0,
	}
}

// MaxFrames 返回动画帧数的确定性上界
// 粒子尺寸单调递减，保证动画在该帧数内必然结束
func (c *ExplodeConfig) MaxFrames() int {
	if c.SizeDecrement <= 0 {
		return 0
	}
	frames := c.InitialSize / c.SizeDecrement
	n := int(frames)
	if frames > float64(n) {
		n++
	}
	return n
}

// LoadExplodeConfig 从 YAML 文件加载爆炸配置
// 文件不存在时返回默认配置（不报错），解析失败返回错误
func LoadExplodeConfig(filepath string) (*ExplodeConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultExplodeConfig(), nil
		}
		return nil, fmt.Errorf("failed to read explode config file %s: %w", filepath, err)
	}

	cfg := DefaultExplodeConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse explode config YAML from %s: %w", filepath, err)
	}

	applyExplodeDefaults(cfg)
	if err := validateExplodeConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid explode config in %s: %w", filepath, err)
	}

	return cfg, nil
}

// applyExplodeDefaults 为缺失或归零的字段恢复默认值
// 保证旧配置文件可正常加载
func applyExplodeDefaults(cfg *ExplodeConfig) {
	def := DefaultExplodeConfig()
	if cfg.MaxLength == 0 {
		cfg.MaxLength = def.MaxLength
	}
	if cfg.SampleStep == 0 {
		cfg.SampleStep = def.SampleStep
	}
	if cfg.InitialSize == 0 {
		cfg.InitialSize = def.InitialSize
	}
	if cfg.SizeDecrement == 0 {
		cfg.SizeDecrement = def.SizeDecrement
	}
	if cfg.JitterAmplitude == 0 {
		cfg.JitterAmplitude = def.JitterAmplitude
	}
	if cfg.DriftBound == 0 {
		cfg.DriftBound = def.DriftBound
	}
}

// validateExplodeConfig 验证配置合法性
func validateExplodeConfig(cfg *ExplodeConfig) error {
	if cfg.MaxLength < 0 {
		return fmt.Errorf("maxLength must be >= 0, got %d", cfg.MaxLength)
	}
	if cfg.SampleStep < 1 {
		return fmt.Errorf("sampleStep must be >= 1, got %d", cfg.SampleStep)
	}
	if cfg.InitialSize <= 0 {
		return fmt.Errorf("initialSize must be > 0, got %f", cfg.InitialSize)
	}
	if cfg.SizeDecrement <= 0 {
		return fmt.Errorf("sizeDecrement must be > 0, got %f", cfg.SizeDecrement)
	}
	if cfg.JitterAmplitude < 0 {
		return fmt.Errorf("jitterAmplitude must be >= 0, got %f", cfg.JitterAmplitude)
	}
	if cfg.DriftBound <= 0 {
		return fmt.Errorf("driftBound must be > 0, got %f", cfg.DriftBound)
	}
	return nil
}
