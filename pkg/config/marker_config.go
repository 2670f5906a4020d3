package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 拖拽位置标记配置常量

const (
	// MarkerScaleMax 标记百分比刻度的上界
	//
	// 0~200 的双倍刻度：名义数据范围是 0~100，上半段留给视觉上的
	// overshoot 强调效果，数值含义由宿主图表的缩放逻辑解释。
	MarkerScaleMax float64 = 200

	// DefaultMarkerGrabberSize 手柄默认尺寸（像素）
	DefaultMarkerGrabberSize float64 = 8
)

// MarkerConfig 位置标记外观调参
type MarkerConfig struct {
	// LineThickness 标记线厚度（像素）
	LineThickness float64 `yaml:"lineThickness"`

	// GrabberSize 手柄尺寸（像素）
	// 渲染的方块边长等于该值；命中检测按该值向中心四周外扩
	// （命中区域是可视方块的两倍宽，方便触摸操作）
	GrabberSize float64 `yaml:"grabberSize"`

	// DotRadius 装饰圆点半径（AllowGrabber=false 时使用，像素）
	DotRadius float64 `yaml:"dotRadius"`
}

// DefaultMarkerConfig 返回默认标记外观
func DefaultMarkerConfig() *MarkerConfig {
	return &MarkerConfig{
		LineThickness: 2,
		GrabberSize:   DefaultMarkerGrabberSize,
		DotRadius:     3,
	}
}

// LoadMarkerConfig 从 YAML 文件加载标记配置
// 文件不存在时返回默认配置（不报错），解析失败返回错误
func LoadMarkerConfig(filepath string) (*MarkerConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultMarkerConfig(), nil
		}
		return nil, fmt.Errorf("failed to read marker config file %s: %w", filepath, err)
	}

	cfg := DefaultMarkerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse marker config YAML from %s: %w", filepath, err)
	}

	def := DefaultMarkerConfig()
	if cfg.LineThickness == 0 {
		cfg.LineThickness = def.LineThickness
	}
	if cfg.GrabberSize == 0 {
		cfg.GrabberSize = def.GrabberSize
	}
	if cfg.DotRadius == 0 {
		cfg.DotRadius = def.DotRadius
	}

	if cfg.LineThickness < 0 || cfg.GrabberSize < 0 || cfg.DotRadius < 0 {
		return nil, fmt.Errorf("invalid marker config in %s: negative dimension", filepath)
	}

	return cfg, nil
}
