package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/burst/pkg/config"
)

// AppSettings 全局应用设置
// 注意：这些设置是全局的，不绑定到特定用户
type AppSettings struct {
	// 主题模式："light" / "dark" / "system"
	Theme string `yaml:"theme"`

	// 音量阈值标记位置（0 ~ 200 百分比刻度）
	VolumeThreshold float64 `yaml:"volumeThreshold"`

	// 是否启用文字爆炸动画
	ExplodeEnabled bool `yaml:"explodeEnabled"`

	// 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *AppSettings {
	return &AppSettings{
		Theme:           string(ThemeSystem),
		VolumeThreshold: 100,
		ExplodeEnabled:  true,
		Fullscreen:      false,
	}
}

// SettingsManager 设置管理器
// 负责应用设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *AppSettings   // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据
	var loadedSettings AppSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 存档里的非法值一律收敛回合法范围，避免污染运行时状态
	loadedSettings.VolumeThreshold = clampThreshold(loadedSettings.VolumeThreshold)
	if loadedSettings.Theme == "" {
		loadedSettings.Theme = string(ThemeSystem)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化设置为 YAML
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *AppSettings {
	return sm.settings
}

// SetTheme 设置主题模式
// 非法值回退为 "system"
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTheme(mode ThemeMode) {
	switch mode {
	case ThemeLight, ThemeDark, ThemeSystem:
		sm.settings.Theme = string(mode)
	default:
		sm.settings.Theme = string(ThemeSystem)
	}
}

// SetVolumeThreshold 设置音量阈值标记位置
//
// 值会被限制在 0 ~ config.MarkerScaleMax 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetVolumeThreshold(pct float64) {
	sm.settings.VolumeThreshold = clampThreshold(pct)
}

// SetExplodeEnabled 设置是否启用文字爆炸动画
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetExplodeEnabled(enabled bool) {
	sm.settings.ExplodeEnabled = enabled
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// clampThreshold 将阈值限制在 0 ~ MarkerScaleMax 范围内
func clampThreshold(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > config.MarkerScaleMax {
		return config.MarkerScaleMax
	}
	return pct
}
