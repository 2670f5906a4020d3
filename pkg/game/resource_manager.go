package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager 负责加载并缓存字体资源
// 同一路径+字号只解析一次，之后复用缓存的字体面
type ResourceManager struct {
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadFont 加载指定路径和字号的字体面
// 结果会被缓存；文件缺失或解析失败时返回错误，由调用方决定降级策略
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}
