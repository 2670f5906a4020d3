package utils

// PointerCapture 共享指针捕获资源
//
// 同一时刻最多一个持有者独占全局指针流：拖拽会话开始时 Acquire，
// 在所有退出路径（正常释放、场景销毁、组件移除）上都必须 Release，
// 保证 Acquire/Release 严格 1:1 配对，避免"卡在拖拽态"的泄漏。
//
// 所有方法只允许在主循环 goroutine 调用，无需加锁。
type PointerCapture struct {
	owner uint64 // 当前持有者标识，0 表示空闲

	// 配对计数（测试用，验证监听器生命周期对称性）
	acquireCount int
	releaseCount int
}

// 全局指针捕获实例
var globalPointerCapture = &PointerCapture{}

// GetPointerCapture 获取全局指针捕获资源
func GetPointerCapture() *PointerCapture {
	return globalPointerCapture
}

// Acquire 尝试以 owner 身份独占指针捕获
// 已被其他持有者占用时返回 false；重复 Acquire 同一持有者是幂等的
func (pc *PointerCapture) Acquire(owner uint64) bool {
	if owner == 0 {
		return false
	}
	if pc.owner == owner {
		return true
	}
	if pc.owner != 0 {
		return false
	}
	pc.owner = owner
	pc.acquireCount++
	return true
}

// Release 释放 owner 持有的捕获
// owner 不是当前持有者时不做任何事（容忍多余的释放调用）
func (pc *PointerCapture) Release(owner uint64) {
	if pc.owner != owner || owner == 0 {
		return
	}
	pc.owner = 0
	pc.releaseCount++
}

// IsHeldBy 检查捕获是否由 owner 持有
func (pc *PointerCapture) IsHeldBy(owner uint64) bool {
	return pc.owner != 0 && pc.owner == owner
}

// IsFree 检查捕获是否空闲
func (pc *PointerCapture) IsFree() bool {
	return pc.owner == 0
}

// Counts 返回 (Acquire 成功次数, Release 成功次数)
func (pc *PointerCapture) Counts() (acquired, released int) {
	return pc.acquireCount, pc.releaseCount
}

// Reset 重置为空闲状态并清零计数（仅测试用）
func (pc *PointerCapture) Reset() {
	pc.owner = 0
	pc.acquireCount = 0
	pc.releaseCount = 0
}
