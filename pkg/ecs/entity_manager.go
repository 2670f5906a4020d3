package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 无效实体ID（0保留，永远不会被分配）
const InvalidEntity EntityID = 0

// EntityManager 管理所有实体和组件
//
// 架构约定：系统之间零耦合，全部通过 EntityManager 查询组件通信。
// 所有方法只允许在主循环（Update/Draw）所在的 goroutine 调用。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表（延迟删除，避免遍历中修改）
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 真正的删除发生在 RemoveMarkedEntities 调用时
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件
// 同类型组件重复添加时覆盖旧值
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponentByType 获取实体的特定类型组件
// 泛型版本见 GetComponent[T]
func (em *EntityManager) GetComponentByType(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponentOfType 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponentOfType(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// EntityExists 检查实体是否存在（已创建且未被清理）
func (em *EntityManager) EntityExists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// EntityCount 返回当前存活的实体数量（含已标记待删除的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 应在每帧 Update 末尾调用一次
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（顺序不保证）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
