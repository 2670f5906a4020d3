package ecs

import "reflect"

// 泛型查询辅助函数
//
// 系统代码里组件类型在编译期已知，用泛型避免调用方手写
// reflect.TypeOf(&components.XxxComponent{}) 这类样板代码。
// 类型参数 T 必须是指针类型（组件始终以指针形式存储）。

// typeOf 返回类型参数 T 的 reflect.Type
func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// GetComponent 获取实体的 T 类型组件
// 返回组件实例和是否存在
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, found := em.GetComponentByType(id, typeOf[T]())
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponentOfType(id, typeOf[T]())
}

// RemoveComponent 从实体移除 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有 T1 组件的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 组件的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
