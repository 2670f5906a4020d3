package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("Allocated IDs must never equal InvalidEntity")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	// 获取组件
	comp, found := em.GetComponentByType(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Error("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if em.HasComponentOfType(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	// 添加组件
	em.AddComponent(id, &testPositionComponent{})

	// 添加后应该返回true
	if !em.HasComponentOfType(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should have component after adding")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.EntityExists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestEntityCount(t *testing.T) {
	em := NewEntityManager()
	if em.EntityCount() != 0 {
		t.Errorf("New manager should have 0 entities, got %d", em.EntityCount())
	}

	id := em.CreateEntity()
	em.CreateEntity()
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}

	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 entity after cleanup, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	// 查询拥有 Position+Velocity 的实体
	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)

	if len(entities) != 1 {
		t.Errorf("Expected 1 entity with both components, got %d", len(entities))
	}

	if len(entities) > 0 && entities[0] != id1 {
		t.Error("Query should return only id1")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})
	em.AddComponent(id, &testVelocityComponent{})

	em.RemoveComponent(id, reflect.TypeOf(&testPositionComponent{}))

	if em.HasComponentOfType(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Position component should be removed")
	}
	if !em.HasComponentOfType(id, reflect.TypeOf(&testVelocityComponent{})) {
		t.Error("Velocity component should still exist")
	}
}
