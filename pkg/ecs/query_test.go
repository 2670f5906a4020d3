package ecs

import "testing"

// TestGenericGetComponent 测试泛型组件获取
func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 10, Y: 20})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find the component")
	}
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("Component data mismatch, got (%f, %f)", pos.X, pos.Y)
	}

	// 未添加的组件类型应返回 false
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("GetComponent should not find a component that was never added")
	}

	// 不存在的实体应返回 false
	if _, ok := GetComponent[*testPositionComponent](em, EntityID(9999)); ok {
		t.Error("GetComponent should not find components on unknown entities")
	}
}

// TestGenericHasComponent 测试泛型组件存在性检查
func TestGenericHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}
}

// TestGenericRemoveComponent 测试泛型组件移除
func TestGenericRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should be removed")
	}
}

// TestGetEntitiesWithN 测试泛型组合查询
func TestGetEntitiesWithN(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	if got := len(GetEntitiesWith1[*testPositionComponent](em)); got != 2 {
		t.Errorf("GetEntitiesWith1 expected 2 entities, got %d", got)
	}

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("GetEntitiesWith2 expected only entity %d, got %v", id1, both)
	}
}
