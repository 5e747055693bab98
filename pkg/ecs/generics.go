package ecs

import "reflect"

// 本文件提供基于泛型的组件操作辅助函数
// 相比 EntityManager 上基于 reflect.Type 的原始方法，
// 泛型版本在调用点省去了 reflect.TypeOf 和类型断言的样板代码
//
// 用法约定：类型参数 T 必须是组件的指针类型，如 *components.PositionComponent

// AddComponent 为实体添加组件（泛型版本）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体的特定类型组件（泛型版本）
// 返回:
//   - T: 组件实例（未找到时为零值）
//   - bool: 是否找到
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有特定类型组件（泛型版本）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	var zero T
	return em.HasComponent(id, reflect.TypeOf(zero))
}

// RemoveComponent 从实体移除指定类型的组件（泛型版本）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	var zero T
	em.RemoveComponent(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有指定组件类型的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	var z1 T1
	return em.GetEntitiesWith(reflect.TypeOf(z1))
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2))
}

// GetEntitiesWith3 查询同时拥有三种组件类型的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	var z3 T3
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2), reflect.TypeOf(z3))
}
