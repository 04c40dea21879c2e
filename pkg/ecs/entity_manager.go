// Package ecs 是一个简单的实体-组件存储。
//
// 组件按动态类型存放在实体下，通常以指针形式添加，
// 并用同一指针类型查询：
//
//	ecs.AddComponent(em, id, &components.Health{Current: 10})
//	hp, ok := ecs.GetComponent[*components.Health](em, id)
//
// 销毁是延迟的：DestroyEntity 只做标记，
// RemoveMarkedEntities 在调用方选择的时机统一删除。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID            uint64
	components        map[EntityID]map[reflect.Type]any
	entitiesToDestroy []EntityID
	marked            map[EntityID]bool
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
		marked:     make(map[EntityID]bool),
	}
}

// CreateEntity 创建一个没有组件的新实体
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)，重复标记无副作用
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, ok := em.components[id]; !ok || em.marked[id] {
		return
	}
	em.marked[id] = true
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarked 判断实体是否已被标记待删除
func (em *EntityManager) IsMarked(id EntityID) bool {
	return em.marked[id]
}

// Exists 判断实体是否存在(已标记的实体仍然存在)
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Count 返回当前实体数量
func (em *EntityManager) Count() int {
	return len(em.components)
}

// AddComponent 为实体添加组件，同类型组件会被替换
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// GetComponent 获取实体的指定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	if compMap, exists := em.components[id]; exists {
		comp, found := compMap[componentType]
		return comp, found
	}
	return nil, false
}

// HasComponent 检查实体是否拥有指定类型的组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.GetComponent(id, componentType)
	return ok
}

// RemoveMarkedEntities 删除所有被 DestroyEntity 标记的实体，
// 返回删除的数量
func (em *EntityManager) RemoveMarkedEntities() int {
	n := len(em.entitiesToDestroy)
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.marked, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	return n
}

// GetEntitiesWith 按ID升序返回同时拥有所有指定组件类型的实体
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
	slices.Sort(result)
	return result
}
