package ecs

import (
	"reflect"
	"slices"
	"testing"
)

type testPosition struct {
	X, Z float64
}

type testHealth struct {
	Current float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", id1, id2)
	}
	if em.Count() != 2 {
		t.Errorf("expected 2 entities, got %d", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{X: 3, Z: -4})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPosition{}))
	if !found {
		t.Fatal("component should be found")
	}
	if pos := comp.(*testPosition); pos.X != 3 || pos.Z != -4 {
		t.Errorf("unexpected component %+v", pos)
	}

	typed, ok := GetComponent[*testPosition](em, id)
	if !ok || typed.X != 3 {
		t.Errorf("generic lookup failed: %+v, %v", typed, ok)
	}
	if _, ok := GetComponent[*testHealth](em, id); ok {
		t.Error("missing component should not be found")
	}
}

func TestGenericAndReflectAPIsAgree(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testHealth{Current: 10})

	if !em.HasComponent(id, reflect.TypeOf(&testHealth{})) {
		t.Error("reflect API should see a component added through the generic API")
	}
	if HasComponent[*testPosition](em, id) {
		t.Error("generic API should not see a component that was never added")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPosition{})

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	if !em.Exists(id) || !em.IsMarked(id) {
		t.Fatal("entity should still exist and be marked before removal")
	}
	if n := em.RemoveMarkedEntities(); n != 1 {
		t.Errorf("expected 1 removal, got %d", n)
	}
	if em.Exists(id) {
		t.Error("entity should be gone")
	}
	if _, ok := GetComponent[*testPosition](em, id); ok {
		t.Error("components of a removed entity should be gone")
	}
	if n := em.RemoveMarkedEntities(); n != 0 {
		t.Errorf("second removal should be empty, got %d", n)
	}
}

func TestDestroyUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.DestroyEntity(42)
	if n := em.RemoveMarkedEntities(); n != 0 {
		t.Errorf("unknown entity should not be counted, got %d", n)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()
	both := em.CreateEntity()
	AddComponent(em, both, &testPosition{})
	AddComponent(em, both, &testHealth{})
	posOnly := em.CreateEntity()
	AddComponent(em, posOnly, &testPosition{})
	em.CreateEntity()

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"position", GetEntitiesWith1[*testPosition](em), []EntityID{both, posOnly}},
		{"health", GetEntitiesWith1[*testHealth](em), []EntityID{both}},
		{"position and health", GetEntitiesWith2[*testPosition, *testHealth](em), []EntityID{both}},
		{"three types", GetEntitiesWith3[*testPosition, *testHealth, *testPosition](em), []EntityID{both}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()
	for range 20 {
		AddComponent(em, em.CreateEntity(), &testHealth{})
	}
	ids := GetEntitiesWith1[*testHealth](em)
	if !slices.IsSorted(ids) {
		t.Errorf("IDs should be sorted: %v", ids)
	}
}
