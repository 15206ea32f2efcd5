package entity

import (
	"testing"

	"go-enemy-drills/internal/component"
)

func TestNewEntityIsSequential(t *testing.T) {
	t.Parallel()

	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	if a != 1 || b != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a, b)
	}
}

func TestSortedIDsAndLookup(t *testing.T) {
	t.Parallel()

	ecs := NewECS()
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{Index: 4 - i}
	}
	ids := SortedIDs(ecs.Enemies)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not sorted: %v", ids)
		}
	}
	id, ok := ecs.EnemyByIndex(4)
	if !ok || id != 1 {
		t.Fatalf("EnemyByIndex(4) = %d, %v, want 1, true", id, ok)
	}
	if _, ok := ecs.EnemyByIndex(9); ok {
		t.Fatal("expected missing index")
	}
}
