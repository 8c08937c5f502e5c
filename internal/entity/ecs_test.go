package entity

import (
	"testing"

	"arcadia/internal/component"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDestroyRemovesChildren(t *testing.T) {
	ecs := NewECS()
	ship := ecs.NewEntity()
	ecs.SetTransform(ship, component.NewTransform(mgl32.Vec3{}))
	gun := ecs.NewEntity()
	gt := component.NewTransform(mgl32.Vec3{0, 1, 0})
	gt.Parent = ship
	ecs.SetTransform(gun, gt)
	ecs.Guns[gun] = &component.Gun{Owner: ship}

	ecs.Destroy(ship)

	if ecs.Alive(ship) || ecs.Alive(gun) {
		t.Fatalf("expected ship and gun destroyed")
	}
	if _, ok := ecs.Guns[gun]; ok {
		t.Fatalf("gun component left behind")
	}
	if ecs.Count() != 0 {
		t.Fatalf("count = %d, want 0", ecs.Count())
	}
}

func TestDestroyTwiceIsNoop(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Destroy(id)
	ecs.Destroy(id)
	if ecs.Alive(id) {
		t.Fatalf("entity should stay destroyed")
	}
}

func TestWorldTransformComposesParent(t *testing.T) {
	ecs := NewECS()
	parent := ecs.NewEntity()
	pt := component.NewTransform(mgl32.Vec3{10, 0, 0})
	pt.SetYaw(mgl32.DegToRad(90))
	ecs.SetTransform(parent, pt)

	child := ecs.NewEntity()
	ct := component.NewTransform(mgl32.Vec3{0, 0, 2})
	ct.Parent = parent
	ecs.SetTransform(child, ct)

	pos, _, ok := ecs.WorldTransform(child)
	if !ok {
		t.Fatalf("child has no transform")
	}
	// поворот на 90° вокруг Y переводит +Z в +X
	want := mgl32.Vec3{12, 0, 0}
	if pos.Sub(want).Len() > 1e-4 {
		t.Fatalf("world pos = %v, want %v", pos, want)
	}
	fwd := ecs.WorldForward(child)
	if fwd.Sub(mgl32.Vec3{1, 0, 0}).Len() > 1e-4 {
		t.Fatalf("world forward = %v", fwd)
	}
}

func TestSetEnabledPropagates(t *testing.T) {
	ecs := NewECS()
	parent := ecs.NewEntity()
	ecs.SetTransform(parent, component.NewTransform(mgl32.Vec3{}))
	child := ecs.NewEntity()
	ct := component.NewTransform(mgl32.Vec3{})
	ct.Parent = parent
	ecs.SetTransform(child, ct)

	ecs.SetEnabled(parent, false)
	if ecs.IsEnabled(child) {
		t.Fatalf("child should be disabled with parent")
	}
	ecs.SetEnabled(parent, true)
	if !ecs.IsEnabled(child) {
		t.Fatalf("child should be enabled again")
	}
}

func TestClear(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		ecs.NewEntity()
	}
	next := ecs.NextID
	ecs.Clear()
	if ecs.Count() != 0 {
		t.Fatalf("count = %d after clear", ecs.Count())
	}
	if ecs.NewEntity() != next {
		t.Fatalf("ids must not be reused")
	}
}
