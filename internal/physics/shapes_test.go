package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAABBIntersects(t *testing.T) {
	a := AABB{Center: mgl32.Vec3{0, 0, 0}, Half: mgl32.Vec3{1, 1, 1}}
	cases := []struct {
		name string
		b    AABB
		want bool
	}{
		{"overlap", AABB{Center: mgl32.Vec3{1.5, 0, 0}, Half: mgl32.Vec3{1, 1, 1}}, true},
		{"touch", AABB{Center: mgl32.Vec3{2, 0, 0}, Half: mgl32.Vec3{1, 1, 1}}, true},
		{"apart", AABB{Center: mgl32.Vec3{0, 0, 2.5}, Half: mgl32.Vec3{1, 1, 1}}, false},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestRaySphere(t *testing.T) {
	s := Sphere{Center: mgl32.Vec3{0, 0, 10}, Radius: 1}
	dist, hit := RaySphere(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 100, s)
	if !hit {
		t.Fatalf("expected hit")
	}
	if abs(dist-9) > 1e-4 {
		t.Fatalf("dist = %f, want 9", dist)
	}
	if _, hit := RaySphere(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 5, s); hit {
		t.Fatalf("segment too short must miss")
	}
	if _, hit := RaySphere(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 100, s); hit {
		t.Fatalf("ray pointing away must miss")
	}
}

func TestRayAABB(t *testing.T) {
	box := AABB{Center: mgl32.Vec3{5, 0, 0}, Half: mgl32.Vec3{1, 1, 1}}
	dist, hit := RayAABB(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 10, box)
	if !hit || abs(dist-4) > 1e-4 {
		t.Fatalf("hit=%v dist=%f, want hit at 4", hit, dist)
	}
	if _, hit := RayAABB(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{1, 0, 0}, 10, box); hit {
		t.Fatalf("parallel ray outside slab must miss")
	}
	if _, hit := RayAABB(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 3, box); hit {
		t.Fatalf("short segment must miss")
	}
}

func TestSphereAABB(t *testing.T) {
	box := AABB{Center: mgl32.Vec3{}, Half: mgl32.Vec3{1, 1, 1}}
	if !SphereAABB(Sphere{Center: mgl32.Vec3{1.5, 0, 0}, Radius: 0.6}, box) {
		t.Fatalf("expected overlap")
	}
	if SphereAABB(Sphere{Center: mgl32.Vec3{2, 2, 0}, Radius: 0.5}, box) {
		t.Fatalf("expected no overlap at corner")
	}
}

func TestNormalizeZero(t *testing.T) {
	if n := Normalize(mgl32.Vec3{}); n != (mgl32.Vec3{}) {
		t.Fatalf("zero vector normalized to %v", n)
	}
}
