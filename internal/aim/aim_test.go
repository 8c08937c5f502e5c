package aim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"pgregory.net/rapid"
)

var p1 = Profile{Threshold: 0.94, Blend: 0.6}

func TestStationaryTargetStraightAhead(t *testing.T) {
	facing := mgl32.Vec3{0, 0, 1}
	sol := Lead(mgl32.Vec3{}, facing, mgl32.Vec3{0, 0, 100}, mgl32.Vec3{}, 150, p1)
	if sol.Direction.Sub(facing).Len() > 1e-5 {
		t.Fatalf("direction = %v, want %v", sol.Direction, facing)
	}
	if sol.Dot < 0.9999 {
		t.Fatalf("dot = %f, want 1", sol.Dot)
	}
}

func TestMovingTargetShiftsPrediction(t *testing.T) {
	shooter := mgl32.Vec3{}
	target := mgl32.Vec3{0, 0, 100}
	vel := mgl32.Vec3{30, 0, 0}
	sol := Lead(shooter, mgl32.Vec3{0, 0, 1}, target, vel, 150, p1)

	rawTo := target.Sub(shooter).Normalize()
	predTo := sol.Predicted.Sub(shooter).Normalize()
	if rawTo.Dot(predTo) > 0.9999 {
		t.Fatalf("prediction did not move away from raw target: %v", sol.Predicted)
	}
	// 100/150 с полёта при 30 ед/с — смещение 20 по X
	if d := sol.Predicted.X() - 20; d > 1e-3 || d < -1e-3 {
		t.Fatalf("predicted x = %f, want 20", sol.Predicted.X())
	}
	if !sol.Corrected {
		t.Fatalf("dot %f above threshold must correct", sol.Dot)
	}
	if sol.Direction.X() <= 0 {
		t.Fatalf("blended direction must lean toward target motion: %v", sol.Direction)
	}
}

func TestNoCorrectionBelowThreshold(t *testing.T) {
	facing := mgl32.Vec3{0, 0, 1}
	// цель далеко в стороне: dot ≈ 0.7
	sol := Lead(mgl32.Vec3{}, facing, mgl32.Vec3{100, 0, 100}, mgl32.Vec3{}, 150, p1)
	if sol.Corrected {
		t.Fatalf("dot %f below threshold must not correct", sol.Dot)
	}
	if sol.Direction != facing {
		t.Fatalf("direction = %v, want facing", sol.Direction)
	}
}

func TestZeroProjectileSpeedKeepsFacing(t *testing.T) {
	facing := mgl32.Vec3{0, 0, 1}
	sol := Lead(mgl32.Vec3{}, facing, mgl32.Vec3{0, 0, 10}, mgl32.Vec3{1, 0, 0}, 0, p1)
	if sol.Direction != facing || sol.Corrected {
		t.Fatalf("unexpected correction: %+v", sol)
	}
}

func TestLeadProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coord := rapid.Float32Range(-500, 500)
		target := mgl32.Vec3{coord.Draw(t, "tx"), coord.Draw(t, "ty"), coord.Draw(t, "tz")}
		vel := mgl32.Vec3{coord.Draw(t, "vx"), coord.Draw(t, "vy"), coord.Draw(t, "vz")}
		facing := mgl32.Vec3{0, 0, 1}
		p := Profile{Threshold: 0.94, Blend: rapid.Float32Range(0, 1).Draw(t, "blend")}

		sol := Lead(mgl32.Vec3{}, facing, target, vel, 1000, p)

		if !sol.Corrected {
			if sol.Direction != facing {
				t.Fatalf("uncorrected shot must follow facing, got %v", sol.Direction)
			}
			return
		}
		if sol.Dot <= p.Threshold {
			t.Fatalf("corrected with dot %f <= threshold", sol.Dot)
		}
		if l := sol.Direction.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("direction not normalized: len=%f", l)
		}
		// смешивание между двумя близкими векторами не уводит дальше порога
		if sol.Direction.Dot(facing) < p.Threshold-1e-3 {
			t.Fatalf("blended direction drifted away from facing: %v", sol.Direction)
		}
	})
}
