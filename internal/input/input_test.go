package input

import "testing"

func TestDeadZone(t *testing.T) {
	if DeadZone(0.05) != 0 || DeadZone(-0.05) != 0 {
		t.Fatalf("small deflection must be zeroed")
	}
	if DeadZone(0.5) != 0.5 {
		t.Fatalf("large deflection changed")
	}
}

func TestFromGamepadDisconnected(t *testing.T) {
	g := Gamepad{Axes: [2]float32{1, 1}}
	g.Held[ButtonFire] = true
	if FromGamepad(g) != (Controls{}) {
		t.Fatalf("disconnected gamepad produced input")
	}
}

func TestFromGamepadButtons(t *testing.T) {
	g := Gamepad{Connected: true, Axes: [2]float32{0.5, -0.7}}
	g.Held[ButtonFire] = true
	g.Pressed[ButtonToggleAim] = true
	g.Held[ButtonSpeedDown] = true
	c := FromGamepad(g)
	if !c.Fire || !c.ToggleAim || !c.SpeedDown || c.SpeedUp {
		t.Fatalf("buttons = %+v", c)
	}
	if c.RollAxis != 0.5 || c.PitchAxis != 0.7 {
		t.Fatalf("axes roll=%v pitch=%v", c.RollAxis, c.PitchAxis)
	}
}

func TestMergeAndAxes(t *testing.T) {
	kb := Controls{Up: true, SpeedUp: true}
	pad := Controls{PitchAxis: 0.8, Fire: true}
	c := Merge(kb, pad)
	if !c.Fire || !c.Up {
		t.Fatalf("merge lost buttons: %+v", c)
	}
	if c.Pitch() != 1 {
		t.Fatalf("pitch = %v, want clamp to 1", c.Pitch())
	}
	if c.Throttle() != 1 {
		t.Fatalf("throttle = %v", c.Throttle())
	}
	if (Controls{Left: true, Right: true}).Roll() != 0 {
		t.Fatalf("opposite keys must cancel")
	}
}
