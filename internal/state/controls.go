package state

import (
	"arcadia/internal/input"
	"arcadia/internal/menu"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyBindings struct {
	up, down, left, right int32
	fire                  int32
	speedUp, speedDown    int32
	rearView, toggleAim   int32
}

var bindings = [2]keyBindings{
	{up: rl.KeyW, down: rl.KeyS, left: rl.KeyA, right: rl.KeyD, fire: rl.KeyF,
		speedUp: rl.KeyT, speedDown: rl.KeyY, rearView: rl.KeyG, toggleAim: rl.KeyQ},
	{up: rl.KeyUp, down: rl.KeyDown, left: rl.KeyLeft, right: rl.KeyRight, fire: rl.KeyK,
		speedUp: rl.KeyO, speedDown: rl.KeyP, rearView: rl.KeyL, toggleAim: rl.KeyU},
}

// порядок совпадает с input.ButtonFire..input.ButtonPause
var gamepadButtons = [input.ButtonCount]int32{
	rl.GamepadButtonRightFaceDown,
	rl.GamepadButtonRightFaceRight,
	rl.GamepadButtonRightFaceLeft,
	rl.GamepadButtonRightFaceUp,
	rl.GamepadButtonLeftTrigger1,
	rl.GamepadButtonRightTrigger1,
}

// readControls опрашивает клавиатуру и геймпады обоих игроков.
func readControls() [2]input.Controls {
	var out [2]input.Controls
	pause := rl.IsKeyPressed(rl.KeyTab)
	for slot, b := range bindings {
		kb := input.Controls{
			Up:        rl.IsKeyDown(b.up),
			Down:      rl.IsKeyDown(b.down),
			Left:      rl.IsKeyDown(b.left),
			Right:     rl.IsKeyDown(b.right),
			Fire:      rl.IsKeyDown(b.fire),
			SpeedUp:   rl.IsKeyDown(b.speedUp),
			SpeedDown: rl.IsKeyDown(b.speedDown),
			RearView:  rl.IsKeyDown(b.rearView),
			ToggleAim: rl.IsKeyPressed(b.toggleAim),
			Pause:     pause,
		}
		out[slot] = input.Merge(kb, input.FromGamepad(readGamepad(int32(slot))))
	}
	return out
}

func readGamepad(pad int32) input.Gamepad {
	if !rl.IsGamepadAvailable(pad) {
		return input.Gamepad{}
	}
	g := input.Gamepad{Connected: true}
	g.Axes[input.AxisRoll] = rl.GetGamepadAxisMovement(pad, rl.GamepadAxisLeftX)
	g.Axes[input.AxisPitch] = rl.GetGamepadAxisMovement(pad, rl.GamepadAxisLeftY)
	for i, button := range gamepadButtons {
		g.Held[i] = rl.IsGamepadButtonDown(pad, button)
		g.Pressed[i] = rl.IsGamepadButtonPressed(pad, button)
	}
	return g
}

// confirmPressed — Enter, пробел или кнопка «огонь» любого геймпада
func confirmPressed() bool {
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeySpace) {
		return true
	}
	for pad := int32(0); pad < 2; pad++ {
		if rl.IsGamepadAvailable(pad) && rl.IsGamepadButtonPressed(pad, gamepadButtons[input.ButtonFire]) {
			return true
		}
	}
	return false
}

func backPressed() bool {
	return rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyBackspace)
}

// navDirection — стрелки и WASD для перемещения по меню
func navDirection() (menu.Direction, bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return menu.Up, true
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return menu.Down, true
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return menu.Left, true
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return menu.Right, true
	}
	return 0, false
}
