package screen

import (
	"arcadia/internal/input"
	"arcadia/internal/menu"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type keyBindings struct {
	up, down, left, right, fire ebiten.Key
}

var bindings = [2]keyBindings{
	{ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD, ebiten.KeySpace},
	{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyShiftRight},
}

func readControls() [2]input.Controls {
	var out [2]input.Controls
	pause := justPressed(ebiten.KeyEscape, ebiten.KeyP)
	for slot, b := range bindings {
		out[slot] = input.Controls{
			Up:    ebiten.IsKeyPressed(b.up),
			Down:  ebiten.IsKeyPressed(b.down),
			Left:  ebiten.IsKeyPressed(b.left),
			Right: ebiten.IsKeyPressed(b.right),
			Fire:  ebiten.IsKeyPressed(b.fire),
			Pause: pause,
		}
	}
	return out
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func confirmPressed() bool {
	return justPressed(ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter)
}

func backPressed() bool {
	return justPressed(ebiten.KeyEscape, ebiten.KeyBackspace)
}

// navDirection — навигация по меню клавишами любого из игроков
func navDirection() (menu.Direction, bool) {
	switch {
	case justPressed(ebiten.KeyW, ebiten.KeyArrowUp):
		return menu.Up, true
	case justPressed(ebiten.KeyS, ebiten.KeyArrowDown):
		return menu.Down, true
	case justPressed(ebiten.KeyA, ebiten.KeyArrowLeft):
		return menu.Left, true
	case justPressed(ebiten.KeyD, ebiten.KeyArrowRight):
		return menu.Right, true
	}
	return 0, false
}
