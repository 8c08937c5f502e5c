// Package input — снимок управления одного игрока за кадр. Клавиатура и
// геймпад опрашиваются движком, сюда приходят уже готовые значения.
package input

import (
	"math"

	"arcadia/internal/config"
)

// Кнопки геймпада
const (
	ButtonFire = iota
	ButtonRearView
	ButtonToggleAim
	ButtonSpeedUp
	ButtonSpeedDown
	ButtonPause

	ButtonCount
)

// Оси геймпада
const (
	AxisRoll  = 0
	AxisPitch = 1
)

// Controls — состояние управления. Up/Down/Left/Right и Fire держатся,
// ToggleAim, RearView, Pause и Confirm — однократные нажатия.
type Controls struct {
	Up, Down, Left, Right bool
	Fire                  bool
	SpeedUp, SpeedDown    bool
	RearView              bool
	ToggleAim             bool
	Pause                 bool
	Confirm               bool

	// -1..1, положительный PitchAxis опускает нос
	PitchAxis float32
	RollAxis  float32
}

// Gamepad — сырые данные геймпада
type Gamepad struct {
	Connected bool
	Axes      [2]float32
	Held      [ButtonCount]bool
	Pressed   [ButtonCount]bool
}

// DeadZone обнуляет малые отклонения стика
func DeadZone(v float32) float32 {
	if math.Abs(float64(v)) < config.JoystickDeadZone {
		return 0
	}
	return v
}

// FromGamepad переводит геймпад в Controls. Стик вперёд опускает нос.
func FromGamepad(g Gamepad) Controls {
	if !g.Connected {
		return Controls{}
	}
	return Controls{
		Fire:      g.Held[ButtonFire],
		RearView:  g.Held[ButtonRearView],
		ToggleAim: g.Pressed[ButtonToggleAim],
		SpeedUp:   g.Held[ButtonSpeedUp],
		SpeedDown: g.Held[ButtonSpeedDown],
		Pause:     g.Pressed[ButtonPause],
		PitchAxis: -DeadZone(g.Axes[AxisPitch]),
		RollAxis:  DeadZone(g.Axes[AxisRoll]),
	}
}

// Merge объединяет клавиатуру и геймпад: кнопки по «или», оси складываются
// с ограничением в [-1, 1].
func Merge(a, b Controls) Controls {
	return Controls{
		Up:        a.Up || b.Up,
		Down:      a.Down || b.Down,
		Left:      a.Left || b.Left,
		Right:     a.Right || b.Right,
		Fire:      a.Fire || b.Fire,
		SpeedUp:   a.SpeedUp || b.SpeedUp,
		SpeedDown: a.SpeedDown || b.SpeedDown,
		RearView:  a.RearView || b.RearView,
		ToggleAim: a.ToggleAim || b.ToggleAim,
		Pause:     a.Pause || b.Pause,
		Confirm:   a.Confirm || b.Confirm,
		PitchAxis: clampAxis(a.PitchAxis + b.PitchAxis),
		RollAxis:  clampAxis(a.RollAxis + b.RollAxis),
	}
}

// Pitch — итоговый тангаж, положительный опускает нос: клавиши дают ±1, стик добавляет своё
func (c Controls) Pitch() float32 {
	v := c.PitchAxis
	if c.Up {
		v++
	}
	if c.Down {
		v--
	}
	return clampAxis(v)
}

// Roll — итоговый крен, вправо положительный
func (c Controls) Roll() float32 {
	v := c.RollAxis
	if c.Right {
		v++
	}
	if c.Left {
		v--
	}
	return clampAxis(v)
}

// Throttle: +1 ускорение, -1 торможение
func (c Controls) Throttle() float32 {
	var v float32
	if c.SpeedUp {
		v++
	}
	if c.SpeedDown {
		v--
	}
	return v
}

func clampAxis(v float32) float32 {
	return float32(math.Max(-1, math.Min(1, float64(v))))
}
