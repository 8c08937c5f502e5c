// Package settings — настраиваемые параметры бойцов для каждого игрока.
package settings

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownStat — имя параметра не из таблицы Limits
var ErrUnknownStat = errors.New("settings: unknown stat")

// Stat — настраиваемый параметр
type Stat int

const (
	RotationSpeed Stat = iota
	MovementSpeed
	HealthPoints
	ShotPower
	ShotDelay
	ProjectileSpeed

	statCount
)

// Limit — допустимый диапазон и шаг
type Limit struct {
	Min, Max, Step float64
}

// Default — середина диапазона
func (l Limit) Default() float64 { return math.Round((l.Min+l.Max)/2*1e6) / 1e6 }

// Clamp ограничивает значение диапазоном и привязывает к сетке шага от Min.
func (l Limit) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return l.Default()
	}
	v = math.Max(l.Min, math.Min(l.Max, v))
	if l.Step <= 0 {
		return v
	}
	n := math.Round((v - l.Min) / l.Step)
	v = l.Min + n*l.Step
	// убираем хвосты вида 0.30000000000000004
	v = math.Round(v*1e6) / 1e6
	return math.Max(l.Min, math.Min(l.Max, v))
}

var statNames = [statCount]string{
	RotationSpeed:   "rotation_speed",
	MovementSpeed:   "movement_speed",
	HealthPoints:    "health_points",
	ShotPower:       "shot_power",
	ShotDelay:       "shot_delay",
	ProjectileSpeed: "projectile_speed",
}

// Limits — таблица диапазонов, порядок совпадает с порядком строк на экране.
var Limits = [statCount]Limit{
	RotationSpeed:   {80, 160, 5},
	MovementSpeed:   {4, 8, 0.5},
	HealthPoints:    {80, 150, 5},
	ShotPower:       {10, 40, 1},
	ShotDelay:       {0.3, 0.7, 0.1},
	ProjectileSpeed: {8, 16, 1},
}

func (s Stat) String() string {
	if s >= 0 && s < statCount {
		return statNames[s]
	}
	return fmt.Sprintf("stat(%d)", int(s))
}

// Stats возвращает все параметры по порядку
func Stats() []Stat {
	out := make([]Stat, statCount)
	for i := range out {
		out[i] = Stat(i)
	}
	return out
}

// ParseStat ищет параметр по имени колонки CSV
func ParseStat(name string) (Stat, error) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStat, name)
}

// Player — значения всех параметров одного игрока
type Player [statCount]float64

// Defaults — все параметры в середине диапазона
func Defaults() Player {
	var p Player
	for i, l := range Limits {
		p[i] = l.Default()
	}
	return p
}

func (p Player) Get(s Stat) float64 { return p[s] }

// Set записывает значение, приводя его к диапазону
func (p *Player) Set(s Stat, v float64) { p[s] = Limits[s].Clamp(v) }

// Adjust сдвигает параметр на steps шагов
func (p *Player) Adjust(s Stat, steps int) {
	p.Set(s, p[s]+float64(steps)*Limits[s].Step)
}

// Format — как значение показывается на экране
func (p Player) Format(s Stat) string {
	v := p[s]
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// Profiles — параметры обоих игроков
type Profiles [2]Player

// DefaultProfiles — оба игрока с параметрами по умолчанию
func DefaultProfiles() Profiles { return Profiles{Defaults(), Defaults()} }

// PlayerLabel — ключ строки в файле
func PlayerLabel(slot int) string { return fmt.Sprintf("Player %d", slot+1) }
