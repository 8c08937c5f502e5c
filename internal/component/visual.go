package component

// DamageFlash — сущность недавно получила урон и рисуется цветом вспышки.
type DamageFlash struct {
	Timer    float64 // сколько осталось, секунды
	Duration float64
}
