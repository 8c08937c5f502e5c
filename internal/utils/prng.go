// internal/utils/prng.go
package utils

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// PRNGService — обёртка над генератором случайных чисел с явным сидом.
// Один и тот же сид даёт одно и то же поле астероидов.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт генератор с указанным сидом. Ноль — тоже валидный сид.
func NewPRNGService(seed int64) *PRNGService {
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform — равномерно в [lo, hi)
func (s *PRNGService) Uniform(lo, hi float32) float32 {
	return lo + float32(s.rng.Float64())*(hi-lo)
}

// PointInBox — случайная точка внутри коробки [lo, hi)
func (s *PRNGService) PointInBox(lo, hi mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		s.Uniform(lo.X(), hi.X()),
		s.Uniform(lo.Y(), hi.Y()),
		s.Uniform(lo.Z(), hi.Z()),
	}
}

// Chance — true с вероятностью p
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
