package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// Sound — звуковой эффект
type Sound int

const (
	SoundLaser Sound = iota
	SoundHit
	SoundCrash
	SoundMatchEnd
)

// sweep — тон с частотой, линейно меняющейся от from до to, с примесью шума
// и затуханием к концу.
type sweep struct {
	from, to float64
	noise    float64
	total    int
	pos      int
	phase    float64
	rng      *rand.Rand
}

func newSweep(from, to, noise float64, d time.Duration, seed int64) *sweep {
	return &sweep{from: from, to: to, noise: noise, total: sampleRate.N(d), rng: rand.New(rand.NewSource(seed))}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		k := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*k
		tone := math.Sin(2 * math.Pi * s.phase)
		val := (1-s.noise)*tone + s.noise*(s.rng.Float64()*2-1)
		val *= 1 - k

		samples[i][0] = val
		samples[i][1] = val
		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect собирает стример для эффекта. Для неизвестного эффекта — nil.
func Effect(sound Sound) beep.Streamer {
	switch sound {
	case SoundLaser:
		// шумовой всплеск с падающим тоном
		return volume(newSweep(1400, 300, 0.35, 120*time.Millisecond, 1), 0.25)
	case SoundHit:
		return volume(newSweep(660, 520, 0, 80*time.Millisecond, 2), 0.3)
	case SoundCrash:
		return volume(newSweep(120, 40, 0.7, 400*time.Millisecond, 3), 0.5)
	case SoundMatchEnd:
		return volume(beep.Seq(
			newSweep(523, 523, 0, 150*time.Millisecond, 4),
			newSweep(784, 784, 0, 250*time.Millisecond, 5),
		), 0.3)
	}
	return nil
}
