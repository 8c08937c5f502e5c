package audio

import (
	"testing"

	"arcadia/internal/event"
)

func TestEffectsFinishAndStayInRange(t *testing.T) {
	for _, s := range []Sound{SoundLaser, SoundHit, SoundCrash, SoundMatchEnd} {
		st := Effect(s)
		if st == nil {
			t.Fatalf("sound %d has no streamer", s)
		}
		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := st.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("sound %d sample %f out of range", s, buf[i][0])
				}
			}
			total += n
			if !ok || total > int(sampleRate)*2 {
				break
			}
		}
		if total == 0 || total > int(sampleRate) {
			t.Fatalf("sound %d streamed %d samples", s, total)
		}
	}
	if Effect(Sound(99)) != nil {
		t.Fatalf("unknown sound produced a streamer")
	}
}

func TestSilentManagerCountsEvents(t *testing.T) {
	sm := NewSoundManager()
	sm.Start(true)
	d := event.NewDispatcher()
	sm.Subscribe(d)
	d.Emit(event.ShotFired, nil)
	d.Emit(event.ShotFired, nil)
	d.Emit(event.PlayerHit, nil)
	d.Emit(event.PlayerEliminated, nil)
	if sm.Played(SoundLaser) != 2 || sm.Played(SoundHit) != 1 || sm.Played(SoundCrash) != 0 {
		t.Fatalf("played laser=%d hit=%d", sm.Played(SoundLaser), sm.Played(SoundHit))
	}
	sm.Cleanup()
}

func TestCleanupUnsubscribes(t *testing.T) {
	sm := NewSoundManager()
	sm.Start(true)
	d := event.NewDispatcher()
	sm.Subscribe(d)
	d.Emit(event.PlayerHit, nil)
	sm.Cleanup()
	d.Emit(event.PlayerHit, nil)
	if got := sm.Played(SoundHit); got != 1 {
		t.Fatalf("hit played %d times, want 1", got)
	}
}
