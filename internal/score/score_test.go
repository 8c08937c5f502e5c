package score

import "testing"

func TestCompute(t *testing.T) {
	cases := []struct {
		elapsed      float64
		max, hp, pen int
		want         int
	}{
		{0, 100, 100, 2, 1000},
		{12.34, 100, 60, 2, 1000 - 123 - 80},
		{200, 100, 1, 2, 0},
		{1, 100, 120, 2, 990}, // здоровье выше максимума не даёт бонуса
	}
	for _, tc := range cases {
		if got := Compute(tc.elapsed, tc.max, tc.hp, tc.pen); got != tc.want {
			t.Errorf("Compute(%v,%d,%d,%d) = %d, want %d", tc.elapsed, tc.max, tc.hp, tc.pen, got, tc.want)
		}
	}
}

func TestDecide(t *testing.T) {
	if Decide(false, false) != None {
		t.Fatalf("nobody out must be None")
	}
	if Decide(true, false) != P2Wins || Decide(false, true) != P1Wins {
		t.Fatalf("single elimination picks the other player")
	}
	if Decide(true, true) != Draw {
		t.Fatalf("double elimination is a draw")
	}
}

func TestWinner(t *testing.T) {
	if slot, ok := WinFor(1).Winner(); !ok || slot != 1 {
		t.Fatalf("WinFor(1) winner = %d,%v", slot, ok)
	}
	if _, ok := Draw.Winner(); ok {
		t.Fatalf("draw has no winner")
	}
}
