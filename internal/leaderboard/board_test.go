package leaderboard

import (
	"errors"
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func TestAddKeepsDescendingOrder(t *testing.T) {
	b := NewBoard(nil)
	b.Add("AAA", 100)
	b.Add("BBB", 300)
	b.Add("CCC", 200)
	got := b.Entries()
	want := []Entry{{"BBB", 300}, {"CCC", 200}, {"AAA", 100}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestEqualScoresKeepInsertionOrder(t *testing.T) {
	b := NewBoard(nil)
	b.Add("FIRST", 50)
	b.Add("SECOND", 50)
	got := b.Entries()
	if got[0].Name != "FIRST" || got[1].Name != "SECOND" {
		t.Fatalf("tie order = %v", got)
	}
}

func TestEmptyNameIsRejected(t *testing.T) {
	b := NewBoard(nil)
	placed, err := b.Add("   ", 999)
	if !errors.Is(err, ErrEmptyName) || placed {
		t.Fatalf("placed=%v err=%v, want ErrEmptyName", placed, err)
	}
	if b.Len() != 0 {
		t.Fatalf("board changed: %v", b.Entries())
	}
}

func TestEleventhLowestDropped(t *testing.T) {
	b := NewBoard(nil)
	for i := 1; i <= 10; i++ {
		b.Add("P", i*10)
	}
	if b.Qualifies(5) {
		t.Fatalf("5 must not qualify on a full board with min 10")
	}
	placed, _ := b.Add("LOW", 5)
	if placed {
		t.Fatalf("low score placed")
	}
	placed, _ = b.Add("HIGH", 55)
	if !placed {
		t.Fatalf("55 not placed")
	}
	if b.Len() != 10 || b.Entries()[9].Score != 20 {
		t.Fatalf("tail = %v", b.Entries())
	}
}

func TestBoardProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scores := rapid.SliceOfN(rapid.IntRange(-1000, 5000), 0, 30).Draw(t, "scores")
		b := NewBoard(nil)
		for _, s := range scores {
			b.Add("X", s)
		}
		got := b.Entries()

		want := append([]int(nil), scores...)
		sort.Sort(sort.Reverse(sort.IntSlice(want)))
		if len(want) > 10 {
			want = want[:10]
		}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i].Score != want[i] {
				t.Fatalf("scores = %v, want %v", got, want)
			}
		}
	})
}

func TestTieAtTailOfFullBoardNotPlaced(t *testing.T) {
	b := NewBoard(nil)
	for i := 1; i <= 10; i++ {
		b.Add("AAA", i*10)
	}
	placed, err := b.Add("AAA", 10)
	if err != nil || placed {
		t.Fatalf("placed=%v err=%v, want dropped tie", placed, err)
	}
	copies := 0
	for _, e := range b.Entries() {
		if e == (Entry{"AAA", 10}) {
			copies++
		}
	}
	if b.Len() != 10 || copies != 1 {
		t.Fatalf("entries = %v", b.Entries())
	}
}
