package scoreview

import (
	"path/filepath"
	"strings"
	"testing"

	"arcadia/internal/leaderboard"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func line(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func TestRenderShowsTable(t *testing.T) {
	store := leaderboard.OpenStore(filepath.Join(t.TempDir(), "scores.csv"))
	if err := store.Save([]leaderboard.Entry{{Name: "ACE", Score: 900}, {Name: "BOB", Score: 700}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	screen := newScreen(t)
	v := New(screen, leaderboard.NewRecorder(store), "LEADERBOARD")
	v.Render()

	if got := line(screen, 1); got != "LEADERBOARD" {
		t.Fatalf("title = %q", got)
	}
	if got := line(screen, 3); got != strings.TrimSpace(v.Rows()[0]) || !strings.HasSuffix(got, "900") {
		t.Fatalf("first row = %q", got)
	}
	if got := line(screen, 4); !strings.HasPrefix(got, "2. BOB") {
		t.Fatalf("second row = %q", got)
	}
	if got := line(screen, 22); got != footer {
		t.Fatalf("footer = %q", got)
	}
}

func TestEmptyBoard(t *testing.T) {
	store := leaderboard.OpenStore(filepath.Join(t.TempDir(), "missing.csv"))
	screen := newScreen(t)
	v := New(screen, leaderboard.NewRecorder(store), "LEADERBOARD")
	v.Render()
	if got := line(screen, 3); got != "No scores yet" {
		t.Fatalf("row = %q", got)
	}
}

func TestReloadPicksUpNewScores(t *testing.T) {
	store := leaderboard.OpenStore(filepath.Join(t.TempDir(), "scores.json"))
	screen := newScreen(t)
	v := New(screen, leaderboard.NewRecorder(store), "LEADERBOARD")
	v.Render()

	if err := store.Save([]leaderboard.Entry{{Name: "NEW", Score: 500}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if v.HandleKey(tcell.KeyRune, 'r') {
		t.Fatalf("reload must not quit")
	}
	if got := line(screen, 3); !strings.Contains(got, "NEW") {
		t.Fatalf("row after reload = %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	store := leaderboard.OpenStore(filepath.Join(t.TempDir(), "scores.csv"))
	v := New(newScreen(t), leaderboard.NewRecorder(store), "LEADERBOARD")
	cases := []struct {
		key  tcell.Key
		r    rune
		quit bool
	}{
		{tcell.KeyRune, 'q', true},
		{tcell.KeyEscape, 0, true},
		{tcell.KeyCtrlC, 0, true},
		{tcell.KeyRune, 'x', false},
	}
	for _, tc := range cases {
		if got := v.HandleKey(tc.key, tc.r); got != tc.quit {
			t.Errorf("key %v %q: quit=%v want %v", tc.key, tc.r, got, tc.quit)
		}
	}
}
