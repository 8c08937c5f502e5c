package menu

import "testing"

func TestColumnWrapsAndSkipsDisabled(t *testing.T) {
	f := NewFocus(Column, 4)
	f.SetEnabled(1, false)
	f.Move(Down)
	if f.Index() != 2 {
		t.Fatalf("down skipped to %d, want 2", f.Index())
	}
	f.Move(Down)
	f.Move(Down)
	if f.Index() != 0 {
		t.Fatalf("wrap to %d, want 0", f.Index())
	}
	f.Move(Up)
	if f.Index() != 3 {
		t.Fatalf("up wrap to %d, want 3", f.Index())
	}
	if f.Move(Left) {
		t.Fatalf("left must not move in a column")
	}
}

func TestGridRefusesDisabledCell(t *testing.T) {
	// Restart | Main Menu
	// Save    | Leaderboard
	f := NewFocus(Grid, 4)
	f.SetEnabled(2, false)
	if f.Move(Down) {
		t.Fatalf("moved into disabled save button")
	}
	if !f.Move(Right) || f.Index() != 1 {
		t.Fatalf("right = %d, want 1", f.Index())
	}
	if !f.Move(Down) || f.Index() != 3 {
		t.Fatalf("down = %d, want 3", f.Index())
	}
	if f.Move(Down) {
		t.Fatalf("grid must not wrap")
	}
}

func TestDisablingFocusedMovesToFirst(t *testing.T) {
	f := NewFocus(Grid, 4)
	f.Move(Down)
	f.SetEnabled(2, false)
	if f.Index() != 0 {
		t.Fatalf("index = %d, want 0", f.Index())
	}
}

func TestNameEntry(t *testing.T) {
	n := NewNameEntry(6)
	n.Next()
	if n.Cursor() != 0 {
		t.Fatalf("moved past empty slot")
	}
	n.Cycle(-1)
	if n.Slot(0) != 'A' {
		t.Fatalf("empty slot must become A, got %q", n.Slot(0))
	}
	n.Cycle(-1)
	if n.Slot(0) != 'Z' {
		t.Fatalf("A-1 = %q, want Z", n.Slot(0))
	}
	n.Next()
	n.Cycle(1)
	n.Cycle(1)
	if got := n.Name(); got != "ZB" {
		t.Fatalf("name = %q, want ZB", got)
	}
	n.Next()
	if got := n.Name(); got != "ZB" {
		t.Fatalf("empty cursor slot counted: %q", got)
	}
	n.Prev()
	n.Prev()
	if got := n.Name(); got != "Z" {
		t.Fatalf("name up to cursor = %q, want Z", got)
	}
}

func TestNameEntryStopsAtLastSlot(t *testing.T) {
	n := NewNameEntry(6)
	for i := 0; i < 6; i++ {
		n.Cycle(1)
		n.Next()
	}
	n.Next()
	if n.Cursor() != 5 {
		t.Fatalf("cursor = %d, want 5", n.Cursor())
	}
	if got := n.Name(); got != "AAAAAA" {
		t.Fatalf("name = %q", got)
	}
	n.Reset()
	if n.Name() != "" || n.Cursor() != 0 {
		t.Fatalf("reset left %q at %d", n.Name(), n.Cursor())
	}
}
