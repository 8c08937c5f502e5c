package state

import (
	"errors"
	"fmt"
	"log"

	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/leaderboard"
	"arcadia/internal/menu"
	"arcadia/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const slotSize = 60

// NameEntryState — ввод имени победителя по буквам: вверх/вниз листают
// букву, вправо/влево двигают курсор, Enter сохраняет.
type NameEntryState struct {
	sm      *StateMachine
	session *Session
	entry   *menu.NameEntry
}

func NewNameEntryState(sm *StateMachine, s *Session) *NameEntryState {
	return &NameEntryState{sm: sm, session: s, entry: menu.NewNameEntry(config.NameSlots)}
}

func (s *NameEntryState) Enter() {
	s.entry.Reset()
}

func (s *NameEntryState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		s.sm.Fire(flow.Back)
		return
	}
	if d, ok := navDirection(); ok {
		switch d {
		case menu.Up:
			s.entry.Cycle(1)
		case menu.Down:
			s.entry.Cycle(-1)
		case menu.Right:
			s.entry.Next()
		case menu.Left:
			s.entry.Prev()
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		s.entry.Prev()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		s.save()
	}
}

func (s *NameEntryState) save() {
	match := s.session.Game.Match
	_, err := s.session.Recorder.Record(s.entry.Name(), match.Score)
	if errors.Is(err, leaderboard.ErrEmptyName) {
		return
	}
	if err != nil {
		log.Printf("ERROR: could not save score for match %s: %v", match.ID, err)
	}
	s.session.saved = true
	s.sm.Fire(flow.Back)
}

func (s *NameEntryState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	font := s.session.Font
	ui.DrawCentered(font, "Enter your name", config.ScreenWidth, 140, 40, rl.White)
	ui.DrawCentered(font, fmt.Sprintf("Score: %d", s.session.Game.Match.Score), config.ScreenWidth, 200, 28, config.HighlightColor)

	n := s.entry.Len()
	left := (config.ScreenWidth - float32(n*slotSize+(n-1)*10)) / 2
	for i := 0; i < n; i++ {
		rect := rl.NewRectangle(left+float32(i*(slotSize+10)), 300, slotSize, slotSize)
		border := rl.Gray
		if i == s.entry.Cursor() {
			border = rl.Yellow
		}
		rl.DrawRectangleLinesEx(rect, 3, border)
		if c := s.entry.Slot(i); c != 0 {
			letter := string(rune(c))
			w := rl.MeasureTextEx(font, letter, 40, 1).X
			rl.DrawTextEx(font, letter, rl.NewVector2(rect.X+(rect.Width-w)/2, rect.Y+10), 40, 1, rl.White)
		}
	}
	ui.DrawCentered(font, "Up/Down - letter, Left/Right - move, Enter - save, Esc - back", config.ScreenWidth, 420, 20, rl.LightGray)
}

func (s *NameEntryState) Exit() {}
