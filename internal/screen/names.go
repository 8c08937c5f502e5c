package screen

import (
	"errors"
	"fmt"
	"log"

	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/leaderboard"
	"arcadia/internal/menu"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const slotSize = 56

// NameEntryScreen — имя победителя из шести букв A-Z
type NameEntryScreen struct {
	m       *Machine
	session *Session
	entry   *menu.NameEntry
}

func NewNameEntryScreen(m *Machine, s *Session) *NameEntryScreen {
	return &NameEntryScreen{m: m, session: s, entry: menu.NewNameEntry(config.NameSlots)}
}

func (s *NameEntryScreen) Enter() { s.entry.Reset() }

func (s *NameEntryScreen) Update(deltaTime float64) {
	if justPressed(ebiten.KeyEscape) {
		s.m.Fire(flow.Back)
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
	if justPressed(ebiten.KeyBackspace) {
		s.entry.Prev()
	}
	if confirmPressed() {
		s.save()
	}
}

func (s *NameEntryScreen) save() {
	match := s.session.Game.Match
	_, err := s.session.Recorder.Record(s.entry.Name(), match.Score)
	if errors.Is(err, leaderboard.ErrEmptyName) {
		return
	}
	if err != nil {
		log.Printf("ERROR: could not save score for match %s: %v", match.ID, err)
	}
	s.session.saved = true
	s.m.Fire(flow.Back)
}

func (s *NameEntryScreen) Draw(dst *ebiten.Image) {
	dst.Fill(config.BackgroundColor)
	drawCentered(dst, "ENTER YOUR NAME", 120, 4, config.TextColor)
	drawCentered(dst, fmt.Sprintf("%s  Score: %d", s.session.Game.Match.Winner, s.session.Game.Match.Score), 190, 2, config.HighlightColor)

	n := s.entry.Len()
	left := float32(config.ScreenWidth-(n*slotSize+(n-1)*12)) / 2
	for i := 0; i < n; i++ {
		x := left + float32(i*(slotSize+12))
		border := config.TextColor
		if i == s.entry.Cursor() {
			border = config.HighlightColor
		}
		vector.StrokeRect(dst, x, 280, slotSize, slotSize, 3, border, false)
		if c := s.entry.Slot(i); c != 0 {
			letter := string(rune(c))
			drawText(dst, letter, float64(x)+(slotSize-textWidth(letter, 3))/2, 290, 3, config.TextColor)
		}
	}
	drawCentered(dst, "W/S letter, A/D slot, Space save, Esc back", 400, 2, config.TextColor)
}

func (s *NameEntryScreen) Exit() {}
