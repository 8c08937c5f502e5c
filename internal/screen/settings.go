package screen

import (
	"log"

	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/settings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type editorKeys struct {
	up, down, left, right ebiten.Key
	confirm               []ebiten.Key
}

var editorBindings = [2]editorKeys{
	{ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD, []ebiten.Key{ebiten.KeySpace}},
	{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, []ebiten.Key{ebiten.KeyShiftRight, ebiten.KeyEnter}},
}

// SettingsScreen — две колонки параметров, каждый игрок правит свою и
// подтверждает кнопкой OK. Когда оба подтвердили, настройки сохраняются.
type SettingsScreen struct {
	m       *Machine
	session *Session
	editor  *settings.Editor
}

func NewSettingsScreen(m *Machine, s *Session) *SettingsScreen {
	return &SettingsScreen{m: m, session: s}
}

func (s *SettingsScreen) Enter() {
	s.editor = settings.NewEditor(s.session.Profiles)
}

func (s *SettingsScreen) Update(deltaTime float64) {
	if justPressed(ebiten.KeyEscape) {
		s.m.Fire(flow.Back)
		return
	}
	for slot, k := range editorBindings {
		switch {
		case justPressed(k.up):
			s.editor.Move(slot, -1)
		case justPressed(k.down):
			s.editor.Move(slot, 1)
		case justPressed(k.left):
			s.editor.Adjust(slot, -1)
		case justPressed(k.right):
			s.editor.Adjust(slot, 1)
		case justPressed(k.confirm...):
			s.editor.Confirm(slot)
		}
	}
	if s.editor.Done() {
		s.session.Profiles = s.editor.Values
		if err := settings.Save(s.session.SettingsPath, s.editor.Values); err != nil {
			log.Printf("ERROR: could not save settings: %v", err)
		}
		s.m.Fire(flow.Back)
	}
}

func (s *SettingsScreen) Draw(dst *ebiten.Image) {
	dst.Fill(config.BackgroundColor)
	drawCentered(dst, "SETTINGS", 40, 4, config.TextColor)
	for slot := 0; slot < 2; slot++ {
		left := 120 + float64(slot)*config.ScreenWidth/2
		drawText(dst, settings.PlayerLabel(slot), left, 110, 3, config.PlayerColors[slot])
		for i, stat := range settings.Stats() {
			clr := config.TextColor
			if s.editor.Cursor(slot) == i {
				clr = config.HighlightColor
			}
			y := 170 + float64(i)*50
			drawText(dst, stat.String()+":", left, y, 2, clr)
			drawText(dst, s.editor.Values[slot].Format(stat), left+300, y, 2, clr)
		}
		s.drawOK(dst, slot, float32(left))
	}
	drawCentered(dst, "Up/Down select, Left/Right adjust, confirm on OK. Esc - back", config.ScreenHeight-50, 2, config.TextColor)
}

// drawOK: красная кнопка, пока игрок не подтвердил, зелёная после
func (s *SettingsScreen) drawOK(dst *ebiten.Image, slot int, left float32) {
	w, h := float32(100), float32(44)
	if s.editor.OnOK(slot) {
		w, h = 120, 52
	}
	clr := config.UnlockedColor
	if s.editor.Locked(slot) {
		clr = config.LockedColor
	}
	y := float32(170 + len(settings.Stats())*50 + 10)
	vector.DrawFilledRect(dst, left, y, w, h, clr, false)
	drawText(dst, "OK", float64(left)+float64(w)/2-textWidth("OK", 2)/2, float64(y)+float64(h)/2-13, 2, config.TextColor)
}

func (s *SettingsScreen) Exit() {}
