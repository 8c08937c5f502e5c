// Package scoreview — таблица рекордов в терминале. Читает тот же файл,
// что и игры, и перечитывает его по клавише r.
package scoreview

import (
	"fmt"

	"arcadia/internal/leaderboard"

	"github.com/gdamore/tcell/v2"
)

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	rowStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	leaderStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	footerStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const footer = "r - reload   q - quit"

// View рисует десять лучших результатов на tcell-экране.
type View struct {
	screen   tcell.Screen
	recorder *leaderboard.Recorder
	title    string
}

func New(screen tcell.Screen, recorder *leaderboard.Recorder, title string) *View {
	return &View{screen: screen, recorder: recorder, title: title}
}

// Rows — строки таблицы в том виде, в каком они выводятся
func (v *View) Rows() []string {
	entries := v.recorder.Entries()
	if len(entries) == 0 {
		return []string{"No scores yet"}
	}
	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = fmt.Sprintf("%2d. %-8s %6d", i+1, e.Name, e.Score)
	}
	return rows
}

// Render перерисовывает экран целиком
func (v *View) Render() {
	v.screen.Clear()
	w, h := v.screen.Size()
	v.drawCentered(w, 1, v.title, titleStyle)
	for i, row := range v.Rows() {
		style := rowStyle
		if i == 0 {
			style = leaderStyle
		}
		v.drawCentered(w, 3+i, row, style)
	}
	v.drawCentered(w, h-2, footer, footerStyle)
	v.screen.Show()
}

// HandleKey обрабатывает нажатие. Возвращает true, если пора выходить.
func (v *View) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			v.recorder.Reload()
			v.Render()
		}
	}
	return false
}

// Run — цикл событий до выхода
func (v *View) Run() {
	v.Render()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.Render()
		case *tcell.EventKey:
			if v.HandleKey(ev.Key(), ev.Rune()) {
				return
			}
		case nil:
			return
		}
	}
}

func (v *View) drawCentered(width, y int, s string, style tcell.Style) {
	x := (width - len(s)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
