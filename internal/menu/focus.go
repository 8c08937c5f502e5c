// Package menu — навигация по кнопкам с клавиатуры и ввод имени для рекордов.
package menu

// Direction — направление перемещения фокуса
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Layout — расположение кнопок
type Layout int

const (
	// Column — вертикальный список с переходом по кругу
	Column Layout = iota
	// Grid — сетка 2×2 (экран конца игры)
	Grid
)

// Focus — какая кнопка выделена. Отключённые кнопки фокус не получают.
type Focus struct {
	Layout  Layout
	enabled []bool
	index   int
}

// NewFocus ставит фокус на первую включённую кнопку.
func NewFocus(layout Layout, buttons int) *Focus {
	f := &Focus{Layout: layout, enabled: make([]bool, buttons)}
	for i := range f.enabled {
		f.enabled[i] = true
	}
	return f
}

func (f *Focus) Index() int { return f.index }

func (f *Focus) Enabled(i int) bool { return i >= 0 && i < len(f.enabled) && f.enabled[i] }

// SetEnabled включает или выключает кнопку. Если выключили выделенную,
// фокус уходит на первую включённую.
func (f *Focus) SetEnabled(i int, on bool) {
	if i < 0 || i >= len(f.enabled) {
		return
	}
	f.enabled[i] = on
	if !f.Enabled(f.index) {
		f.Reset()
	}
}

// Reset возвращает фокус на первую включённую кнопку
func (f *Focus) Reset() {
	for i, on := range f.enabled {
		if on {
			f.index = i
			return
		}
	}
	f.index = 0
}

// Move сдвигает фокус. Возвращает true, если выделение изменилось.
func (f *Focus) Move(d Direction) bool {
	var on []int
	for i, e := range f.enabled {
		if e {
			on = append(on, i)
		}
	}
	if len(on) == 0 {
		return false
	}
	old := f.index
	if !f.Enabled(old) {
		f.index = on[0]
		return f.index != old
	}
	if f.Layout == Grid && len(f.enabled) == 4 {
		row, col := old/2, old%2
		switch {
		case d == Up && row == 1:
			row = 0
		case d == Down && row == 0:
			row = 1
		case d == Left && col == 1:
			col = 0
		case d == Right && col == 0:
			col = 1
		}
		if next := row*2 + col; f.Enabled(next) {
			f.index = next
		}
		return f.index != old
	}

	if d != Up && d != Down {
		return false
	}
	pos := 0
	for i, idx := range on {
		if idx == old {
			pos = i
		}
	}
	if d == Up {
		pos = (pos - 1 + len(on)) % len(on)
	} else {
		pos = (pos + 1) % len(on)
	}
	f.index = on[pos]
	return f.index != old
}
