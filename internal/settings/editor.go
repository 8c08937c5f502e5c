package settings

// Editor — модель экрана настроек: у каждого игрока свой курсор по строкам
// параметров и последней строке OK. OK переключает блокировку, пока игрок
// заблокирован, курсор и значения не меняются.
type Editor struct {
	Values Profiles
	cursor [2]int
	locked [2]bool
}

// NewEditor начинает редактирование с курсорами на первой строке.
func NewEditor(values Profiles) *Editor {
	return &Editor{Values: values}
}

// Rows — параметры плюс строка OK
func (e *Editor) Rows() int { return int(statCount) + 1 }

func (e *Editor) Cursor(slot int) int { return e.cursor[slot] }

// OnOK — курсор игрока стоит на OK
func (e *Editor) OnOK(slot int) bool { return e.cursor[slot] == int(statCount) }

func (e *Editor) Locked(slot int) bool { return e.locked[slot] }

// Move сдвигает курсор по кругу
func (e *Editor) Move(slot, delta int) {
	if e.locked[slot] {
		return
	}
	n := e.Rows()
	e.cursor[slot] = ((e.cursor[slot]+delta)%n + n) % n
}

// Adjust меняет выбранный параметр на steps шагов.
func (e *Editor) Adjust(slot, steps int) {
	if e.locked[slot] || e.OnOK(slot) {
		return
	}
	e.Values[slot].Adjust(Stat(e.cursor[slot]), steps)
}

// Confirm на строке OK переключает блокировку игрока.
func (e *Editor) Confirm(slot int) {
	if !e.OnOK(slot) {
		return
	}
	e.locked[slot] = !e.locked[slot]
}

// Done — оба игрока подтвердили настройки
func (e *Editor) Done() bool { return e.locked[0] && e.locked[1] }
