package menu

import "strings"

const alphabet = 26

// NameEntry — ввод имени по буквам: вверх и вниз листают A–Z, вправо
// переходит к следующей ячейке, только если текущая заполнена.
type NameEntry struct {
	slots  []byte
	cursor int
}

// NewNameEntry создаёт пустое поле из n ячеек
func NewNameEntry(n int) *NameEntry {
	return &NameEntry{slots: make([]byte, n)}
}

func (n *NameEntry) Cursor() int { return n.cursor }

func (n *NameEntry) Len() int { return len(n.slots) }

// Slot — буква в ячейке или 0, если ячейка пуста
func (n *NameEntry) Slot(i int) byte { return n.slots[i] }

// Cycle листает букву в текущей ячейке. Пустая ячейка всегда становится 'A'.
func (n *NameEntry) Cycle(delta int) {
	c := n.slots[n.cursor]
	if c == 0 {
		n.slots[n.cursor] = 'A'
		return
	}
	idx := (int(c-'A') + delta) % alphabet
	if idx < 0 {
		idx += alphabet
	}
	n.slots[n.cursor] = byte('A' + idx)
}

// Next переходит к следующей ячейке
func (n *NameEntry) Next() {
	if n.slots[n.cursor] != 0 && n.cursor < len(n.slots)-1 {
		n.cursor++
	}
}

// Prev возвращается к предыдущей ячейке
func (n *NameEntry) Prev() {
	if n.cursor > 0 {
		n.cursor--
	}
}

// Name — имя, набранное до курсора включительно. Пустая ячейка под
// курсором в имя не входит.
func (n *NameEntry) Name() string {
	end := n.cursor + 1
	if n.slots[n.cursor] == 0 {
		end = n.cursor
	}
	var b strings.Builder
	for _, c := range n.slots[:end] {
		if c != 0 {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Reset очищает все ячейки
func (n *NameEntry) Reset() {
	for i := range n.slots {
		n.slots[i] = 0
	}
	n.cursor = 0
}
