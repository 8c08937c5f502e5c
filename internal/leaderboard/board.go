// Package leaderboard — таблица рекордов: до 10 записей по убыванию очков.
package leaderboard

import (
	"errors"
	"sort"
	"strings"

	"arcadia/internal/config"
)

// ErrEmptyName — попытка сохранить рекорд без имени
var ErrEmptyName = errors.New("leaderboard: empty name")

// Entry — одна запись таблицы
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Board — упорядоченная таблица, не длиннее Capacity.
type Board struct {
	Capacity int
	entries  []Entry
}

// NewBoard собирает таблицу из произвольного списка: сортирует и обрезает.
func NewBoard(entries []Entry) *Board {
	b := &Board{Capacity: config.LeaderboardSize}
	for _, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			continue
		}
		b.entries = append(b.entries, e)
	}
	b.normalize()
	return b
}

// Add вставляет рекорд. Пустое имя — ничего не делаем.
// Возвращает false, если запись не попала в таблицу.
func (b *Board) Add(name string, score int) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrEmptyName
	}
	// новая запись встаёт после всех с тем же или большим счётом
	pos := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].Score < score })
	if pos >= b.Capacity {
		return false, nil
	}
	b.entries = append(b.entries, Entry{})
	copy(b.entries[pos+1:], b.entries[pos:])
	b.entries[pos] = Entry{Name: name, Score: score}
	if len(b.entries) > b.Capacity {
		b.entries = b.entries[:b.Capacity]
	}
	return true, nil
}

// Qualifies — попадёт ли такой счёт в таблицу
func (b *Board) Qualifies(score int) bool {
	if len(b.entries) < b.Capacity {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Entries возвращает копию записей
func (b *Board) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

func (b *Board) Len() int { return len(b.entries) }

// normalize: стабильная сортировка, при равных очках выше та запись, что добавлена раньше
func (b *Board) normalize() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > b.Capacity {
		b.entries = b.entries[:b.Capacity]
	}
}
