package leaderboard

import (
	"fmt"
	"log"
)

// Recorder связывает таблицу с хранилищем. Ошибки хранилища не роняют игру:
// таблица продолжает работать в памяти, ошибка уходит в лог.
type Recorder struct {
	store Store
	board *Board
}

// NewRecorder сразу читает хранилище.
func NewRecorder(store Store) *Recorder {
	r := &Recorder{store: store}
	r.Reload()
	return r
}

// Reload перечитывает таблицу из хранилища
func (r *Recorder) Reload() {
	entries, err := r.store.Load()
	if err != nil {
		log.Printf("ERROR: leaderboard load: %v", err)
	}
	r.board = NewBoard(entries)
}

// Record добавляет рекорд и сохраняет таблицу.
func (r *Recorder) Record(name string, score int) (bool, error) {
	placed, err := r.board.Add(name, score)
	if err != nil {
		return false, err
	}
	if !placed {
		return false, nil
	}
	if err := r.store.Save(r.board.Entries()); err != nil {
		log.Printf("ERROR: leaderboard save: %v", err)
		return true, fmt.Errorf("save leaderboard: %w", err)
	}
	return true, nil
}

func (r *Recorder) Qualifies(score int) bool { return r.board.Qualifies(score) }

func (r *Recorder) Entries() []Entry { return r.board.Entries() }
