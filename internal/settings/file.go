package settings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load читает настройки. Отсутствующий файл — значения по умолчанию без ошибки,
// битые ячейки заменяются значениями по умолчанию, выход за диапазон обрезается.
func Load(path string) (Profiles, error) {
	set := DefaultProfiles()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return set, nil
	}
	if err != nil {
		return set, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return set, fmt.Errorf("read settings %s: %w", path, err)
	}
	if len(rows) == 0 {
		return set, nil
	}

	playerCol := -1
	cols := map[Stat]int{}
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "player" {
			playerCol = i
			continue
		}
		if s, err := ParseStat(name); err == nil {
			cols[s] = i
		}
	}
	if playerCol < 0 {
		return set, fmt.Errorf("settings %s: no player column", path)
	}

	for _, row := range rows[1:] {
		if playerCol >= len(row) {
			continue
		}
		slot := -1
		for i := range set {
			if strings.TrimSpace(row[playerCol]) == PlayerLabel(i) {
				slot = i
			}
		}
		if slot < 0 {
			continue
		}
		for _, s := range Stats() {
			col, ok := cols[s]
			if !ok || col >= len(row) {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				log.Printf("WARNING: settings: %s %s=%q, using default", PlayerLabel(slot), s, row[col])
				continue
			}
			set[slot].Set(s, v)
		}
	}
	return set, nil
}

// Save пишет оба профиля в CSV: колонка player и по колонке на параметр.
func Save(path string, set Profiles) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	w := csv.NewWriter(f)
	header := []string{"player"}
	for _, s := range Stats() {
		header = append(header, s.String())
	}
	w.Write(header)
	for i, p := range set {
		row := []string{PlayerLabel(i)}
		for _, s := range Stats() {
			row = append(row, strconv.FormatFloat(p[s], 'f', -1, 64))
		}
		w.Write(row)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	return f.Close()
}
