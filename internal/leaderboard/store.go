package leaderboard

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//go:generate go tool mockgen -destination=mocks/store_mock.go -package=mocks arcadia/internal/leaderboard Store

// Store — постоянное хранилище таблицы
type Store interface {
	Load() ([]Entry, error)
	Save([]Entry) error
}

// OpenStore выбирает формат по расширению: .json — JSON, остальное — CSV.
func OpenStore(path string) Store {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return &JSONStore{Path: path}
	}
	return &CSVStore{Path: path}
}

// CSVStore хранит таблицу в CSV с заголовком name,score.
type CSVStore struct {
	Path string
}

// Load читает файл. Отсутствующий файл — пустая таблица, не ошибка.
// Строки с пустым именем или нечисловым счётом пропускаются.
func (s *CSVStore) Load() ([]Entry, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open leaderboard: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var entries []Entry
	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read leaderboard %s: %w", s.Path, err)
		}
		if header {
			header = false
			if len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
				continue
			}
		}
		if len(rec) < 2 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		score, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if name == "" || err != nil {
			log.Printf("WARNING: leaderboard: skip row %q", rec)
			continue
		}
		entries = append(entries, Entry{Name: name, Score: score})
	}
	return entries, nil
}

func (s *CSVStore) Save(entries []Entry) error {
	if err := ensureDir(s.Path); err != nil {
		return err
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create leaderboard: %w", err)
	}
	w := csv.NewWriter(f)
	w.Write([]string{"name", "score"})
	for _, e := range entries {
		w.Write([]string{e.Name, strconv.Itoa(e.Score)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return f.Close()
}

// JSONStore — тот же список в виде JSON-массива
type JSONStore struct {
	Path string
}

func (s *JSONStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse leaderboard %s: %w", s.Path, err)
	}
	return entries, nil
}

func (s *JSONStore) Save(entries []Entry) error {
	if err := ensureDir(s.Path); err != nil {
		return err
	}
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
