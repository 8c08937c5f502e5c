package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Paths — расположение файлов данных и сид поля астероидов.
type Paths struct {
	DataDir     string
	Leaderboard string
	Settings    string
	Seed        int64
}

// LoadPaths читает необязательный .env и переменные окружения ARCADIA_*.
// Отсутствие .env не считается ошибкой.
func LoadPaths(envFile string) Paths {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARNING: could not read %s: %v", envFile, err)
	}

	p := Paths{
		DataDir: getenv("ARCADIA_DATA_DIR", "data"),
	}
	p.Leaderboard = resolve(p.DataDir, getenv("ARCADIA_LEADERBOARD", "leaderboard.csv"))
	p.Settings = resolve(p.DataDir, getenv("ARCADIA_SETTINGS", "settings.csv"))

	if raw := os.Getenv("ARCADIA_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("WARNING: invalid ARCADIA_SEED %q, using 0", raw)
		} else {
			p.Seed = seed
		}
	}
	return p
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
