package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Progress is the saved practice state. It survives restarts the way a
// browser session would, so a player resumes at the level they left.
type Progress struct {
	Level     int       `json:"level"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) progressPath() string {
	return filepath.Join(s.baseDir, "progress.json")
}

// LoadProgress returns the saved practice level. A missing or corrupt
// file starts over at level one.
func (s *Store) LoadProgress() int {
	data, err := os.ReadFile(s.progressPath())
	if err != nil {
		return 1
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return 1
	}
	if p.Level < 1 {
		return 1
	}
	return p.Level
}

func (s *Store) SaveProgress(level int) error {
	if err := s.Init(); err != nil {
		return err
	}

	file, err := os.Create(s.progressPath())
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(Progress{Level: level, UpdatedAt: time.Now()})
}
