package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

func init() {
	Register("json", "ranked top-10 table in a JSON file", func(path string) (Backend, error) {
		return NewJSONFile(path), nil
	})
}

// JSONFile is a ranked backend storing an indented JSON array.
type JSONFile struct {
	path string
}

// NewJSONFile returns a backend for the file at path. The file is created on
// the first save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load reads the table, re-ranking and truncating whatever is on disk.
func (j *JSONFile) Load() ([]Record, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", j.path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, j.path, err)
	}
	return Rank(records), nil
}

// Save inserts r into the table. A corrupt file is replaced.
func (j *JSONFile) Save(r Record) error {
	records, err := j.Load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	return j.write(Rank(append(records, r)))
}

func (j *JSONFile) write(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("highscore: cannot encode table: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(j.path), ".highscore-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), j.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", j.path, err)
	}
	return nil
}

// Clear deletes the file.
func (j *JSONFile) Clear() error {
	if err := os.Remove(j.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("highscore: cannot remove %s: %w", j.path, err)
	}
	return nil
}

func (j *JSONFile) Close() error { return nil }

func (j *JSONFile) Ranked() bool { return true }
