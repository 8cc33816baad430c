package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

func init() {
	Register("text", "single best score in a plain text file", func(path string) (Backend, error) {
		return NewTextFile(path), nil
	})
}

// TextFile is the scalar backend: the file holds one decimal integer.
type TextFile struct {
	path string
}

// NewTextFile returns a scalar backend for the file at path.
func NewTextFile(path string) *TextFile {
	return &TextFile{path: path}
}

// Load returns at most one unnamed record.
func (t *TextFile) Load() ([]Record, error) {
	best, err := t.best()
	if err != nil {
		return nil, err
	}
	if best == 0 {
		return nil, nil
	}
	return []Record{{Score: best}}, nil
}

func (t *TextFile) best() (int, error) {
	data, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", t.path, err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCorrupt, t.path, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s: negative score %d", ErrCorrupt, t.path, n)
	}
	return n, nil
}

// Save writes r.Score only when it beats the stored value. The name is
// dropped.
func (t *TextFile) Save(r Record) error {
	best, err := t.best()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	if err == nil && r.Score <= best {
		return nil
	}
	if err := os.WriteFile(t.path, []byte(strconv.Itoa(r.Score)), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", t.path, err)
	}
	return nil
}

// Clear deletes the file.
func (t *TextFile) Clear() error {
	if err := os.Remove(t.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("highscore: cannot remove %s: %w", t.path, err)
	}
	return nil
}

func (t *TextFile) Close() error { return nil }

func (t *TextFile) Ranked() bool { return false }
