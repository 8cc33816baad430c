package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type failingBackend struct {
	saves int
}

func (f *failingBackend) Load() ([]Record, error) { return nil, ErrCorrupt }
func (f *failingBackend) Save(Record) error      { f.saves++; return errors.New("disk full") }
func (f *failingBackend) Clear() error           { return nil }
func (f *failingBackend) Close() error           { return nil }
func (f *failingBackend) Ranked() bool           { return true }

func TestBoardSubmitAndTop(t *testing.T) {
	b := NewBoard(NewJSONFile(filepath.Join(t.TempDir(), "hs.json")), nil)

	if _, ok := b.Best(); ok {
		t.Error("empty board should have no best")
	}

	b.Submit(Record{Name: "AAA", Score: 3})
	b.Submit(Record{Name: "BBB", Score: 8})
	b.Submit(Record{Name: "CCC", Score: 5})

	top := b.Top(2)
	if len(top) != 2 || top[0].Name != "BBB" || top[1].Name != "CCC" {
		t.Errorf("Top(2) = %v", top)
	}
	if all := b.Top(0); len(all) != 3 {
		t.Errorf("Top(0) = %v, want whole table", all)
	}
	if best, ok := b.Best(); !ok || best.Score != 8 {
		t.Errorf("Best() = %v, %v", best, ok)
	}
}

func TestBoardIgnoresZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.json")
	b := NewBoard(NewJSONFile(path), nil)

	if b.Submit(Record{Name: "ZERO", Score: 0}) {
		t.Error("zero score should not be saved")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be created for a zero score")
	}
}

func TestBoardFailSoft(t *testing.T) {
	fb := &failingBackend{}
	b := NewBoard(fb, nil)

	if top := b.Top(3); len(top) != 0 {
		t.Errorf("corrupt backend should read as empty, got %v", top)
	}
	if b.Submit(Record{Name: "X", Score: 4}) {
		t.Error("Submit should report the failed write")
	}
	if fb.saves != 1 {
		t.Errorf("saves = %d, want 1", fb.saves)
	}
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(NewTextFile(filepath.Join(t.TempDir(), "hs.txt")), nil)
	b.Submit(Record{Score: 9})
	if err := b.Reset(); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Best(); ok {
		t.Error("board should be empty after Reset")
	}
}

func TestBoardConcurrentSubmit(t *testing.T) {
	b := NewBoard(NewJSONFile(filepath.Join(t.TempDir(), "hs.json")), nil)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			b.Submit(Record{Name: "P", Score: score})
			b.Top(3)
		}(i)
	}
	wg.Wait()

	top := b.Top(0)
	if len(top) != MaxEntries || top[0].Score != 20 || top[9].Score != 11 {
		t.Errorf("unexpected table after concurrent submits: %v", top)
	}
}
