package highscore

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Board is the game's view of a backend. It never fails: unreadable data is
// logged and treated as an empty table, failed writes are logged and
// dropped. Safe for concurrent use by several sessions.
type Board struct {
	mu      sync.Mutex
	backend Backend
	logger  *log.Logger
	cache   []Record
	loaded  bool
}

// NewBoard wraps backend. A nil logger discards output.
func NewBoard(backend Backend, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{backend: backend, logger: logger}
}

// Ranked reports whether records carry names and form a table.
func (b *Board) Ranked() bool {
	return b.backend.Ranked()
}

// Top returns up to n best records. n <= 0 returns the whole table.
func (b *Board) Top(n int) []Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ensureLoaded()
	if n <= 0 || n > len(b.cache) {
		n = len(b.cache)
	}
	out := make([]Record, n)
	copy(out, b.cache[:n])
	return out
}

// Best returns the highest record, or false when nobody has scored yet.
func (b *Board) Best() (Record, bool) {
	top := b.Top(1)
	if len(top) == 0 {
		return Record{}, false
	}
	return top[0], true
}

// Submit records a finished game. Scores of zero or less are not kept.
// Returns whether the write succeeded.
func (b *Board) Submit(r Record) bool {
	if r.Score <= 0 {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.backend.Save(r); err != nil {
		b.logger.Error("could not save highscore", "name", r.Name, "score", r.Score, "error", err)
		return false
	}
	b.logger.Debug("highscore saved", "name", r.Name, "score", r.Score)
	b.loaded = false
	return true
}

// Reset clears the backend. Unlike the other methods it reports failure,
// since it is only called from the command line.
func (b *Board) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache = nil
	b.loaded = false
	return b.backend.Clear()
}

// Close releases the backend.
func (b *Board) Close() error {
	return b.backend.Close()
}

func (b *Board) ensureLoaded() {
	if b.loaded {
		return
	}
	records, err := b.backend.Load()
	switch {
	case errors.Is(err, ErrCorrupt):
		b.logger.Warn("highscore data is corrupt, starting empty", "error", err)
		records = nil
	case err != nil:
		b.logger.Warn("could not load highscores", "error", err)
		records = nil
	}
	b.cache = records
	b.loaded = true
}
