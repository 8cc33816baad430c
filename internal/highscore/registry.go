package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Backend stores highscores in one format.
type Backend interface {
	// Load returns the stored records, best first. A missing store is
	// empty, not an error.
	Load() ([]Record, error)

	// Save persists a finished game.
	Save(r Record) error

	// Clear removes every stored record.
	Clear() error

	Close() error

	// Ranked reports whether the backend keeps a named table (true) or a
	// single best score (false).
	Ranked() bool
}

// BackendInfo describes a registered backend.
type BackendInfo struct {
	Kind        string
	Description string
}

// Factory opens a backend at path.
type Factory func(path string) (Backend, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory. Called from init() of each backend.
// Panics if kind is already registered.
func Register(kind, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("highscore: backend %q already registered", kind))
	}
	factories[kind] = f
	descriptions[kind] = description
}

// List returns the registered backends sorted by kind.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for kind := range factories {
		result = append(result, BackendInfo{Kind: kind, Description: descriptions[kind]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Exists reports whether a backend kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[kind]
	return ok
}

// Open expands a leading ~ in path, creates its parent directory and opens
// the backend registered as kind.
func Open(kind, path string) (Backend, error) {
	mu.RLock()
	f, ok := factories[kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("highscore: unknown backend %q", kind)
	}

	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}
	return f(path)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
