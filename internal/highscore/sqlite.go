package highscore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

func init() {
	Register("sqlite", "ranked top-10 table in a SQLite database", func(path string) (Backend, error) {
		return OpenSQLite(path)
	})
}

// SQLite is a ranked backend on the pure-Go modernc.org/sqlite driver.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and runs migrations.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("highscore: cannot connect to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("highscore: migration failed: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_highscores_top ON highscores(score DESC, id ASC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the top MaxEntries rows.
func (s *SQLite) Load() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT name, score
		 FROM highscores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		MaxEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Name, &r.Score); err != nil {
			return nil, fmt.Errorf("%w: cannot scan row: %v", ErrCorrupt, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("highscore: row iteration error: %w", err)
	}
	return Rank(records), nil
}

// Save inserts r and prunes everything below the top MaxEntries.
func (s *SQLite) Save(r Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("highscore: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO highscores (name, score) VALUES (?, ?)", r.Name, r.Score); err != nil {
		return fmt.Errorf("highscore: cannot save score: %w", err)
	}
	_, err = tx.Exec(
		`DELETE FROM highscores WHERE id NOT IN (
			SELECT id FROM highscores ORDER BY score DESC, id ASC LIMIT ?
		)`,
		MaxEntries,
	)
	if err != nil {
		return fmt.Errorf("highscore: cannot prune scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("highscore: cannot commit: %w", err)
	}
	return nil
}

// Count returns the number of stored rows.
func (s *SQLite) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM highscores").Scan(&n); err != nil {
		return 0, fmt.Errorf("highscore: cannot count scores: %w", err)
	}
	return n, nil
}

// Clear deletes all rows.
func (s *SQLite) Clear() error {
	if _, err := s.db.Exec("DELETE FROM highscores"); err != nil {
		return fmt.Errorf("highscore: cannot clear scores: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLite) Ranked() bool { return true }
