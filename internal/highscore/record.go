// Package highscore persists finished scores. Ranked backends keep a
// top-ten table of named records; the scalar backend keeps only the best
// score. Board wraps any backend with the game's fail-soft policy.
package highscore

import (
	"errors"
	"sort"
	"strings"
)

const (
	// MaxEntries is the size of a ranked table.
	MaxEntries = 10

	// MaxNameLen is the longest player name kept in a record.
	MaxNameLen = 8
)

// ErrCorrupt is returned by Load when the stored data cannot be parsed.
var ErrCorrupt = errors.New("highscore: corrupt data")

// Record is one finished game. The JSON field names are the on-disk format.
type Record struct {
	Name  string `json:"nome"`
	Score int    `json:"score"`
}

// NormalizeName uppercases name and keeps at most MaxNameLen ASCII
// letters and digits.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(name) {
		if b.Len() == MaxNameLen {
			break
		}
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Rank returns a copy of records sorted by score descending, equal scores
// keeping their input order, truncated to MaxEntries. Names are normalized;
// records with a negative score or no usable name are dropped.
func Rank(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		r.Name = NormalizeName(r.Name)
		if r.Score < 0 || r.Name == "" {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
