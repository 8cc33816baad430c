package highscore

import "testing"

func TestRank(t *testing.T) {
	in := []Record{
		{"A", 3}, {"B", 9}, {"C", 3}, {"D", 1}, {"E", 12},
		{"F", 5}, {"G", 5}, {"H", 2}, {"I", 7}, {"J", 4}, {"K", 6}, {"L", 8},
	}

	got := Rank(in)
	if len(got) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(got), MaxEntries)
	}

	want := []Record{
		{"E", 12}, {"B", 9}, {"L", 8}, {"I", 7}, {"K", 6},
		{"F", 5}, {"G", 5}, {"J", 4}, {"A", 3}, {"C", 3},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if in[0] != (Record{"A", 3}) {
		t.Error("Rank modified its input")
	}
}

func TestRankNormalizesRecords(t *testing.T) {
	in := []Record{
		{"alice", 4},
		{"LONGERTHAN8", 9},
		{"x-y z", 2},
		{"NEG", -1},
		{"!!", 5},
	}

	got := Rank(in)
	want := []Record{{"LONGERTH", 9}, {"ALICE", 4}, {"XYZ", 2}}
	if len(got) != len(want) {
		t.Fatalf("Rank() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ab12cd", "AB12CD"},
		{"abcdefghij", "ABCDEFGH"},
		{"é-a b", "AB"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
