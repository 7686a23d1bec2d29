package score

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidRatios(t *testing.T) {
	tests := []struct {
		name        string
		tile, combo int
	}{
		{"zero tile ratio", 0, 1},
		{"zero combo ratio", 10, 0},
		{"negative tile ratio", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.tile, tt.combo); !errors.Is(err, ErrInvalidRatio) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidRatio", tt.tile, tt.combo, err)
			}
		})
	}
}

func TestAddScoreComboScaling(t *testing.T) {
	tr, err := New(10, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if delta := tr.AddScore(3, 1); delta != 30 {
		t.Errorf("first clear of 3 = %d, want 30", delta)
	}
	if delta := tr.AddScore(4, 2); delta != 80 {
		t.Errorf("chained clear of 4 at combo 2 = %d, want 80", delta)
	}
	if tr.Current() != 110 {
		t.Errorf("Current() = %d, want 110", tr.Current())
	}
}

func TestDeltaUsesComboRatio(t *testing.T) {
	tr, _ := New(5, 3)
	// (4*5) * (2*3)
	if got := tr.Delta(4, 2); got != 120 {
		t.Errorf("Delta(4, 2) = %d, want 120", got)
	}
	if tr.Current() != 0 {
		t.Error("Delta must not change the score")
	}
}

func TestFinalizeOverwritesHighScore(t *testing.T) {
	tr, _ := New(10, 1)

	tr.AddScore(5, 1) // 50
	tr.Finalize()
	if tr.High() != 50 {
		t.Fatalf("High() = %d, want 50", tr.High())
	}

	tr.ResetCurrentScore()
	tr.AddScore(2, 1) // 20
	tr.Finalize()
	if tr.High() != 20 {
		t.Errorf("High() = %d, want 20 (last result replaces the previous one)", tr.High())
	}
}

func TestResetCurrentScoreKeepsHigh(t *testing.T) {
	tr, _ := New(1, 1)
	tr.AddScore(7, 1)
	tr.Finalize()
	tr.ResetCurrentScore()

	if tr.Current() != 0 {
		t.Errorf("Current() = %d after reset, want 0", tr.Current())
	}
	if tr.High() != 7 {
		t.Errorf("High() = %d, want 7", tr.High())
	}
}
