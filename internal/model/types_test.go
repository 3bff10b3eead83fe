package model

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/google/uuid"
)

// TestModelTypes validates that model types can be instantiated correctly.
func TestModelTypes(t *testing.T) {
	t.Run("RawRecord", func(t *testing.T) {
		r := RawRecord{
			Series: []string{"1", "2", "3"},
			Index:  "7",
		}

		if len(r.Series) != 3 {
			t.Errorf("len(Series) = %d, want 3", len(r.Series))
		}
		if r.Index != "7" {
			t.Errorf("Index = %q, want %q", r.Index, "7")
		}
	})

	t.Run("CleanRecord", func(t *testing.T) {
		c := CleanRecord{
			Series: []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
			Index:  big.NewInt(7),
		}

		if c.Series[2].Int64() != 3 {
			t.Errorf("Series[2] = %s, want 3", c.Series[2])
		}
		if c.Index.Int64() != 7 {
			t.Errorf("Index = %s, want 7", c.Index)
		}
	})

	t.Run("Result", func(t *testing.T) {
		runID := uuid.New()
		r := Result{
			RunID:       runID,
			Position:    4,
			Index:       big.NewInt(1),
			Count:       5,
			Total:       big.NewInt(15),
			ProcessedAt: 1705321845000000,
		}

		if r.RunID != runID {
			t.Errorf("RunID = %v, want %v", r.RunID, runID)
		}
		if r.Total.Int64() != 15 {
			t.Errorf("Total = %s, want 15", r.Total)
		}
	})
}

func TestRecordError(t *testing.T) {
	base := errors.New("bad value")
	err := RecordError{Position: 3, Err: base}

	if got, want := err.Error(), "record 3: bad value"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, base) {
		t.Error("errors.Is(err, base) = false, want true")
	}
}

func TestBatchTotal(t *testing.T) {
	tests := []struct {
		name   string
		totals []*big.Int
		want   string
	}{
		{"empty", nil, "0"},
		{"single", []*big.Int{big.NewInt(15)}, "15"},
		{"mixed signs", []*big.Int{big.NewInt(10), big.NewInt(-4), big.NewInt(0)}, "6"},
		{"nil total skipped", []*big.Int{big.NewInt(2), nil}, "2"},
		{"past int64", []*big.Int{big.NewInt(math.MaxInt64), big.NewInt(math.MaxInt64)}, "18446744073709551614"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Batch{}
			for _, total := range tt.totals {
				b.Results = append(b.Results, Result{Total: total})
			}
			if got := b.Total().String(); got != tt.want {
				t.Errorf("Total() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestZeroValues tests that zero values are handled correctly.
func TestZeroValues(t *testing.T) {
	var b Batch
	if b.RunID != uuid.Nil {
		t.Errorf("zero Batch.RunID = %v, want nil UUID", b.RunID)
	}
	if b.Total().Sign() != 0 {
		t.Errorf("zero Batch.Total() = %s, want 0", b.Total())
	}
}
