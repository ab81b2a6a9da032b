package analysis

import (
	"math"
	"testing"
)

func TestNormalizeScalesMaxToOne(t *testing.T) {
	series := []float64{0.5, 2.0, 1.0}
	Normalize(series)

	want := []float64{0.25, 1.0, 0.5}
	for i := range want {
		if math.Abs(series[i]-want[i]) > 1e-12 {
			t.Fatalf("series[%d] = %v, want %v", i, series[i], want[i])
		}
	}
}

func TestNormalizeLeavesSilenceAlone(t *testing.T) {
	series := []float64{0, 0, 0}
	Normalize(series)
	for i, v := range series {
		if v != 0 {
			t.Fatalf("series[%d] = %v, want 0", i, v)
		}
	}

	tiny := []float64{1e-12, 1e-13}
	Normalize(tiny)
	if tiny[0] != 1e-12 {
		t.Fatalf("near-zero series was scaled: %v", tiny)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Fatalf("Normalize(nil) = %v", got)
	}
}
