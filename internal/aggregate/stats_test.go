package aggregate

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean(nil); got.Valid {
		t.Error("mean of empty slice must be undefined")
	}
	if got := Mean([]float64{2, 4, 6}); got.Value != 4 {
		t.Errorf("mean = %v, want 4", got.Value)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd count", []float64{5, 1, 3}, 3},
		{"even count interpolates", []float64{1, 2, 3, 4}, 2.5},
		{"single value", []float64{7}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Median(tt.values)
			if !got.Valid || math.Abs(got.Value-tt.want) > 1e-9 {
				t.Errorf("median = %+v, want %v", got, tt.want)
			}
		})
	}

	if got := Median(nil); got.Valid {
		t.Error("median of empty slice must be undefined")
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	p90 := Percentile(values, 90)
	if !p90.Valid || math.Abs(p90.Value-91) > 1e-9 {
		t.Errorf("p90 = %+v, want 91", p90)
	}

	p0 := Percentile(values, 0)
	if p0.Value != 10 {
		t.Errorf("p0 = %v, want 10", p0.Value)
	}
	p100 := Percentile(values, 100)
	if p100.Value != 100 {
		t.Errorf("p100 = %v, want 100", p100.Value)
	}

	// input must stay untouched
	if values[0] != 10 || values[9] != 100 {
		t.Error("percentile must not reorder its input")
	}
}

func TestSLTracker(t *testing.T) {
	sl := NewSLTracker(60)
	if sl.Share().Valid {
		t.Error("share with no answered chats must be undefined")
	}

	sl.Record(30)
	sl.Record(60) // at the threshold counts as within
	sl.Record(90)

	share := sl.Share()
	if !share.Valid || math.Abs(share.Value-66.666666) > 0.001 {
		t.Errorf("share = %+v, want ~66.67", share)
	}
}
