package types

import (
	"encoding/json"
	"math"
	"testing"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name      string
		reference float64
		current   float64
		want      float64
		undefined bool
	}{
		{name: "growth", reference: 100, current: 150, want: 50},
		{name: "decline", reference: 200, current: 180, want: -10},
		{name: "no change", reference: 50, current: 50, want: 0},
		{name: "zero reference", reference: 0, current: 75, undefined: true},
		{name: "zero both", reference: 0, current: 0, undefined: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(tt.reference, tt.current)
			if tt.undefined {
				if got.Valid {
					t.Fatalf("expected undefined, got %v", got.Value)
				}
				return
			}
			if !got.Valid {
				t.Fatal("expected defined value, got undefined")
			}
			if math.Abs(got.Value-tt.want) > 1e-9 {
				t.Errorf("PercentChange(%v, %v) = %v, want %v", tt.reference, tt.current, got.Value, tt.want)
			}
		})
	}
}

func TestPercentChangeMetric(t *testing.T) {
	if got := PercentChangeMetric(Undefined(), Defined(10)); got.Valid {
		t.Error("undefined reference must yield undefined change")
	}
	if got := PercentChangeMetric(Defined(10), Undefined()); got.Valid {
		t.Error("undefined current must yield undefined change")
	}
	if got := PercentChangeMetric(Defined(0), Defined(10)); got.Valid {
		t.Error("zero reference must yield undefined change")
	}
	got := PercentChangeMetric(Defined(10), Defined(15))
	if !got.Valid || got.Value != 50 {
		t.Errorf("expected 50, got %+v", got)
	}
}

func TestPercentShare(t *testing.T) {
	if got := PercentShare(1, 0); got.Valid {
		t.Error("zero total must yield undefined share")
	}
	got := PercentShare(25, 100)
	if !got.Valid || got.Value != 25 {
		t.Errorf("expected 25, got %+v", got)
	}
}

func TestMetricJSON(t *testing.T) {
	tests := []struct {
		name string
		m    Metric
		want string
	}{
		{"defined", Defined(12.5), "12.5"},
		{"defined zero distinct from undefined", Defined(0), "0"},
		{"undefined", Undefined(), "null"},
		{"NaN", Defined(math.NaN()), "null"},
		{"positive infinity", Defined(math.Inf(1)), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.m)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestMetricUnmarshal(t *testing.T) {
	var m Metric
	if err := json.Unmarshal([]byte("null"), &m); err != nil {
		t.Fatal(err)
	}
	if m.Valid {
		t.Error("null must unmarshal as undefined")
	}

	if err := json.Unmarshal([]byte("3.5"), &m); err != nil {
		t.Fatal(err)
	}
	if !m.Valid || m.Value != 3.5 {
		t.Errorf("expected 3.5, got %+v", m)
	}
}
