package types

import (
	"encoding/json"
	"math"
)

// Metric is a numeric value that may be undefined. A mean over zero
// eligible samples and a percent change against a zero reference are
// both undefined; the marker serializes as JSON null so consumers can
// tell it apart from 0.
type Metric struct {
	Value float64
	Valid bool
}

// Defined returns a valid Metric.
func Defined(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// Undefined returns the undefined marker.
func Undefined() Metric {
	return Metric{}
}

// PercentChange computes (current-reference)/reference*100. A zero
// reference yields the undefined marker, never an error and never Inf.
func PercentChange(reference, current float64) Metric {
	if reference == 0 {
		return Undefined()
	}
	return Defined((current - reference) / reference * 100)
}

// PercentChangeMetric is PercentChange over values that may themselves
// be undefined.
func PercentChangeMetric(reference, current Metric) Metric {
	if !reference.Valid || !current.Valid {
		return Undefined()
	}
	return PercentChange(reference.Value, current.Value)
}

// PercentShare returns part's percentage of total, undefined when the
// total is zero.
func PercentShare(part, total int) Metric {
	if total == 0 {
		return Undefined()
	}
	return Defined(float64(part) / float64(total) * 100)
}

// MarshalJSON emits the value, or null when undefined. Non-finite
// values also serialize as null since JSON cannot carry them.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid || math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON accepts a number or null.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Defined(v)
	return nil
}
