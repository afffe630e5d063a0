package aggregate

import (
	"math"
	"sort"

	"github.com/scholarsportal/askdata/internal/types"
)

// Mean returns the arithmetic mean, undefined for an empty slice.
func Mean(values []float64) types.Metric {
	if len(values) == 0 {
		return types.Undefined()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return types.Defined(sum / float64(len(values)))
}

// Median returns the middle value, undefined for an empty slice.
func Median(values []float64) types.Metric {
	return Percentile(values, 50)
}

// Percentile returns the pth percentile using linear interpolation
// between closest ranks, undefined for an empty slice.
func Percentile(values []float64, p float64) types.Metric {
	if len(values) == 0 {
		return types.Undefined()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return types.Defined(sorted[0])
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return types.Defined(sorted[lower])
	}
	frac := rank - float64(lower)
	return types.Defined(sorted[lower] + frac*(sorted[upper]-sorted[lower]))
}

// SLTracker accumulates the share of picked-up chats answered within a
// wait-time threshold.
type SLTracker struct {
	ThresholdSecs   int
	WithinThreshold int
	TotalAnswered   int
}

// NewSLTracker creates a tracker with the given threshold in seconds.
func NewSLTracker(thresholdSecs int) *SLTracker {
	return &SLTracker{ThresholdSecs: thresholdSecs}
}

// Record registers an answered chat and its wait in seconds.
func (s *SLTracker) Record(waitSecs float64) {
	s.TotalAnswered++
	if waitSecs <= float64(s.ThresholdSecs) {
		s.WithinThreshold++
	}
}

// Share returns the percentage answered within the threshold, undefined
// when nothing was answered.
func (s *SLTracker) Share() types.Metric {
	if s.TotalAnswered == 0 {
		return types.Undefined()
	}
	return types.Defined(float64(s.WithinThreshold) / float64(s.TotalAnswered) * 100)
}
