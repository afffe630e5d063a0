package alerts

import (
	"fmt"

	"github.com/scholarsportal/askdata/internal/types"
)

// Thresholds for period-over-period movement, in percent.
const (
	volumeDropWarning  = -30.0
	volumeDropCritical = -50.0
	waitSpikeWarning   = 50.0
	waitSpikeCritical  = 100.0
)

// CheckTrendEntries evaluates alert rules for assembled trend entries,
// mutating each entry's Alerts field in place. Undefined changes raise
// no alert; absence of a baseline is not a movement.
func CheckTrendEntries(entries []types.SchoolTrend) {
	for i := range entries {
		entries[i].Alerts = nil
		agg := entries[i].Aggregate

		if agg.VolumeChange.Valid {
			switch {
			case agg.VolumeChange.Value <= volumeDropCritical:
				entries[i].Alerts = append(entries[i].Alerts, types.TrendAlert{
					Rule:     "volume_drop",
					Severity: types.SeverityCritical,
					Message:  fmt.Sprintf("chat volume down %.1f%%", -agg.VolumeChange.Value),
				})
			case agg.VolumeChange.Value <= volumeDropWarning:
				entries[i].Alerts = append(entries[i].Alerts, types.TrendAlert{
					Rule:     "volume_drop",
					Severity: types.SeverityWarning,
					Message:  fmt.Sprintf("chat volume down %.1f%%", -agg.VolumeChange.Value),
				})
			}
		}

		if agg.WaitChange.Valid {
			switch {
			case agg.WaitChange.Value >= waitSpikeCritical:
				entries[i].Alerts = append(entries[i].Alerts, types.TrendAlert{
					Rule:     "wait_spike",
					Severity: types.SeverityCritical,
					Message:  fmt.Sprintf("mean wait up %.1f%%", agg.WaitChange.Value),
				})
			case agg.WaitChange.Value >= waitSpikeWarning:
				entries[i].Alerts = append(entries[i].Alerts, types.TrendAlert{
					Rule:     "wait_spike",
					Severity: types.SeverityWarning,
					Message:  fmt.Sprintf("mean wait up %.1f%%", agg.WaitChange.Value),
				})
			}
		}
	}
}
