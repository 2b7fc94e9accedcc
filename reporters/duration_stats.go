package reporters

import (
	"io"
	"strconv"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
)

// DurationStatsReporter prints the total and average trip duration
type DurationStatsReporter struct{}

func NewDurationStatsReporter() *DurationStatsReporter {
	return &DurationStatsReporter{}
}

func (dsr *DurationStatsReporter) GetName() string {
	return durationStatsReporter
}

func (dsr *DurationStatsReporter) Report(w io.Writer, table *loader.Table) error {
	return writeReport(w, dsr.GetName(), "Calculating Trip Duration...", table, []statistic{
		{
			label: "Total travel time (seconds)",
			compute: func(table *loader.Table) (string, error) {
				return formatSeconds(TotalDuration(table.Records)), nil
			},
		},
		{
			label: "Mean travel time (seconds)",
			compute: func(table *loader.Table) (string, error) {
				mean, err := MeanDuration(table.Records)
				if err != nil {
					return "", err
				}
				return formatSeconds(mean), nil
			},
		},
	})
}

// TotalDuration returns the sum of the durations. Missing durations are
// skipped. It is 0 for no records.
func TotalDuration(records []trip.TripData) float64 {
	return accumulateDurations(records).TotalDuration
}

// MeanDuration returns the arithmetic mean of the durations that are not missing
func MeanDuration(records []trip.TripData) (float64, error) {
	mean, ok := accumulateDurations(records).GetAverageDuration()
	if !ok {
		return 0, &EmptyDatasetError{Statistic: "mean travel time"}
	}
	return mean, nil
}

func accumulateDurations(records []trip.TripData) *durationaccumulator.DurationAccumulator {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, record := range records {
		if record.Duration == nil {
			continue
		}
		accumulator.UpdateAccumulator(*record.Duration)
	}
	return accumulator
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
