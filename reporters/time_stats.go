package reporters

import (
	"io"
	"strconv"
	"time"

	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
)

// TimeStatsReporter prints the most frequent times of travel
type TimeStatsReporter struct{}

func NewTimeStatsReporter() *TimeStatsReporter {
	return &TimeStatsReporter{}
}

func (tsr *TimeStatsReporter) GetName() string {
	return timeStatsReporter
}

func (tsr *TimeStatsReporter) Report(w io.Writer, table *loader.Table) error {
	return writeReport(w, tsr.GetName(), "Calculating The Most Frequent Times of Travel...", table, []statistic{
		{
			label: "The most common month",
			compute: func(table *loader.Table) (string, error) {
				return MostCommonMonth(table.Records)
			},
		},
		{
			label: "The most common day of week",
			compute: func(table *loader.Table) (string, error) {
				return MostCommonDayOfWeek(table.Records)
			},
		},
		{
			label: "The most common start hour",
			compute: func(table *loader.Table) (string, error) {
				hour, err := MostCommonStartHour(table.Records)
				if err != nil {
					return "", err
				}
				return strconv.Itoa(hour), nil
			},
		},
	})
}

// MostCommonMonth returns the name of the most frequent derived month, e.g. March
func MostCommonMonth(records []trip.TripData) (string, error) {
	months := valuecounter.NewValueCounter[int]()
	for _, record := range records {
		if !record.HasStartTime() {
			continue
		}
		months.UpdateCounter(record.Month)
	}

	month, _, ok := months.Mode()
	if !ok {
		return "", &EmptyDatasetError{Statistic: "most common month"}
	}
	return time.Month(month).String(), nil
}

// MostCommonDayOfWeek returns the most frequent derived weekday name
func MostCommonDayOfWeek(records []trip.TripData) (string, error) {
	days := valuecounter.NewValueCounter[string]()
	for _, record := range records {
		if !record.HasStartTime() {
			continue
		}
		days.UpdateCounter(record.DayOfWeek)
	}

	day, _, ok := days.Mode()
	if !ok {
		return "", &EmptyDatasetError{Statistic: "most common day of week"}
	}
	return day, nil
}

// MostCommonStartHour returns the most frequent hour (0-23) in which trips begin
func MostCommonStartHour(records []trip.TripData) (int, error) {
	hours := valuecounter.NewValueCounter[int]()
	for _, record := range records {
		if !record.HasStartTime() {
			continue
		}
		hours.UpdateCounter(record.StartHour())
	}

	hour, _, ok := hours.Mode()
	if !ok {
		return 0, &EmptyDatasetError{Statistic: "most common start hour"}
	}
	return hour, nil
}
