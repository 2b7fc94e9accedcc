package reporters

import (
	"fmt"
	"io"

	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
)

// StationStatsReporter prints the most popular stations and trip
type StationStatsReporter struct{}

func NewStationStatsReporter() *StationStatsReporter {
	return &StationStatsReporter{}
}

func (ssr *StationStatsReporter) GetName() string {
	return stationStatsReporter
}

func (ssr *StationStatsReporter) Report(w io.Writer, table *loader.Table) error {
	return writeReport(w, ssr.GetName(), "Calculating The Most Popular Stations and Trip...", table, []statistic{
		{
			label: "The most commonly used start station",
			compute: func(table *loader.Table) (string, error) {
				return MostCommonStartStation(table.Records)
			},
		},
		{
			label: "The most commonly used end station",
			compute: func(table *loader.Table) (string, error) {
				return MostCommonEndStation(table.Records)
			},
		},
		{
			label: "The most common trip",
			compute: func(table *loader.Table) (string, error) {
				commonTrip, count, err := MostCommonTrip(table.Records)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%s (%v trips)", commonTrip, count), nil
			},
		},
	})
}

// MostCommonStartStation returns the most frequent start station
func MostCommonStartStation(records []trip.TripData) (string, error) {
	station, _, ok := countStrings(records, func(td trip.TripData) string { return td.StartStation }).Mode()
	if !ok {
		return "", &EmptyDatasetError{Statistic: "most common start station"}
	}
	return station, nil
}

// MostCommonEndStation returns the most frequent end station
func MostCommonEndStation(records []trip.TripData) (string, error) {
	station, _, ok := countStrings(records, func(td trip.TripData) string { return td.EndStation }).Mode()
	if !ok {
		return "", &EmptyDatasetError{Statistic: "most common end station"}
	}
	return station, nil
}

// MostCommonTrip returns the most frequent "<start station> | <end station>"
// and the amount of times it appears. A->B and B->A are different trips.
func MostCommonTrip(records []trip.TripData) (string, int, error) {
	trips := countStrings(records, func(td trip.TripData) string {
		if td.StartStation == "" || td.EndStation == "" {
			return ""
		}
		return td.Trip()
	})

	commonTrip, count, ok := trips.Mode()
	if !ok {
		return "", 0, &EmptyDatasetError{Statistic: "most common trip"}
	}
	return commonTrip, count, nil
}

// countStrings counts the values returned by field. Empty values are missing
// data and are not counted.
func countStrings(records []trip.TripData, field func(trip.TripData) string) *valuecounter.ValueCounter[string] {
	counter := valuecounter.NewValueCounter[string]()
	for _, record := range records {
		value := field(record)
		if value == "" {
			continue
		}
		counter.UpdateCounter(value)
	}
	return counter
}
