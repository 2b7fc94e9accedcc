package reporters

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
)

// UserStatsReporter prints statistics on bikeshare users. Gender and birth
// year statistics are only printed for cities that have those columns.
type UserStatsReporter struct{}

func NewUserStatsReporter() *UserStatsReporter {
	return &UserStatsReporter{}
}

func (usr *UserStatsReporter) GetName() string {
	return userStatsReporter
}

func (usr *UserStatsReporter) Report(w io.Writer, table *loader.Table) error {
	statistics := []statistic{
		{
			label: "The count of each user type",
			compute: func(table *loader.Table) (string, error) {
				counts, err := UserTypeCounts(table.Records)
				if err != nil {
					return "", err
				}
				return formatValueCounts(counts), nil
			},
		},
	}

	if table.City.HasDemographics {
		statistics = append(statistics,
			statistic{
				label: "The count of each gender",
				compute: func(table *loader.Table) (string, error) {
					counts, err := GenderCounts(table.Records)
					if err != nil {
						return "", err
					}
					return formatValueCounts(counts), nil
				},
			},
			statistic{
				label: "The earliest year of birth",
				compute: func(table *loader.Table) (string, error) {
					return formatYear(EarliestBirthYear(table.Records))
				},
			},
			statistic{
				label: "The most recent year of birth",
				compute: func(table *loader.Table) (string, error) {
					return formatYear(LatestBirthYear(table.Records))
				},
			},
			statistic{
				label: "The most common year of birth",
				compute: func(table *loader.Table) (string, error) {
					return formatYear(MostCommonBirthYear(table.Records))
				},
			},
		)
	}

	return writeReport(w, usr.GetName(), "Calculating User Stats...", table, statistics)
}

// UserTypeCounts returns the count of each user type, most frequent first
func UserTypeCounts(records []trip.TripData) ([]valuecounter.ValueCount[string], error) {
	counter := countStrings(records, func(td trip.TripData) string { return td.UserType })
	if counter.IsEmpty() {
		return nil, &EmptyDatasetError{Statistic: "user type counts"}
	}
	return counter.ValueCounts(), nil
}

// GenderCounts returns the count of each gender, most frequent first
func GenderCounts(records []trip.TripData) ([]valuecounter.ValueCount[string], error) {
	counter := countStrings(records, func(td trip.TripData) string { return td.Gender })
	if counter.IsEmpty() {
		return nil, &EmptyDatasetError{Statistic: "gender counts"}
	}
	return counter.ValueCounts(), nil
}

// EarliestBirthYear returns the minimum birth year
func EarliestBirthYear(records []trip.TripData) (int, error) {
	year, ok := countBirthYears(records).Min()
	if !ok {
		return 0, &EmptyDatasetError{Statistic: "earliest year of birth"}
	}
	return year, nil
}

// LatestBirthYear returns the maximum birth year
func LatestBirthYear(records []trip.TripData) (int, error) {
	year, ok := countBirthYears(records).Max()
	if !ok {
		return 0, &EmptyDatasetError{Statistic: "most recent year of birth"}
	}
	return year, nil
}

// MostCommonBirthYear returns the most frequent birth year, the smallest one on ties
func MostCommonBirthYear(records []trip.TripData) (int, error) {
	year, _, ok := countBirthYears(records).Mode()
	if !ok {
		return 0, &EmptyDatasetError{Statistic: "most common year of birth"}
	}
	return year, nil
}

func countBirthYears(records []trip.TripData) *valuecounter.ValueCounter[int] {
	years := valuecounter.NewValueCounter[int]()
	for _, record := range records {
		if record.BirthYear == nil {
			continue
		}
		years.UpdateCounter(*record.BirthYear)
	}
	return years
}

func formatYear(year int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(year), nil
}

func formatValueCounts(counts []valuecounter.ValueCount[string]) string {
	var sb strings.Builder
	for _, count := range counts {
		sb.WriteString(fmt.Sprintf("\n    %s: %v", count.Value, count.Count))
	}
	return sb.String()
}
