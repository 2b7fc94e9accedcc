package reporters

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTable(t *testing.T, selection filter.Selection) *loader.Table {
	t.Helper()
	explorerConfig, err := config.LoadConfig("")
	require.NoError(t, err)

	table, err := loader.NewLoader(testutil.DataDir(t), explorerConfig.Columns).LoadData(selection)
	require.NoError(t, err)
	return table
}

func newTrip(start string, end string) trip.TripData {
	tripData := trip.NewTripData(0, nil, time.Date(2017, time.March, 6, 8, 0, 0, 0, time.UTC))
	tripData.StartStation = start
	tripData.EndStation = end
	return tripData
}

func withDuration(tripData trip.TripData, seconds float64) trip.TripData {
	tripData.Duration = &seconds
	return tripData
}

func emptyTable(c city.City) *loader.Table {
	return &loader.Table{City: c}
}

func TestTimeStats(t *testing.T) {
	table := loadTable(t, filter.Selection{City: city.Chicago, Month: filter.All, Day: filter.All})

	month, err := MostCommonMonth(table.Records)
	require.NoError(t, err)
	assert.Equal(t, "March", month)

	// Monday and Friday have two trips each
	day, err := MostCommonDayOfWeek(table.Records)
	require.NoError(t, err)
	assert.Equal(t, "Friday", day)

	hour, err := MostCommonStartHour(table.Records)
	require.NoError(t, err)
	assert.Equal(t, 8, hour)
}

func TestTimeStats_Empty(t *testing.T) {
	_, err := MostCommonMonth(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = MostCommonDayOfWeek(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = MostCommonStartHour(nil)
	var emptyDatasetErr *EmptyDatasetError
	require.True(t, errors.As(err, &emptyDatasetErr))
	assert.Equal(t, "most common start hour", emptyDatasetErr.Statistic)
}

func TestStationStats(t *testing.T) {
	table := loadTable(t, filter.Selection{City: city.Chicago, Month: filter.All, Day: filter.All})

	start, err := MostCommonStartStation(table.Records)
	require.NoError(t, err)
	assert.Equal(t, "A", start)

	end, err := MostCommonEndStation(table.Records)
	require.NoError(t, err)
	assert.Equal(t, "B", end)
}

func TestMostCommonTrip_DirectionMatters(t *testing.T) {
	records := []trip.TripData{newTrip("A", "B"), newTrip("A", "B"), newTrip("B", "A")}

	commonTrip, count, err := MostCommonTrip(records)
	require.NoError(t, err)
	assert.Equal(t, "A | B", commonTrip)
	assert.Equal(t, 2, count)
}

func TestMostCommonTrip_SkipsMissingStations(t *testing.T) {
	records := []trip.TripData{newTrip("", "B"), newTrip("", "B"), newTrip("C", "D")}

	commonTrip, count, err := MostCommonTrip(records)
	require.NoError(t, err)
	assert.Equal(t, "C | D", commonTrip)
	assert.Equal(t, 1, count)

	_, _, err = MostCommonTrip(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDurationStats(t *testing.T) {
	table := loadTable(t, filter.Selection{City: city.Chicago, Month: filter.All, Day: filter.All})

	assert.InDelta(t, 2100.0, TotalDuration(table.Records), 1e-9)

	mean, err := MeanDuration(table.Records)
	require.NoError(t, err)
	assert.InDelta(t, 350.0, mean, 1e-9)
}

func TestDurationStats_Empty(t *testing.T) {
	assert.Zero(t, TotalDuration(nil))

	_, err := MeanDuration(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDurationStats_SkipsMissingDurations(t *testing.T) {
	records := []trip.TripData{withDuration(newTrip("A", "B"), 100), newTrip("A", "B"), withDuration(newTrip("B", "A"), 300)}

	assert.InDelta(t, 400.0, TotalDuration(records), 1e-9)
	mean, err := MeanDuration(records)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, mean, 1e-9)

	assert.Zero(t, TotalDuration([]trip.TripData{newTrip("A", "B")}))
	_, err = MeanDuration([]trip.TripData{newTrip("A", "B")})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestTimeStats_SkipsMissingStartTime(t *testing.T) {
	records := []trip.TripData{trip.NewTripData(0, nil, time.Time{}), trip.NewTripData(1, nil, time.Time{}), newTrip("A", "B")}

	month, err := MostCommonMonth(records)
	require.NoError(t, err)
	assert.Equal(t, "March", month)

	day, err := MostCommonDayOfWeek(records)
	require.NoError(t, err)
	assert.Equal(t, "Monday", day)

	hour, err := MostCommonStartHour(records)
	require.NoError(t, err)
	assert.Equal(t, 8, hour)

	_, err = MostCommonMonth(records[:2])
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestUserStats(t *testing.T) {
	table := loadTable(t, filter.Selection{City: city.Chicago, Month: filter.All, Day: filter.All})

	userTypes, err := UserTypeCounts(table.Records)
	require.NoError(t, err)
	expectedUserTypes := []valuecounter.ValueCount[string]{{Value: "Subscriber", Count: 4}, {Value: "Customer", Count: 2}}
	if diff := cmp.Diff(expectedUserTypes, userTypes); diff != "" {
		t.Errorf("UserTypeCounts() mismatch (-want +got):\n%s", diff)
	}

	genders, err := GenderCounts(table.Records)
	require.NoError(t, err)
	expectedGenders := []valuecounter.ValueCount[string]{{Value: "Male", Count: 3}, {Value: "Female", Count: 2}}
	if diff := cmp.Diff(expectedGenders, genders); diff != "" {
		t.Errorf("GenderCounts() mismatch (-want +got):\n%s", diff)
	}

	earliest, err := EarliestBirthYear(table.Records)
	require.NoError(t, err)
	assert.Equal(t, 1980, earliest)

	latest, err := LatestBirthYear(table.Records)
	require.NoError(t, err)
	assert.Equal(t, 2001, latest)

	mostCommon, err := MostCommonBirthYear(table.Records)
	require.NoError(t, err)
	assert.Equal(t, 1990, mostCommon)
}

func TestUserStats_Empty(t *testing.T) {
	_, err := UserTypeCounts(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = GenderCounts(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = EarliestBirthYear(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = LatestBirthYear(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = MostCommonBirthYear(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestUserStatsReporter_CityWithoutDemographics(t *testing.T) {
	table := loadTable(t, filter.Selection{City: city.Washington, Month: filter.All, Day: filter.All})
	out := &bytes.Buffer{}

	err := NewUserStatsReporter().Report(out, table)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "The count of each user type")
	assert.Contains(t, output, "Registered: 2")
	assert.Contains(t, output, "Casual: 1")
	assert.NotContains(t, output, "gender")
	assert.NotContains(t, output, "year of birth")
	assert.NotContains(t, output, ErrEmptyDataset.Error())
}

func TestUserStatsReporter_CityWithDemographics(t *testing.T) {
	table := loadTable(t, filter.Selection{City: city.Chicago, Month: "june", Day: filter.All})
	out := &bytes.Buffer{}

	err := NewUserStatsReporter().Report(out, table)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "The count of each gender")
	assert.Contains(t, output, "The earliest year of birth: 1985")
	assert.Contains(t, output, "The most recent year of birth: 2001")
	assert.Contains(t, output, "The most common year of birth: 1985")
}

func TestReporters_Output(t *testing.T) {
	table := loadTable(t, filter.Selection{City: city.Chicago, Month: filter.All, Day: filter.All})
	out := &bytes.Buffer{}

	for _, reporter := range NewReporters() {
		require.NoError(t, reporter.Report(out, table), reporter.GetName())
	}

	output := out.String()
	assert.Contains(t, output, "The most common month: March")
	assert.Contains(t, output, "The most common day of week: Friday")
	assert.Contains(t, output, "The most common start hour: 8")
	assert.Contains(t, output, "The most commonly used start station: A")
	assert.Contains(t, output, "The most commonly used end station: B")
	assert.Contains(t, output, "The most common trip: A | B (2 trips)")
	assert.Contains(t, output, "Total travel time (seconds): 2100")
	assert.Contains(t, output, "Mean travel time (seconds): 350")
	assert.Contains(t, output, "Subscriber: 4")
	assert.Equal(t, 4, strings.Count(output, "This took"))
}

func TestReporters_EmptyTable(t *testing.T) {
	out := &bytes.Buffer{}

	for _, reporter := range NewReporters() {
		require.NoError(t, reporter.Report(out, emptyTable(city.Chicago)), reporter.GetName())
	}

	output := out.String()
	assert.Contains(t, output, "The most common month: "+ErrEmptyDataset.Error())
	assert.Contains(t, output, "The most common trip: "+ErrEmptyDataset.Error())
	assert.Contains(t, output, "Total travel time (seconds): 0")
	assert.Contains(t, output, "Mean travel time (seconds): "+ErrEmptyDataset.Error())
	assert.Contains(t, output, "The most common year of birth: "+ErrEmptyDataset.Error())
	assert.Equal(t, 4, strings.Count(output, "This took"))
}

func TestReporters_AllValuesMissing(t *testing.T) {
	table := &loader.Table{City: city.Chicago, Records: []trip.TripData{newTrip("A", "B"), newTrip("B", "C")}}
	out := &bytes.Buffer{}

	require.NoError(t, NewUserStatsReporter().Report(out, table))
	require.NoError(t, NewDurationStatsReporter().Report(out, table))

	output := out.String()
	assert.Contains(t, output, "The count of each user type: "+ErrNoValues.Error())
	assert.Contains(t, output, "The count of each gender: "+ErrNoValues.Error())
	assert.Contains(t, output, "The most common year of birth: "+ErrNoValues.Error())
	assert.Contains(t, output, "Mean travel time (seconds): "+ErrNoValues.Error())
	assert.NotContains(t, output, ErrEmptyDataset.Error())
}

func TestNewReporter(t *testing.T) {
	names := make([]string, 0, len(reporterTypes))
	for _, reporter := range NewReporters() {
		names = append(names, reporter.GetName())
	}
	assert.Equal(t, []string{"time-stats", "station-stats", "duration-stats", "user-stats"}, names)

	_, err := NewReporter("weather-stats")
	assert.ErrorIs(t, err, ErrInvalidReporterType)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestReport_WriteError(t *testing.T) {
	err := NewTimeStatsReporter().Report(failingWriter{}, emptyTable(city.Chicago))
	assert.EqualError(t, err, "closed")
}
