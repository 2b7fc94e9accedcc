package trip

import (
	"time"
)

// TripData struct that contains the trip data of one csv row
// + Index: position of the row in the source file, starting at 0
// + Fields: raw values of the row, in the same order as the file header
// + StartTime: date and time in which the trip begins, zero if missing
// + EndTime: raw value of the End Time column
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds, nil if missing
// + UserType: type of user, empty if missing
// + Gender: gender of the user, empty if missing or not available for the city
// + BirthYear: birth year of the user, nil if missing or not available for the city
// + Month: month number of StartTime, derived on load. 0 if StartTime is missing
// + DayOfWeek: weekday name of StartTime, e.g. Monday, derived on load. Empty if StartTime is missing
type TripData struct {
	Index        int
	Fields       []string
	StartTime    time.Time
	EndTime      string
	StartStation string
	EndStation   string
	Duration     *float64
	UserType     string
	Gender       string
	BirthYear    *int
	Month        int
	DayOfWeek    string
}

// NewTripData returns a TripData with the derived fields already computed
func NewTripData(index int, fields []string, startTime time.Time) TripData {
	tripData := TripData{
		Index:     index,
		Fields:    fields,
		StartTime: startTime,
	}
	if tripData.HasStartTime() {
		tripData.Month = int(startTime.Month())
		tripData.DayOfWeek = startTime.Weekday().String()
	}
	return tripData
}

// HasStartTime returns false if the Start Time cell of the row was empty
func (td TripData) HasStartTime() bool {
	return !td.StartTime.IsZero()
}

// StartHour returns the hour of the day in which the trip begins (0-23)
func (td TripData) StartHour() int {
	return td.StartTime.Hour()
}

// Trip returns the trip as "<start station> | <end station>"
func (td TripData) Trip() string {
	return td.StartStation + " | " + td.EndStation
}
