package loader

import (
	"strconv"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

const (
	MonthColumn     = "Month"
	DayOfWeekColumn = "Day of Week"
)

// Table contains the trips of a city in file order
// + City: city whose file was loaded
// + Columns: header of the file followed by the derived columns
// + Records: one TripData per row of the file that passed the filters
type Table struct {
	City    city.City
	Columns []string
	Records []trip.TripData
}

// Len returns the amount of records of the table
func (t *Table) Len() int {
	return len(t.Records)
}

// Row returns the raw values of the i-th record followed by the derived columns.
// The derived columns are empty if the record has no start time.
func (t *Table) Row(i int) []string {
	record := t.Records[i]
	row := make([]string, 0, len(record.Fields)+2)
	row = append(row, record.Fields...)
	if !record.HasStartTime() {
		return append(row, "", "")
	}
	return append(row, strconv.Itoa(record.Month), record.DayOfWeek)
}

// FilterByMonth returns a new table with the records whose derived month
// matches month. If month is filter.All the same table is returned.
func FilterByMonth(table *Table, month string) *Table {
	if month == filter.All {
		return table
	}

	monthNumber, ok := filter.MonthNumber(month)
	if !ok {
		return table.withRecords(nil)
	}

	return table.where(func(td trip.TripData) bool {
		return td.Month == monthNumber
	})
}

// FilterByDay returns a new table with the records whose derived day of week
// matches day. If day is filter.All the same table is returned.
func FilterByDay(table *Table, day string) *Table {
	if day == filter.All {
		return table
	}

	dayName := filter.Title(day)
	return table.where(func(td trip.TripData) bool {
		return td.DayOfWeek == dayName
	})
}

func (t *Table) where(keep func(trip.TripData) bool) *Table {
	var records []trip.TripData
	for _, record := range t.Records {
		if keep(record) {
			records = append(records, record)
		}
	}
	return t.withRecords(records)
}

func (t *Table) withRecords(records []trip.TripData) *Table {
	return &Table{
		City:    t.City,
		Columns: t.Columns,
		Records: records,
	}
}
