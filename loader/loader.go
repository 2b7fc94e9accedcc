package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"

	log "github.com/sirupsen/logrus"
)

const utf8BOM = "\ufeff"

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

// columnIndexes contains the position of each analyzed column in the file header.
// gender and birthYear are -1 if the city has no demographics.
type columnIndexes struct {
	startTime    int
	endTime      int
	startStation int
	endStation   int
	duration     int
	userType     int
	gender       int
	birthYear    int
}

type Loader struct {
	dataDir string
	columns config.TripColumns
}

func NewLoader(dataDir string, columns config.TripColumns) *Loader {
	return &Loader{
		dataDir: dataDir,
		columns: columns,
	}
}

// GetFilePath returns the path to the .csv file of the given city
func (l *Loader) GetFilePath(c city.City) string {
	return filepath.Join(l.dataDir, c.File)
}

// LoadData reads the trips of the selected city and keeps the ones that match
// the month and day of the selection. The file is read again on every call.
func (l *Loader) LoadData(selection filter.Selection) (*Table, error) {
	table, err := l.ReadCity(selection.City)
	if err != nil {
		return nil, err
	}

	if selection.HasMonthFilter() {
		table = FilterByMonth(table, selection.Month)
	}
	if selection.HasDayFilter() {
		table = FilterByDay(table, selection.Day)
	}

	log.Debugf("[city: %s][month: %s][day: %s] %v records after filtering", selection.City.Code, selection.Month, selection.Day, table.Len())
	return table, nil
}

// ReadCity reads every trip of the city file without filtering
func (l *Loader) ReadCity(c city.City) (*Table, error) {
	path := l.GetFilePath(c)
	dataFile, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrDataFileNotFound, err)
		}
		log.Errorf("[city: %s][status: error][method: ReadCity] error opening %s: %s", c.Code, path, err.Error())
		return nil, &DataLoadError{City: c.Code, Path: path, Err: err}
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(dataFile)

	table, err := l.readTable(c, dataFile)
	if err != nil {
		log.Errorf("[city: %s][status: error][method: ReadCity] error reading %s: %s", c.Code, path, err.Error())
		return nil, &DataLoadError{City: c.Code, Path: path, Err: err}
	}

	log.Debugf("[city: %s][status: OK] %v records read from %s", c.Code, table.Len(), path)
	return table, nil
}

func (l *Loader) readTable(c city.City, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	indexes, err := l.getColumnIndexes(c, header)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(header)+2)
	columns = append(columns, header...)
	columns = append(columns, MonthColumn, DayOfWeekColumn)

	var records []trip.TripData
	for rowIndex := 0; ; rowIndex++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		if len(fields) > len(header) {
			return nil, fmt.Errorf("row %v: expected %v fields, saw %v: %w", rowIndex, len(header), len(fields), ErrMalformedRecord)
		}
		// missing trailing fields are empty cells
		for len(fields) < len(header) {
			fields = append(fields, "")
		}

		tripData, err := getTripData(rowIndex, fields, indexes)
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", rowIndex, err)
		}
		records = append(records, tripData)
	}

	return &Table{
		City:    c,
		Columns: columns,
		Records: records,
	}, nil
}

func (l *Loader) getColumnIndexes(c city.City, header []string) (columnIndexes, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	var missing []string
	lookup := func(name string) int {
		position, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return position
	}

	indexes := columnIndexes{
		startTime:    lookup(l.columns.StartTime),
		endTime:      lookup(l.columns.EndTime),
		startStation: lookup(l.columns.StartStation),
		endStation:   lookup(l.columns.EndStation),
		duration:     lookup(l.columns.Duration),
		userType:     lookup(l.columns.UserType),
		gender:       -1,
		birthYear:    -1,
	}

	if c.HasDemographics {
		indexes.gender = lookup(l.columns.Gender)
		indexes.birthYear = lookup(l.columns.BirthYear)
	}

	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return indexes, nil
}

func getTripData(rowIndex int, fields []string, indexes columnIndexes) (trip.TripData, error) {
	startTimeStr := strings.TrimSpace(fields[indexes.startTime])
	startTime, err := parseStartTime(startTimeStr)
	if err != nil {
		log.Debugf("Invalid start time: %v", startTimeStr)
		return trip.TripData{}, fmt.Errorf("%s %q: %w", ErrInvalidDate, startTimeStr, ErrMalformedRecord)
	}

	durationStr := strings.TrimSpace(fields[indexes.duration])
	duration, err := parseDuration(durationStr)
	if err != nil {
		log.Debugf("Invalid duration type: %v", durationStr)
		return trip.TripData{}, fmt.Errorf("%s %q: %w", ErrInvalidDurationType, durationStr, ErrMalformedRecord)
	}

	tripData := trip.NewTripData(rowIndex, fields, startTime)
	tripData.EndTime = fields[indexes.endTime]
	tripData.StartStation = fields[indexes.startStation]
	tripData.EndStation = fields[indexes.endStation]
	tripData.Duration = duration
	tripData.UserType = strings.TrimSpace(fields[indexes.userType])

	if indexes.gender >= 0 {
		tripData.Gender = strings.TrimSpace(fields[indexes.gender])
	}

	if indexes.birthYear >= 0 {
		birthYear, err := parseBirthYear(fields[indexes.birthYear])
		if err != nil {
			log.Debugf("Invalid birth year: %v", fields[indexes.birthYear])
			return trip.TripData{}, fmt.Errorf("%s %q: %w", ErrInvalidBirthYearType, fields[indexes.birthYear], ErrMalformedRecord)
		}
		tripData.BirthYear = birthYear
	}

	return tripData, nil
}

// parseStartTime returns the zero time for missing values
func parseStartTime(value string) (time.Time, error) {
	if isMissing(value) {
		return time.Time{}, nil
	}

	var err error
	for _, layout := range startTimeLayouts {
		var startTime time.Time
		startTime, err = time.Parse(layout, value)
		if err == nil {
			return startTime, nil
		}
	}
	return time.Time{}, err
}

// parseDuration returns nil for missing values
func parseDuration(value string) (*float64, error) {
	if isMissing(value) {
		return nil, nil
	}

	duration, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &duration, nil
}

// parseBirthYear returns nil for missing values. Years may come as floats, e.g. 1989.0
func parseBirthYear(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if isMissing(value) {
		return nil, nil
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}

	birthYear := int(year)
	return &birthYear, nil
}

func isMissing(value string) bool {
	return value == "" || strings.EqualFold(value, "nan")
}
