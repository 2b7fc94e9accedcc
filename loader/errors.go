package loader

import (
	"errors"
	"fmt"
)

var (
	ErrDataFileNotFound     = errors.New("data file not found")
	ErrMissingColumn        = errors.New("missing required column")
	ErrMalformedRecord      = errors.New("malformed record")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDurationType  = errors.New("invalid duration type")
	ErrInvalidBirthYearType = errors.New("invalid birth year type")
)

// DataLoadError is returned when the data of a city cannot be loaded
// + City: code of the city whose data was requested
// + Path: path of the csv file
// + Err: underlying error
type DataLoadError struct {
	City string
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("error loading data of city %s from %s: %s", e.City, e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
