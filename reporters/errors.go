package reporters

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDataset        = errors.New("no trips match the selected filters")
	ErrNoValues            = errors.New("no data available for the selected trips")
	ErrInvalidReporterType = errors.New("invalid reporter type")
)

// EmptyDatasetError is returned when a statistic needs at least one value
// and the filtered table has none. The table may still have rows whose
// values are all missing.
// + Statistic: name of the statistic that could not be computed
type EmptyDatasetError struct {
	Statistic string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("cannot compute %s: %s", e.Statistic, ErrEmptyDataset)
}

func (e *EmptyDatasetError) Unwrap() error {
	return ErrEmptyDataset
}
