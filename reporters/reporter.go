package reporters

import (
	"errors"
	"fmt"
	"io"
	"time"

	"bikeshare/loader"
	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
)

const (
	timeStatsReporter     = "time-stats"
	stationStatsReporter  = "station-stats"
	durationStatsReporter = "duration-stats"
	userStatsReporter     = "user-stats"
)

// reporterTypes is the order in which the reports are printed
var reporterTypes = []string{timeStatsReporter, stationStatsReporter, durationStatsReporter, userStatsReporter}

type Reporter interface {
	GetName() string
	Report(w io.Writer, table *loader.Table) error
}

// NewReporter initialize a reporter of some type.
// Possible reporter types are: time-stats, station-stats, duration-stats, user-stats
func NewReporter(reporterType string) (Reporter, error) {
	switch reporterType {
	case timeStatsReporter:
		return NewTimeStatsReporter(), nil
	case stationStatsReporter:
		return NewStationStatsReporter(), nil
	case durationStatsReporter:
		return NewDurationStatsReporter(), nil
	case userStatsReporter:
		return NewUserStatsReporter(), nil
	}

	return nil, fmt.Errorf("[method: NewReporter][status: error] %w: %s", ErrInvalidReporterType, reporterType)
}

// NewReporters returns one reporter of each type
func NewReporters() []Reporter {
	reporters := make([]Reporter, 0, len(reporterTypes))
	for _, reporterType := range reporterTypes {
		reporter, _ := NewReporter(reporterType)
		reporters = append(reporters, reporter)
	}
	return reporters
}

// statistic is one line of a report. compute returns the text to print after label.
type statistic struct {
	label   string
	compute func(table *loader.Table) (string, error)
}

// writeReport prints title, every statistic and the elapsed time. A statistic
// that fails with EmptyDatasetError is replaced by a message and the
// remaining statistics are still printed.
func writeReport(w io.Writer, reporterName string, title string, table *loader.Table, statistics []statistic) error {
	startTime := time.Now()

	if _, err := fmt.Fprintf(w, "\n%s\n\n", title); err != nil {
		return err
	}

	for _, stat := range statistics {
		value, err := stat.compute(table)
		if err != nil {
			var emptyDatasetErr *EmptyDatasetError
			if !errors.As(err, &emptyDatasetErr) {
				return err
			}
			log.Warnf("[reporter: %s][city: %s][records: %v] %s", reporterName, table.City.Code, table.Len(), err.Error())
			_, err = fmt.Fprintf(w, "%s: %s\n", stat.label, emptyStatisticMessage(table))
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", stat.label, value)
		}

		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nThis took %v seconds.\n%s\n", time.Since(startTime).Seconds(), utils.Separator)
	return err
}

// emptyStatisticMessage tells apart a table without rows from a table whose
// values for a statistic are all missing
func emptyStatisticMessage(table *loader.Table) error {
	if table.Len() == 0 {
		return ErrEmptyDataset
	}
	return ErrNoValues
}
