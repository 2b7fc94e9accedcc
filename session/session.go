package session

import (
	"errors"
	"io"
	"strings"

	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/prompt"
	"bikeshare/reporters"
	"bikeshare/viewer"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no."

// Session runs the explorer until the user does not want to restart
type Session struct {
	prompter  *prompt.Prompter
	out       io.Writer
	loader    *loader.Loader
	reporters []reporters.Reporter
	viewer    *viewer.RawDataViewer
}

func NewSession(explorerConfig *config.ExplorerConfig, in io.Reader, out io.Writer) *Session {
	prompter := prompt.NewPrompter(in, out)
	return &Session{
		prompter:  prompter,
		out:       out,
		loader:    loader.NewLoader(explorerConfig.DataDir, explorerConfig.Columns),
		reporters: reporters.NewReporters(),
		viewer:    viewer.NewRawDataViewer(prompter, out, explorerConfig.PageSize),
	}
}

// Run executes iterations until the user declines to restart or the input
// ends. A DataLoadError ends the session and is returned.
func (s *Session) Run() error {
	for {
		restart, err := s.runIteration()
		if errors.Is(err, io.EOF) {
			log.Debug("[method: Run] input closed, finishing session")
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// runIteration collects the filters, loads the data, prints every report,
// shows the raw data and asks whether to restart
func (s *Session) runIteration() (bool, error) {
	logger := log.WithField("session_id", uuid.NewString())

	selection, err := s.prompter.CollectFilters()
	if err != nil {
		return false, err
	}
	logger.Infof("[city: %s][month: %s][day: %s] filters selected", selection.City.Code, selection.Month, selection.Day)

	table, err := s.loader.LoadData(selection)
	if err != nil {
		logger.Errorf("[city: %s][status: error] %s", selection.City.Code, err.Error())
		return false, err
	}

	for _, reporter := range s.reporters {
		if err := reporter.Report(s.out, table); err != nil {
			logger.Errorf("[reporter: %s][status: error] %s", reporter.GetName(), err.Error())
		}
	}

	if err := s.viewer.View(table); err != nil {
		return false, err
	}

	answer, err := s.prompter.Ask(restartQuestion)
	if err != nil {
		return false, err
	}

	return strings.ToLower(answer) == "yes", nil
}
