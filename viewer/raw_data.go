package viewer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare/loader"
	"bikeshare/prompt"
	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
)

const (
	rawDataQuestion = "\nWould you like to see raw data sample? Enter yes or no:"
	noMoreRawData   = "No more raw data to display."
)

var affirmativeAnswers = []string{"yes", "y"}

// RawDataViewer prints the rows of a table by pages while the user asks for more
type RawDataViewer struct {
	prompter *prompt.Prompter
	out      io.Writer
	pageSize int
}

func NewRawDataViewer(prompter *prompt.Prompter, out io.Writer, pageSize int) *RawDataViewer {
	return &RawDataViewer{
		prompter: prompter,
		out:      out,
		pageSize: pageSize,
	}
}

// View asks whether to print the next page of the table until the answer is
// not yes or y. The first page starts at row 0.
func (v *RawDataViewer) View(table *loader.Table) error {
	cursor := 0
	for {
		answer, err := v.prompter.Ask(rawDataQuestion)
		if err != nil {
			return err
		}

		if !utils.ContainsString(answer, affirmativeAnswers) {
			return nil
		}

		start, end := Page(table.Len(), cursor, v.pageSize)
		log.Debugf("[city: %s] printing raw data rows [%v, %v)", table.City.Code, start, end)
		if err := v.printRows(table, start, end); err != nil {
			return err
		}
		cursor += v.pageSize
	}
}

// Page returns the bounds [start, end) of the page that begins at cursor.
// The page is shorter than size, or empty, when fewer rows remain.
func Page(rowCount int, cursor int, size int) (int, int) {
	start := min(cursor, rowCount)
	end := min(cursor+size, rowCount)
	return start, end
}

func (v *RawDataViewer) printRows(table *loader.Table, start int, end int) error {
	if start == end {
		_, err := fmt.Fprintln(v.out, noMoreRawData)
		return err
	}

	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\t%s\n", strings.Join(table.Columns, "\t"))
	for i := start; i < end; i++ {
		fmt.Fprintf(w, "%s\t%s\n", strconv.Itoa(table.Records[i].Index), strings.Join(table.Row(i), "\t"))
	}
	return w.Flush()
}
