package prompt

import (
	"bufio"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Prompter asks questions on out and reads the answers from in, one per line
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask prints question and returns the next line of input without the line
// terminator. io.EOF is returned when there is no more input.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprintln(p.out, question); err != nil {
		return "", err
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			log.Errorf("[status: error][method: Ask] error reading answer: %s", err.Error())
			return "", err
		}
		return "", io.EOF
	}

	return p.scanner.Text(), nil
}

// Println prints a message for the user
func (p *Prompter) Println(message string) error {
	_, err := fmt.Fprintln(p.out, message)
	return err
}

// askUntilValid repeats question until normalize accepts the answer. There is
// no limit on the amount of retries.
func askUntilValid[T any](p *Prompter, question string, invalidMessage string, normalize func(string) (T, bool)) (T, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			var zero T
			return zero, err
		}

		value, ok := normalize(answer)
		if ok {
			return value, nil
		}

		log.Debugf("[method: askUntilValid] invalid answer %q", answer)
		if err := p.Println(invalidMessage); err != nil {
			var zero T
			return zero, err
		}
	}
}
