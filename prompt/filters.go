package prompt

import (
	"fmt"
	"strings"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	greeting            = "Hello! Let's explore some US bikeshare data!"
	monthQuestion       = "Enter month to filter by month, (all, none or Enter to not filter by month):"
	dayQuestion         = "Enter day to filter by day, (all, none or Enter for all days):"
	invalidCityMessage  = "That's not a valid city name"
	invalidInputMessage = "That's not a valid input"
)

// CollectFilters asks for a city, a month and a day until each answer is
// valid and returns them normalized
func (p *Prompter) CollectFilters() (filter.Selection, error) {
	if err := p.Println(greeting); err != nil {
		return filter.Selection{}, err
	}

	selectedCity, err := askUntilValid(p, cityQuestion(), invalidCityMessage, filter.NormalizeCity)
	if err != nil {
		return filter.Selection{}, err
	}

	month, err := askUntilValid(p, monthQuestion, invalidInputMessage, filter.NormalizeMonth)
	if err != nil {
		return filter.Selection{}, err
	}

	day, err := askUntilValid(p, dayQuestion, invalidInputMessage, filter.NormalizeDay)
	if err != nil {
		return filter.Selection{}, err
	}

	if err := p.Println(utils.Separator); err != nil {
		return filter.Selection{}, err
	}

	return filter.Selection{City: selectedCity, Month: month, Day: day}, nil
}

// cityQuestion lists the code of every supported city, e.g. 'C' for Chicago
func cityQuestion() string {
	cities := city.All()
	options := make([]string, 0, len(cities))
	for _, c := range cities {
		options = append(options, fmt.Sprintf("'%s' for %s", c.Code, c.Name))
	}
	return "To view bikeshare data please enter a city:\n" + strings.Join(options, ", OR\n") + ":"
}
