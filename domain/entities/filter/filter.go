package filter

import (
	"strings"

	"bikeshare/domain/entities/city"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the sentinel value that disables a month or day filter
const All = "all"

// Months holds the months covered by the datasets. The files only have data
// from january to june, so later months are not accepted.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days holds the days of the week, starting on monday
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var (
	monthAliases = map[string]string{
		"january":  "january",
		"february": "february",
		"march":    "march",
		"april":    "april",
		"may":      "may",
		"june":     "june",
		"jan":      "january",
		"feb":      "february",
		"mar":      "march",
		"apr":      "april",
		"jun":      "june",
		"":         All,
		"none":     All,
		All:        All,
	}

	dayAliases = map[string]string{
		"monday":    "monday",
		"tuesday":   "tuesday",
		"wednesday": "wednesday",
		"thursday":  "thursday",
		"friday":    "friday",
		"saturday":  "saturday",
		"sunday":    "sunday",
		"mon":       "monday",
		"tue":       "tuesday",
		"wed":       "wednesday",
		"thu":       "thursday",
		"fri":       "friday",
		"sat":       "saturday",
		"sun":       "sunday",
		"":          All,
		"none":      All,
		All:         All,
	}

	titleCaser = cases.Title(language.English)
)

// Selection is the city/month/day triple chosen for one session iteration
// + City: city whose dataset is loaded
// + Month: lowercase month name or All
// + Day: lowercase day name or All
type Selection struct {
	City  city.City
	Month string
	Day   string
}

// NormalizeCity maps a city code to its City
func NormalizeCity(input string) (city.City, bool) {
	return city.FromCode(input)
}

// NormalizeMonth maps a full month name, an abbreviation, "", "none" or "all"
// to the canonical lowercase month name or All
func NormalizeMonth(input string) (string, bool) {
	month, ok := monthAliases[strings.ToLower(strings.TrimSpace(input))]
	return month, ok
}

// NormalizeDay maps a full day name, an abbreviation, "", "none" or "all"
// to the canonical lowercase day name or All
func NormalizeDay(input string) (string, bool) {
	day, ok := dayAliases[strings.ToLower(strings.TrimSpace(input))]
	return day, ok
}

// MonthNumber returns the 1-based number of a canonical month name
func MonthNumber(month string) (int, bool) {
	for i, m := range Months {
		if m == month {
			return i + 1, true
		}
	}
	return 0, false
}

// Title capitalizes a month or day name, e.g. monday -> Monday
func Title(name string) string {
	return titleCaser.String(name)
}

// HasMonthFilter returns true if the selection filters by month
func (s Selection) HasMonthFilter() bool {
	return s.Month != All
}

// HasDayFilter returns true if the selection filters by day of week
func (s Selection) HasDayFilter() bool {
	return s.Day != All
}
