package city

import "strings"

// City identifies one of the supported bikeshare datasets
// + Code: single letter used to pick the city in the prompt
// + Name: human readable name
// + File: name of the csv file, relative to the data directory
// + HasDemographics: true if the dataset has Gender and Birth Year columns
type City struct {
	Code            string
	Name            string
	File            string
	HasDemographics bool
}

var (
	Chicago       = City{Code: "C", Name: "Chicago", File: "chicago.csv", HasDemographics: true}
	NewYorkCity   = City{Code: "N", Name: "New York", File: "new_york_city.csv", HasDemographics: true}
	Washington    = City{Code: "W", Name: "Washington", File: "washington.csv", HasDemographics: false}
	citiesByCode  = map[string]City{Chicago.Code: Chicago, NewYorkCity.Code: NewYorkCity, Washington.Code: Washington}
	orderedCities = []City{Chicago, NewYorkCity, Washington}
)

// FromCode returns the city that matches code. The lookup is case-insensitive
// and ignores surrounding whitespace.
func FromCode(code string) (City, bool) {
	c, ok := citiesByCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// All returns the supported cities in prompt order
func All() []City {
	cities := make([]City, len(orderedCities))
	copy(cities, orderedCities)
	return cities
}

func (c City) String() string {
	return c.Name
}
