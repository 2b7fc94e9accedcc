package utils

import "strings"

// Separator is printed between the sections of the output
var Separator = strings.Repeat("-", 40)

// ContainsString returns true if targetString is one of sliceOfStrings,
// ignoring case and surrounding whitespace
func ContainsString(targetString string, sliceOfStrings []string) bool {
	targetString = strings.TrimSpace(targetString)
	for i := range sliceOfStrings {
		if strings.EqualFold(sliceOfStrings[i], targetString) {
			return true
		}
	}
	return false
}
