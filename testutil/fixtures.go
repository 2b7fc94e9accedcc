// Package testutil contains csv fixtures shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"bikeshare/domain/entities/city"

	"github.com/stretchr/testify/require"
)

// ChicagoCSV has six trips between january and june.
// Most common: March, Friday (tied with Monday), 8h, start A, end B, trip "A | B" (2).
// Durations add up to 2100. Users: Subscriber 4, Customer 2. Gender: Male 3, Female 2.
// Birth years: 1980 to 2001, most common 1990. Row 3 has no gender nor birth year.
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1001,2017-01-02 08:00:00,2017-01-02 08:01:40,100,A,B,Subscriber,Male,1980.0
1002,2017-03-06 08:30:00,2017-03-06 08:33:20,200,A,B,Subscriber,Female,1990.0
1003,2017-03-07 17:15:00,2017-03-07 17:20:00,300,B,A,Customer,Male,1990.0
1004,2017-03-10 08:45:00,2017-03-10 08:51:40,400,C,A,Subscriber,,
1005,2017-06-23 15:09:32,2017-06-23 15:17:52,500,A,C,Customer,Female,2001.0
1006,2017-06-24 09:00:00,2017-06-24 09:10:00,600,C,B,Subscriber,Male,1985.0
`

// WashingtonCSV has no Gender nor Birth Year columns
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
0,2017-03-06 08:30:00,2017-03-06 08:40:00,600.5,X,Y,Registered
1,2017-04-03 10:00:00,2017-04-03 10:05:00,300.0,Y,X,Casual
2,2017-05-07 10:20:00,2017-05-07 10:30:00,599.5,X,Y,Registered
`

// WriteCityFile writes content as the csv file of c inside dir and returns its path
func WriteCityFile(t *testing.T, dir string, c city.City, content string) string {
	t.Helper()
	path := filepath.Join(dir, c.File)
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err, "failed to write %s", path)
	return path
}

// DataDir returns a temporary directory with the fixtures of Chicago and Washington
func DataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteCityFile(t, dir, city.Chicago, ChicagoCSV)
	WriteCityFile(t, dir, city.Washington, WashingtonCSV)
	return dir
}
