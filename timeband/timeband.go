package timeband

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnrecognizedTimeFormat is returned when a showtime string matches
// neither the "2:30 PM" nor the compact "2pm" form.
var ErrUnrecognizedTimeFormat = errors.New("unrecognized time format")

type Band int

const (
	All Band = iota
	EarlyMorning
	Noon
	Matinee
	FirstShow
	SecondShow
)

// Inclusive minute-of-day ranges for each band.
var bandRanges = map[Band][2]int{
	EarlyMorning: {0, 7 * 60},
	Noon:         {10*60 + 30, 11*60 + 59},
	Matinee:      {12 * 60, 15*60 + 30},
	FirstShow:    {16 * 60, 19*60 + 59},
	SecondShow:   {20 * 60, 23*60 + 59},
}

var bandNames = map[Band]string{
	All:          "all",
	EarlyMorning: "early-morning",
	Noon:         "noon",
	Matinee:      "matinee",
	FirstShow:    "first-show",
	SecondShow:   "second-show",
}

func (b Band) String() string {
	return bandNames[b]
}

// FromName resolves a band by its flag name; unknown names fall back to All.
func FromName(name string) (Band, error) {
	for band, n := range bandNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return band, nil
		}
	}
	return All, fmt.Errorf("unknown time band %q", name)
}

// Contains reports whether a minute-of-day falls inside the band.
func (b Band) Contains(minutes int) bool {
	if b == All {
		return true
	}
	r, ok := bandRanges[b]
	if !ok {
		return false
	}
	return minutes >= r[0] && minutes <= r[1]
}

var timeRe = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::([0-5]\d))?\s*([ap])\.?m\.?\s*$`)

// ToMinutes parses a 12-hour showtime string, with or without a minute part
// and with or without a space before the AM/PM marker, into minutes since
// midnight. 12 AM maps to hour 0, 12 PM stays 12, other PM hours add 12.
func ToMinutes(showtime string) (int, error) {
	m := timeRe.FindStringSubmatch(showtime)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedTimeFormat, showtime)
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedTimeFormat, showtime)
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	pm := strings.EqualFold(m[3], "p")
	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}
	return hour*60 + minute, nil
}

// Classify maps a showtime string to its band. Times inside none of the
// named ranges classify as All.
func Classify(showtime string) (Band, error) {
	minutes, err := ToMinutes(showtime)
	if err != nil {
		return All, err
	}
	for _, band := range []Band{EarlyMorning, Noon, Matinee, FirstShow, SecondShow} {
		if band.Contains(minutes) {
			return band, nil
		}
	}
	return All, nil
}

// Matches reports whether a showtime falls inside the requested band. An
// unparseable showtime is excluded from every specific band but always
// matches All.
func Matches(showtime string, band Band) bool {
	if band == All {
		return true
	}
	minutes, err := ToMinutes(showtime)
	if err != nil {
		return false
	}
	return band.Contains(minutes)
}
