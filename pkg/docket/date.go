package docket

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/coolbeans/phcite/pkg/types"
)

var (
	// ErrNoDate is returned when a phrase carries no date at all.
	ErrNoDate = errors.New("no date")

	// ErrInvalidDate is returned when a date is shaped correctly but does not
	// exist on the calendar or names an unknown month.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNoMatch is returned when a text holds no docket.
	ErrNoMatch = errors.New("no docket found")

	// ErrUnknownCategory is returned for an unrecognized category shorthand.
	ErrUnknownCategory = errors.New("unknown docket category")
)

var (
	monthDayYear = regexp.MustCompile(`(?i)^([a-z]+)\.?\s*(\d{1,2})\s*,?\s*(\d{4})$`)
	dayMonthYear = regexp.MustCompile(`(?i)^(\d{1,2})\s+([a-z]+)\.?\s*,?\s*(\d{4})$`)
	numericDate  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

var monthPrefixes = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// ParseDate reads the date forms found in decisions: "October 10, 2000",
// "Sept. 30, 1971", "Jan 1, 2000", "11 January 2017" and the numeric
// month/day/year form "12/4/2000".
func ParseDate(raw string) (types.Date, error) {
	raw = strings.Join(strings.Fields(raw), " ")
	if raw == "" {
		return types.Date{}, ErrNoDate
	}

	var month, day, year string
	if m := monthDayYear.FindStringSubmatch(raw); m != nil {
		month, day, year = m[1], m[2], m[3]
	} else if m := dayMonthYear.FindStringSubmatch(raw); m != nil {
		day, month, year = m[1], m[2], m[3]
	} else if m := numericDate.FindStringSubmatch(raw); m != nil {
		month, day, year = m[1], m[2], m[3]
	} else {
		return types.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	monthNum, err := resolveMonth(month)
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	dayNum, _ := strconv.Atoi(day)
	yearNum, _ := strconv.Atoi(year)

	d, err := types.NewDate(yearNum, monthNum, dayNum)
	if err != nil {
		return types.Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return d, nil
}

func resolveMonth(token string) (int, error) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, nil
	}
	token = strings.ToLower(token)
	if len(token) < 3 {
		return 0, fmt.Errorf("month %q too short", token)
	}
	n, ok := monthPrefixes[token[:3]]
	if !ok {
		return 0, fmt.Errorf("unknown month %q", token)
	}
	return n, nil
}
