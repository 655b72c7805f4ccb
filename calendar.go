// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package symmetry provides support for working with dates in the
// Symmetry454 calendar. Symmetry454 is a perpetual leap-week calendar:
// every month starts on a Monday and has exactly 28 or 35 days
// (4 or 5 whole weeks), every quarter is exactly 91 days and leap years
// append a 7 day leap week to December. Leap years recur on a fixed
// 293 year cycle giving a mean year of 365 + 71/293 days.
// See http://individual.utoronto.ca/kalendis/symmetry.htm for the
// calendar's definition and arithmetic.
//
// Dates are identified by an ordinal day number, with day 1 being
// January 1st of year 1. The ordinal timeline is shared with the
// proleptic Gregorian calendar, ie. ordinal n names the same day in
// both calendars, which reduces conversion between the two to encoding
// and decoding ordinals.
package symmetry

import (
	"fmt"
	"strconv"
	"strings"
)

// Month as an int, in the range 1-12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var months = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("month(%d)", int(m))
	}
	name := months[m-1]
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
// Symmetry454 reuses the Gregorian month names.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

const (
	// MaxOrdinal is the ordinal of the last common era date, 9998-12-28.
	MaxOrdinal = 3_651_690

	// Quarters are 13 weeks in a 4-5-4 month pattern and leap years
	// add a 53rd week, hence 52 leap years per 293 year cycle
	// (364*293 + 7*52 = 107016 days per cycle).
	leapCycleYears = 293
	leapCycleDays  = 107_016

	daysPerWeek     = 7
	daysPerQuarter  = 91
	weeksPerQuarter = 13
)

var (
	daysInMonth     = [12]int{28, 35, 28, 28, 35, 28, 28, 35, 28, 28, 35, 28}
	daysBeforeMonth [12]int // cumulative days preceding each month's first day
)

func init() {
	total := 0
	for i, n := range daysInMonth {
		daysBeforeMonth[i] = total
		total += n
	}
}

// floorDiv and floorMod implement floored division, rounding the
// quotient towards negative infinity. Go's operators truncate towards
// zero, which gets the leap rule and ordinal arithmetic wrong for
// years and ordinals before the epoch.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func ceilDiv(a, b int) int {
	return floorDiv(a+b-1, b)
}

// IsLeap reports whether the given common era year has a leap week,
// ie. a 35 day December. It is defined for all integers; Holocene era
// years must be converted first (see Era.IsLeap).
func IsLeap(year int) bool {
	return floorMod(52*year+146, leapCycleYears) < 52
}

// daysBeforeYear returns the number of days preceding January 1st of
// the given common era year: 364 per ordinary year plus 7 for every
// preceding leap year, counted in closed form.
func daysBeforeYear(year int) int {
	year--
	return 364*year + 7*floorDiv(52*year+146, leapCycleYears)
}

func firstDayOfYear(year int) int {
	return daysBeforeYear(year) + 1
}

// DaysInYear returns the number of days in the given common era year,
// 364 or 371.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 371
	}
	return 364
}

func daysInMonthOfYear(year int, month Month) int {
	if month == December && IsLeap(year) {
		return 35
	}
	return daysInMonth[month-1]
}

// ordinalOfYMD returns the ordinal day number for the given common era
// year, month and day. The fields are assumed to be valid.
func ordinalOfYMD(year int, month Month, day int) int {
	return daysBeforeYear(year) + daysBeforeMonth[month-1] + day
}

// ordinalToYMD decodes an ordinal day number into a common era year,
// month and day, together with the day and week within the year.
func ordinalToYMD(ordinal int) (year int, month Month, day, dayInYear, weekInYear int) {
	// The mean year estimate can be off by one in either direction
	// because years are 364 or 371 days long, never the mean.
	year = ceilDiv(leapCycleYears*(ordinal-1), leapCycleDays)
	firstDay := firstDayOfYear(year)
	if ordinal > firstDay {
		// The ordinal may fall in the leap week that overflows the
		// estimated year, in which case it belongs to the next year.
		if ordinal-firstDay >= 364 {
			if next := firstDayOfYear(year + 1); ordinal >= next {
				year++
				firstDay = next
			}
		}
	} else if firstDay > ordinal {
		year--
		firstDay = firstDayOfYear(year)
	}

	dayInYear = ordinal - firstDay + 1
	weekInYear = ceilDiv(dayInYear, daysPerWeek)
	// Weeks map onto quarters of 13 weeks and onto each quarter's
	// months of 4, 5 and 4 weeks. A 53rd week decodes as a notional
	// 13th month; it is December's leap week.
	quarter := ceilDiv(4*weekInYear, 4*weeksPerQuarter+1)
	dayInQuarter := dayInYear - daysPerQuarter*(quarter-1)
	weekInQuarter := ceilDiv(dayInQuarter, daysPerWeek)
	monthInQuarter := ceilDiv(2*weekInQuarter, 9)
	month = Month(3*(quarter-1) + monthInQuarter)
	if month == 13 {
		month = December
	}
	day = dayInYear - daysBeforeMonth[month-1]
	return
}
