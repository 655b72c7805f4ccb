// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"fmt"
	"time"
)

// The proleptic Gregorian calendar shares the ordinal timeline:
// ordinal n is the same day in both calendars. The POSIX epoch,
// 1970-01-01 Gregorian, is 1970-01-04 Symmetry454.
const posixEpochOrdinal = 719_163

var gregDaysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func gregorianIsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// gregorianOrdinal returns the ordinal day number of the given
// proleptic Gregorian date.
func gregorianOrdinal(year int, month time.Month, day int) int {
	y := year - 1
	n := 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
	n += gregDaysBeforeMonth[month-1]
	if month > time.February && gregorianIsLeap(year) {
		n++
	}
	return n + day
}

// Gregorian returns the date's proleptic Gregorian equivalent as a
// time.Time at midnight UTC. Pre-epoch Holocene dates (years 1 through
// 10000, ordinals <= 0) return ErrGregorianRange: the host calendar has
// no year zero to map them onto.
func (d Date) Gregorian() (time.Time, error) {
	if d.era.RelativeYear(d.year) < 1 {
		return time.Time{}, fmt.Errorf("%v: %w", d, ErrGregorianRange)
	}
	epoch := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return epoch.AddDate(0, 0, d.ordinal-1), nil
}

// GregorianOrdinal returns the ordinal day number of the given
// time.Time's calendar day in its own location.
func GregorianOrdinal(t time.Time) int {
	year, month, day := t.Date()
	return gregorianOrdinal(year, month, day)
}

// DateFromTime returns the Symmetry454 date for the given time.Time's
// calendar day in its own location.
func DateFromTime(t time.Time) (Date, error) {
	return DateFromOrdinal(CommonEra, GregorianOrdinal(t))
}

// DateFromUnix returns the Symmetry454 date containing the given
// seconds since the POSIX epoch, interpreted in UTC.
func DateFromUnix(sec int64) (Date, error) {
	days := int(floorDiv64(sec, 86_400))
	return DateFromOrdinal(CommonEra, days+posixEpochOrdinal)
}

// Today returns the current date in UTC.
func Today() (Date, error) {
	return DateFromUnix(time.Now().Unix())
}

// Weekday returns the day of the week. Ordinal day 1 is a Monday and
// weeks never break alignment, so the weekday follows directly from the
// ordinal; the mapping agrees with time.Time.Weekday on the shared
// timeline.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(floorMod(d.ordinal, daysPerWeek))
}

// ISOWeekday returns the day of the week numbered 1 (Monday) through
// 7 (Sunday). Every Symmetry454 month starts on day 1 = Monday.
func (d Date) ISOWeekday() int {
	return floorMod(d.ordinal-1, daysPerWeek) + 1
}
