// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"fmt"
	"strconv"
	"strings"
)

// Date represents a Symmetry454 calendar date. A Date is immutable:
// its ordinal day number and leap flag are computed when it is
// constructed and all derivations (Replace, AddDays, era conversion)
// return new values. Ordering, equality and hashing are defined purely
// by the ordinal, so a Holocene date and the common era date for the
// same day compare equal.
//
// The zero value is not a valid date; use one of the constructors.
type Date struct {
	ordinal int
	year    int
	month   Month
	day     int
	era     Era
	leap    bool
}

// Package level min and max dates for the common era.
var (
	MinDate Date
	MaxDate Date
)

func init() {
	MinDate = Date{ordinal: 1, year: 1, month: January, day: 1, era: CommonEra, leap: IsLeap(1)}
	MaxDate = Date{ordinal: MaxOrdinal, year: 9998, month: December, day: 28, era: CommonEra, leap: IsLeap(9998)}
}

func newDate(era Era, year int, month Month, day int) (Date, error) {
	if year < era.MinYear() || year > era.MaxYear() {
		return Date{}, &DomainError{Field: "year", Value: year, Min: era.MinYear(), Max: era.MaxYear()}
	}
	if month < January || month > December {
		return Date{}, &DomainError{Field: "month", Value: int(month), Min: 1, Max: 12}
	}
	rel := era.RelativeYear(year)
	if dim := daysInMonthOfYear(rel, month); day < 1 || day > dim {
		return Date{}, &DomainError{Field: "day", Value: day, Min: 1, Max: dim}
	}
	return Date{
		ordinal: ordinalOfYMD(rel, month, day),
		year:    year,
		month:   month,
		day:     day,
		era:     era,
		leap:    IsLeap(rel),
	}, nil
}

// NewDate returns the Date for the given year, month and day. Years 1
// through 9998 are common era dates; years 9999 through 19998 are taken
// to be Holocene era dates, mirroring the Holocene convention of simply
// prefixing a digit to the year.
func NewDate(year int, month Month, day int) (Date, error) {
	era := CommonEra
	if year > CommonEra.MaxYear() && year <= HoloceneEra.MaxYear() {
		era = HoloceneEra
	}
	return newDate(era, year, month, day)
}

// NewHoloceneDate returns the Holocene era Date for the given year,
// month and day. Unlike NewDate it accepts years 1 through 10000, the
// pre-epoch years that have no common era equivalent.
func NewHoloceneDate(year int, month Month, day int) (Date, error) {
	return newDate(HoloceneEra, year, month, day)
}

// DateFromOrdinal returns the Date of the given era whose ordinal day
// number is n.
func DateFromOrdinal(era Era, n int) (Date, error) {
	if n < era.MinOrdinal() || n > era.MaxOrdinal() {
		return Date{}, &RangeError{Ordinal: n, Min: era.MinOrdinal(), Max: era.MaxOrdinal()}
	}
	rel, month, day, _, _ := ordinalToYMD(n)
	return newDate(era, era.Year(rel), month, day)
}

// ParseDate parses the canonical text form YYYY-MM-DD. The era is
// inferred from the year as per NewDate.
func ParseDate(val string) (Date, error) {
	var d Date
	err := d.Parse(val)
	return d, err
}

// Parse parses the canonical text form YYYY-MM-DD, eg. 2004-12-33.
func (d *Date) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || parts[0] == "" {
		return fmt.Errorf("invalid year: %q", parts[0])
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day: %q", parts[2])
	}
	nd, err := NewDate(year, month, day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// Year returns the year as stored, ie. Holocene dates return the
// Holocene year number, never the re-based common era year.
func (d Date) Year() int { return d.year }

func (d Date) Month() Month { return d.month }

func (d Date) Day() int { return d.day }

func (d Date) Era() Era { return d.era }

// Ordinal returns the date's ordinal day number on the timeline shared
// by both eras, anchored at common era 1-01-01 = 1. Pre-epoch Holocene
// dates have ordinals <= 0.
func (d Date) Ordinal() int { return d.ordinal }

// IsLeap reports whether the date's year has a leap week.
func (d Date) IsLeap() bool { return d.leap }

// DayOfYear returns the 1 based day within the date's year, 1-364 or
// 1-371 for leap years.
func (d Date) DayOfYear() int {
	return d.ordinal - firstDayOfYear(d.era.RelativeYear(d.year)) + 1
}

// WeekOfYear returns the 1 based week within the date's year, 1-52 or
// 1-53 for leap years. Weeks always start on Monday.
func (d Date) WeekOfYear() int {
	return ceilDiv(d.DayOfYear(), daysPerWeek)
}

// Quarter returns the date's quarter, 1-4. The leap week counts as part
// of the fourth quarter.
func (d Date) Quarter() int {
	return ceilDiv(4*d.WeekOfYear(), 4*weeksPerQuarter+1)
}

// String returns the canonical text form YYYY-MM-DD with the year zero
// padded to at least 4 digits.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Replace returns a new Date with the given fields overridden; a zero
// value leaves the corresponding field unchanged. The era is preserved.
func (d Date) Replace(year int, month Month, day int) (Date, error) {
	if year == 0 {
		year = d.year
	}
	if month == 0 {
		month = d.month
	}
	if day == 0 {
		day = d.day
	}
	return newDate(d.era, year, month, day)
}

// AddDays returns the date n days after d (or before for negative n),
// staying within d's era.
func (d Date) AddDays(n int) (Date, error) {
	return DateFromOrdinal(d.era, d.ordinal+n)
}

// Tomorrow returns the day after d, staying within d's era.
func (d Date) Tomorrow() (Date, error) {
	return d.AddDays(1)
}

// Yesterday returns the day before d, staying within d's era.
func (d Date) Yesterday() (Date, error) {
	return d.AddDays(-1)
}

// Sub returns the number of days from other to d, ie. d - other.
func (d Date) Sub(other Date) int {
	return d.ordinal - other.ordinal
}

// Compare returns -1, 0 or +1 according to whether d is before, equal
// to or after other. Only the ordinal is compared, the eras need not
// match.
func (d Date) Compare(other Date) int {
	switch {
	case d.ordinal < other.ordinal:
		return -1
	case d.ordinal > other.ordinal:
		return 1
	}
	return 0
}

// Equal reports whether d and other name the same day, regardless of
// how either was constructed.
func (d Date) Equal(other Date) bool {
	return d.ordinal == other.ordinal
}

func (d Date) Before(other Date) bool {
	return d.ordinal < other.ordinal
}

func (d Date) After(other Date) bool {
	return d.ordinal > other.ordinal
}

// Hash returns a key derived solely from the ordinal, for use in maps
// that must treat equal dates from different eras as the same entry.
func (d Date) Hash() uint64 {
	return uint64(int64(d.ordinal))
}

// Holocene returns the same day expressed in the Holocene era. Common
// era dates always convert.
func (d Date) Holocene() Date {
	if d.era == HoloceneEra {
		return d
	}
	nd := d
	nd.era = HoloceneEra
	nd.year = d.year + holoceneOffset
	return nd
}

// Common returns the same day expressed in the common era. Holocene
// years 1 through 10000 precede the common era epoch and cannot be
// converted.
func (d Date) Common() (Date, error) {
	if d.era == CommonEra {
		return d, nil
	}
	rel := HoloceneEra.RelativeYear(d.year)
	if rel < CommonEra.MinYear() {
		return Date{}, &DomainError{Field: "year", Value: d.year, Min: holoceneOffset + 1, Max: HoloceneEra.MaxYear()}
	}
	nd := d
	nd.era = CommonEra
	nd.year = rel
	return nd, nil
}
