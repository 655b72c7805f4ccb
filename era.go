// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import "fmt"

// Era identifies the year numbering origin of a date. The common era
// numbers years 1 through 9998. The Holocene era shifts the origin back
// 10,000 years so that years 1 through 19998 cover the same timeline
// with no negative year numbers; Holocene year 12024 is common era year
// 2024. Holocene years 1 through 10000 precede the common era epoch and
// have ordinals <= 0.
type Era uint8

const (
	CommonEra Era = iota
	HoloceneEra
)

const holoceneOffset = 10_000

// minHoloceneOrdinal is the ordinal of Holocene 1-01-01, ie.
// daysBeforeYear(-9999) + 1.
const minHoloceneOrdinal = -3_652_424

func (e Era) String() string {
	switch e {
	case CommonEra:
		return "CE"
	case HoloceneEra:
		return "HE"
	}
	return fmt.Sprintf("era(%d)", uint8(e))
}

// MinYear returns the smallest valid year in the era.
func (e Era) MinYear() int {
	return 1
}

// MaxYear returns the largest valid year in the era. The common era
// stops at 9998 so that every date remains representable in host
// calendar implementations whose own maximum year is 9999
// (9998-12-28 Symmetry454 is 9998-12-27 Gregorian, whereas 9999-12-28
// would already spill into Gregorian year 10000).
func (e Era) MaxYear() int {
	if e == HoloceneEra {
		return holoceneOffset + 9998
	}
	return 9998
}

// MinOrdinal returns the smallest ordinal reachable within the era.
func (e Era) MinOrdinal() int {
	if e == HoloceneEra {
		return minHoloceneOrdinal
	}
	return 1
}

// MaxOrdinal returns the largest ordinal reachable within the era.
// Both eras end on the same day of the shared timeline.
func (e Era) MaxOrdinal() int {
	return MaxOrdinal
}

// RelativeYear returns the common era year used for leap and ordinal
// arithmetic: Holocene years are re-based by subtracting 10,000, which
// keeps the 293 year leap cycle aligned across eras. The result may be
// zero or negative for pre-epoch Holocene years.
func (e Era) RelativeYear(year int) int {
	if e == HoloceneEra {
		return year - holoceneOffset
	}
	return year
}

// Year converts a common era relative year back into the era's own
// numbering.
func (e Era) Year(relative int) int {
	if e == HoloceneEra {
		return relative + holoceneOffset
	}
	return relative
}

// IsLeap reports whether the given year of the era has a leap week.
func (e Era) IsLeap(year int) bool {
	return IsLeap(e.RelativeYear(year))
}

// DaysInYear returns the number of days, 364 or 371, in the given year
// of the era.
func (e Era) DaysInYear(year int) int {
	return DaysInYear(e.RelativeYear(year))
}

// DaysInMonth returns the number of days in the given month, 28 or 35,
// accounting for December's leap week.
func (e Era) DaysInMonth(year int, month Month) int {
	return daysInMonthOfYear(e.RelativeYear(year), month)
}
