// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateTime composes a Date with a time of day, a nanosecond fraction
// and an optional fixed offset from UTC. Like Date it is immutable;
// the With* methods return derived values.
//
// Ordering and equality are defined by the instant the DateTime names:
// the date and time resolved through the offset to a single position on
// the timeline. Two DateTimes with different offsets but the same
// instant compare equal, which is distinct from Date's ordinal-only
// ordering. A DateTime without an offset is resolved as if it were UTC.
type DateTime struct {
	date      Date
	tod       TimeOfDay
	nanos     int
	offset    int // seconds east of UTC
	hasOffset bool
	fold      bool
}

// Combine returns the DateTime for the given date and time of day, with
// no offset and a zero nanosecond fraction.
func Combine(date Date, tod TimeOfDay) DateTime {
	return DateTime{date: date, tod: tod}
}

// WithOffset returns a copy of dt carrying the given fixed offset from
// UTC, truncated to second resolution.
func (dt DateTime) WithOffset(offset time.Duration) DateTime {
	dt.offset = int(offset / time.Second)
	dt.hasOffset = true
	return dt
}

// WithNanosecond returns a copy of dt with the given sub-second
// fraction, 0-999999999.
func (dt DateTime) WithNanosecond(ns int) (DateTime, error) {
	if ns < 0 || ns > 999_999_999 {
		return DateTime{}, &DomainError{Field: "nanosecond", Value: ns, Min: 0, Max: 999_999_999}
	}
	dt.nanos = ns
	return dt, nil
}

// WithFold returns a copy of dt with the fold bit set. Fold
// disambiguates the second occurrence of a repeated wall clock reading
// during an offset transition; it is informational and never takes part
// in comparisons.
func (dt DateTime) WithFold(fold bool) DateTime {
	dt.fold = fold
	return dt
}

// Date returns the composed Date unchanged.
func (dt DateTime) Date() Date { return dt.date }

// TimeOfDay returns the composed TimeOfDay unchanged; no offset
// normalization is applied on read.
func (dt DateTime) TimeOfDay() TimeOfDay { return dt.tod }

func (dt DateTime) Nanosecond() int { return dt.nanos }

// Offset returns the fixed offset from UTC and whether one was set.
func (dt DateTime) Offset() (time.Duration, bool) {
	return time.Duration(dt.offset) * time.Second, dt.hasOffset
}

func (dt DateTime) Fold() bool { return dt.fold }

// instant resolves the DateTime to UTC seconds on the ordinal timeline
// (second 0 is midnight of ordinal day 1) plus nanoseconds.
func (dt DateTime) instant() (int64, int) {
	secs := int64(dt.date.ordinal-1)*86_400 + int64(dt.tod.secondOfDay()) - int64(dt.offset)
	return secs, dt.nanos
}

// Compare returns -1, 0 or +1 comparing the instants named by dt and
// other.
func (dt DateTime) Compare(other DateTime) int {
	s1, n1 := dt.instant()
	s2, n2 := other.instant()
	switch {
	case s1 < s2:
		return -1
	case s1 > s2:
		return 1
	case n1 < n2:
		return -1
	case n1 > n2:
		return 1
	}
	return 0
}

// Equal reports whether dt and other name the same instant, regardless
// of the offsets they were composed with.
func (dt DateTime) Equal(other DateTime) bool {
	return dt.Compare(other) == 0
}

func (dt DateTime) Before(other DateTime) bool {
	return dt.Compare(other) < 0
}

func (dt DateTime) After(other DateTime) bool {
	return dt.Compare(other) > 0
}

// Unix returns the instant as seconds since the POSIX epoch
// (1970-01-04 Symmetry454, ordinal 719163).
func (dt DateTime) Unix() int64 {
	secs, _ := dt.instant()
	return secs - int64(posixEpochOrdinal-1)*86_400
}

// DateTimeFromUnix returns the DateTime for the given seconds and
// nanoseconds since the POSIX epoch, expressed in UTC with an explicit
// zero offset.
func DateTimeFromUnix(sec int64, nsec int) (DateTime, error) {
	days := int(floorDiv64(sec, 86_400))
	date, err := DateFromOrdinal(CommonEra, days+posixEpochOrdinal)
	if err != nil {
		return DateTime{}, err
	}
	sod := int(sec - int64(days)*86_400)
	dt := Combine(date, NewTimeOfDay(sod/3600, sod/60%60, sod%60)).WithOffset(0)
	return dt.WithNanosecond(nsec)
}

// DateTimeFromTime returns the DateTime for the given time.Time,
// carrying over its wall clock reading, its zone's fixed offset at that
// instant and its nanosecond fraction.
func DateTimeFromTime(t time.Time) (DateTime, error) {
	date, err := DateFromTime(t)
	if err != nil {
		return DateTime{}, err
	}
	_, offset := t.Zone()
	dt := Combine(date, TimeOfDayFromTime(t)).WithOffset(time.Duration(offset) * time.Second)
	return dt.WithNanosecond(t.Nanosecond())
}

// String returns 'YYYY-MM-DD HH:MM:SS[.fffffffff][±hh:mm]' with the
// fraction trimmed of trailing zeros and the offset present only when
// one was set.
func (dt DateTime) String() string {
	var b strings.Builder
	b.WriteString(dt.date.String())
	b.WriteByte(' ')
	b.WriteString(dt.tod.String())
	if dt.nanos != 0 {
		b.WriteString(strings.TrimRight(fmt.Sprintf(".%09d", dt.nanos), "0"))
	}
	if dt.hasOffset {
		off := dt.offset
		sign := byte('+')
		if off < 0 {
			sign = '-'
			off = -off
		}
		fmt.Fprintf(&b, "%c%02d:%02d", sign, off/3600, off/60%60)
	}
	return b.String()
}

// Parse parses the format produced by String. A trailing 'Z' is
// accepted as a zero offset.
func (dt *DateTime) Parse(val string) error {
	datePart, rest, ok := strings.Cut(val, " ")
	if !ok {
		return fmt.Errorf("invalid date-time %q, expected 'YYYY-MM-DD HH:MM:SS'", val)
	}
	var date Date
	if err := date.Parse(datePart); err != nil {
		return err
	}

	offset, hasOffset := 0, false
	if strings.HasSuffix(rest, "Z") {
		rest = rest[:len(rest)-1]
		hasOffset = true
	} else if i := strings.IndexAny(rest, "+-"); i >= 0 {
		var err error
		offset, err = parseOffset(rest[i:])
		if err != nil {
			return err
		}
		rest, hasOffset = rest[:i], true
	}

	nanos := 0
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		frac := rest[i+1:]
		if len(frac) == 0 || len(frac) > 9 || !isDigits(frac) {
			return fmt.Errorf("invalid fraction: %q", frac)
		}
		n, _ := strconv.Atoi(frac)
		for range 9 - len(frac) {
			n *= 10
		}
		nanos = n
		rest = rest[:i]
	}

	var tod TimeOfDay
	if err := tod.Parse(rest); err != nil {
		return err
	}

	ndt := Combine(date, tod)
	if hasOffset {
		ndt = ndt.WithOffset(time.Duration(offset) * time.Second)
	}
	ndt, err := ndt.WithNanosecond(nanos)
	if err != nil {
		return err
	}
	*dt = ndt
	return nil
}

// ParseDateTime parses the format produced by DateTime.String.
func ParseDateTime(val string) (DateTime, error) {
	var dt DateTime
	err := dt.Parse(val)
	return dt, err
}

func parseOffset(val string) (int, error) {
	sign := 1
	if val[0] == '-' {
		sign = -1
	}
	h, m, ok := strings.Cut(val[1:], ":")
	if !ok || len(h) != 2 || len(m) != 2 || !isDigits(h) || !isDigits(m) {
		return 0, fmt.Errorf("invalid offset %q, expected '±hh:mm'", val)
	}
	hours, _ := strconv.Atoi(h)
	mins, _ := strconv.Atoi(m)
	if hours > 23 || mins > 59 {
		return 0, fmt.Errorf("invalid offset %q", val)
	}
	return sign * (hours*3600 + mins*60), nil
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
