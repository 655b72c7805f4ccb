// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"fmt"
	"strings"
)

// Format renders the date according to a strftime style layout using
// the name tables of the supplied Locale. The supported tokens are:
//
//	%a %A   abbreviated and full weekday name
//	%b %B   abbreviated and full month name
//	%d %m   zero padded day and month (%-d, %-m unpadded)
//	%o      locale ordinal-day suffix (eg. 1st, 22nd)
//	%y %Y   two digit and full (zero padded to 4) year
//	%j      day of year, three digits (%-j unpadded)
//	%U %W   week of year, two digits (%-U, %-W unpadded); weeks are
//	        whole and Monday aligned so both tokens are equivalent
//	%w      weekday number, 1 (Monday) through 7 (Sunday)
//	%q      quarter, 1-4
//	%e      era designator, CE or HE
//	%x      the locale's date representation
//	%%      a literal percent
//
// Unsupported tokens are passed through untouched for a downstream
// formatter to resolve.
func (d Date) Format(loc Locale, layout string) string {
	return formatTokens(loc, layout, d, nil)
}

// Format renders the date-time as per Date.Format with these
// additional tokens:
//
//	%H %I   hour on the 24 and 12 hour clock (%-H, %-I unpadded)
//	%M %S   minute and second (%-M, %-S unpadded)
//	%p      AM or PM
//	%f      sub-second fraction, six digits
//	%z      ±hhmm offset, empty when no offset is set
//	%X      the locale's time representation
//	%c      the locale's date-time representation
func (dt DateTime) Format(loc Locale, layout string) string {
	return formatTokens(loc, layout, dt.date, &dt)
}

func formatTokens(loc Locale, layout string, d Date, dt *DateTime) string {
	var b strings.Builder
	for i := 0; i < len(layout); {
		if layout[i] != '%' || i+1 == len(layout) {
			b.WriteByte(layout[i])
			i++
			continue
		}
		verb, size, padded := layout[i+1], 2, true
		if verb == '-' && i+2 < len(layout) {
			verb, size, padded = layout[i+2], 3, false
		}
		if !writeToken(&b, loc, verb, padded, d, dt) {
			b.WriteString(layout[i : i+size])
		}
		i += size
	}
	return b.String()
}

func writeNum(b *strings.Builder, val, width int, padded bool) {
	if padded {
		fmt.Fprintf(b, "%0*d", width, val)
		return
	}
	fmt.Fprintf(b, "%d", val)
}

func writeToken(b *strings.Builder, loc Locale, verb byte, padded bool, d Date, dt *DateTime) bool {
	switch verb {
	case 'a':
		b.WriteString(loc.DayAbbrevs[d.ISOWeekday()-1])
	case 'A':
		b.WriteString(loc.DayNames[d.ISOWeekday()-1])
	case 'b':
		b.WriteString(loc.MonthAbbrevs[d.month-1])
	case 'B':
		b.WriteString(loc.MonthNames[d.month-1])
	case 'd':
		writeNum(b, d.day, 2, padded)
	case 'm':
		writeNum(b, int(d.month), 2, padded)
	case 'o':
		b.WriteString(loc.OrdinalSuffix(d.day))
	case 'y':
		writeNum(b, d.year%100, 2, padded)
	case 'Y':
		writeNum(b, d.year, 4, padded)
	case 'j':
		writeNum(b, d.DayOfYear(), 3, padded)
	case 'U', 'W':
		writeNum(b, d.WeekOfYear(), 2, padded)
	case 'w':
		writeNum(b, d.ISOWeekday(), 1, padded)
	case 'q':
		writeNum(b, d.Quarter(), 1, padded)
	case 'e':
		b.WriteString(d.era.String())
	case 'x':
		b.WriteString(formatTokens(loc, loc.DateFormat, d, dt))
	case '%':
		b.WriteByte('%')
	default:
		if dt == nil {
			return false
		}
		return writeTimeToken(b, loc, verb, padded, d, dt)
	}
	return true
}

func writeTimeToken(b *strings.Builder, loc Locale, verb byte, padded bool, d Date, dt *DateTime) bool {
	switch verb {
	case 'H':
		writeNum(b, dt.tod.Hour(), 2, padded)
	case 'I':
		h := dt.tod.Hour() % 12
		if h == 0 {
			h = 12
		}
		writeNum(b, h, 2, padded)
	case 'M':
		writeNum(b, dt.tod.Minute(), 2, padded)
	case 'S':
		writeNum(b, dt.tod.Second(), 2, padded)
	case 'p':
		if dt.tod.Hour() < 12 {
			b.WriteString("AM")
		} else {
			b.WriteString("PM")
		}
	case 'f':
		writeNum(b, dt.nanos/1000, 6, true)
	case 'z':
		if !dt.hasOffset {
			return true
		}
		off, sign := dt.offset, byte('+')
		if off < 0 {
			sign, off = '-', -off
		}
		fmt.Fprintf(b, "%c%02d%02d", sign, off/3600, off/60%60)
	case 'X':
		b.WriteString(formatTokens(loc, loc.TimeFormat, d, dt))
	case 'c':
		b.WriteString(formatTokens(loc, loc.DateTimeFmt, d, dt))
	default:
		return false
	}
	return true
}
