// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"cloudeng.io/errors"
)

// DateRange represents a range of dates, inclusive of the start and end
// dates. Use NewDateRange or Parse to create one; the zero value is an
// empty range.
type DateRange struct {
	from, to Date
}

// NewDateRange returns a DateRange for the from/to dates. If the from
// date is after the to date they are swapped.
func NewDateRange(from, to Date) DateRange {
	if from.After(to) {
		from, to = to, from
	}
	return DateRange{from: from, to: to}
}

func (dr DateRange) From() Date { return dr.from }

func (dr DateRange) To() Date { return dr.to }

// Days returns the number of days in the range.
func (dr DateRange) Days() int {
	return dr.to.Sub(dr.from) + 1
}

func (dr DateRange) Contains(d Date) bool {
	return !d.Before(dr.from) && !d.After(dr.to)
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s:%s", dr.from, dr.to)
}

// Parse ranges in the format '<from>:<to>' where both dates are in the
// canonical YYYY-MM-DD form, eg. '2004-01-01:2004-12-35'. The from date
// must not be after the to date.
func (dr *DateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var from, to Date
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	if to.Before(from) {
		return fmt.Errorf("from is later than to: %s %s", from, to)
	}
	dr.from, dr.to = from, to
	return nil
}

// Dates returns an iterator that yields each Date in the range.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for td := dr.from; ; {
			if !yield(td) {
				return
			}
			if td.Equal(dr.to) {
				return
			}
			td, _ = td.AddDays(1)
		}
	}
}

// Weeks returns an iterator that yields the first day (always a Monday)
// of each week touched by the range.
func (dr DateRange) Weeks() iter.Seq[Date] {
	start, _ := dr.from.AddDays(1 - dr.from.ISOWeekday())
	return func(yield func(Date) bool) {
		for td := start; !td.After(dr.to); {
			if !yield(td) {
				return
			}
			next, err := td.AddDays(daysPerWeek)
			if err != nil {
				return
			}
			td = next
		}
	}
}

type DateList []Date

// Parse a comma separated list of dates in the canonical YYYY-MM-DD
// form. All entries are parsed and all failures reported.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	errs := errors.M{}
	for _, part := range parts {
		var date Date
		if err := date.Parse(strings.TrimSpace(part)); err != nil {
			errs.Append(err)
			continue
		}
		d = append(d, date)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*dl = d
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

func (dl DateList) Contains(d Date) bool {
	for _, dd := range dl {
		if dd.Equal(d) {
			return true
		}
	}
	return false
}

// Merge returns the ranges formed by merging runs of consecutive days.
// The list is assumed to be sorted.
func (dl DateList) Merge() DateRangeList {
	if len(dl) == 0 {
		return nil
	}
	var drl DateRangeList
	from, to := dl[0], dl[0]
	for i := 1; i < len(dl); i++ {
		cur := dl[i]
		if cur.Sub(to) <= 1 {
			to = cur
			continue
		}
		drl = append(drl, DateRange{from: from, to: to})
		from, to = cur, cur
	}
	return slices.Clip(append(drl, DateRange{from: from, to: to}))
}

type DateRangeList []DateRange

// Parse a list of ranges in the format expected by DateRange.Parse.
// The parsed list is sorted and without duplicates; all entries are
// parsed and all failures reported.
func (drl *DateRangeList) Parse(ranges []string) error {
	if len(ranges) == 0 {
		return nil
	}
	drs := make(DateRangeList, 0, len(ranges))
	seen := map[DateRange]struct{}{}
	errs := errors.M{}
	for _, rg := range ranges {
		var dr DateRange
		if err := dr.Parse(rg); err != nil {
			errs.Append(err)
			continue
		}
		if _, ok := seen[dr]; ok {
			continue
		}
		drs = append(drs, dr)
		seen[dr] = struct{}{}
	}
	if err := errs.Err(); err != nil {
		return err
	}
	slices.SortFunc(drs, func(a, b DateRange) int {
		if c := a.from.Compare(b.from); c != 0 {
			return c
		}
		return a.to.Compare(b.to)
	})
	*drl = drs
	return nil
}

// Merge returns a new list with overlapping or adjacent ranges merged.
// The list is assumed to be sorted.
func (drl DateRangeList) Merge() DateRangeList {
	if len(drl) == 0 {
		return drl
	}
	merged := make(DateRangeList, 0, len(drl))
	from, to := drl[0].from, drl[0].to
	for i := 1; i < len(drl); i++ {
		cur := drl[i]
		if cur.from.Sub(to) <= 1 {
			if cur.to.After(to) {
				to = cur.to
			}
			continue
		}
		merged = append(merged, DateRange{from: from, to: to})
		from, to = cur.from, cur.to
	}
	return slices.Clip(append(merged, DateRange{from: from, to: to}))
}
