// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry_test

import (
	"testing"
	"time"

	"cloudeng.io/symmetry"
)

func TestCombine(t *testing.T) {
	d := newDate(t, 2004, 5, 7)
	tod := symmetry.NewTimeOfDay(12, 30, 45)
	dt := symmetry.Combine(d, tod)
	if got, want := dt.Date(), d; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.TimeOfDay(), tod; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := dt.Offset(); ok {
		t.Errorf("unexpected offset")
	}
	if got, want := dt.String(), "2004-05-07 12:30:45"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	dt = dt.WithOffset(-3 * time.Hour)
	off, ok := dt.Offset()
	if !ok || off != -3*time.Hour {
		t.Errorf("got %v, %v", off, ok)
	}
	// Decomposition returns the composed values unchanged, the offset
	// is never folded into the date or time on read.
	if got, want := dt.Date(), d; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.TimeOfDay(), tod; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.String(), "2004-05-07 12:30:45-03:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := dt.WithNanosecond(1_000_000_000); err == nil {
		t.Errorf("expected error")
	}
	dt, err := dt.WithNanosecond(500_000_000)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dt.String(), "2004-05-07 12:30:45.5-03:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInstantOrdering(t *testing.T) {
	d := newDate(t, 2004, 5, 7)
	utc := symmetry.Combine(d, symmetry.NewTimeOfDay(12, 0, 0)).WithOffset(0)

	// The same instant expressed with different offsets.
	for _, tc := range []struct {
		tod    symmetry.TimeOfDay
		offset time.Duration
		day    int
	}{
		{symmetry.NewTimeOfDay(12, 0, 0), 0, 7},
		{symmetry.NewTimeOfDay(14, 0, 0), 2 * time.Hour, 7},
		{symmetry.NewTimeOfDay(9, 30, 0), -(2*time.Hour + 30*time.Minute), 7},
		{symmetry.NewTimeOfDay(1, 0, 0), 13 * time.Hour, 8},
	} {
		day := newDate(t, 2004, 5, tc.day)
		dt := symmetry.Combine(day, tc.tod).WithOffset(tc.offset)
		if !dt.Equal(utc) || dt.Compare(utc) != 0 {
			t.Errorf("%v: should equal %v", dt, utc)
		}
	}

	// A missing offset resolves as UTC.
	if !symmetry.Combine(d, symmetry.NewTimeOfDay(12, 0, 0)).Equal(utc) {
		t.Errorf("missing offset should resolve as UTC")
	}

	later := symmetry.Combine(d, symmetry.NewTimeOfDay(12, 0, 1)).WithOffset(0)
	if !utc.Before(later) || !later.After(utc) {
		t.Errorf("inconsistent ordering")
	}
	// Nanoseconds break ties.
	ns, err := utc.WithNanosecond(1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := utc.Compare(ns), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// DateTime ordering follows the instant, not the fields.
	if got, want := later.Compare(symmetry.Combine(d, symmetry.NewTimeOfDay(13, 0, 0)).WithOffset(4*time.Hour)), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFold(t *testing.T) {
	d := newDate(t, 2004, 5, 7)
	dt := symmetry.Combine(d, symmetry.NewTimeOfDay(1, 30, 0))
	folded := dt.WithFold(true)
	if !folded.Fold() || dt.Fold() {
		t.Errorf("fold bit mishandled")
	}
	// Fold never takes part in comparison.
	if !folded.Equal(dt) {
		t.Errorf("%v and %v should be equal", folded, dt)
	}
}

func TestUnix(t *testing.T) {
	// 1970-01-04 Symmetry454 is the POSIX epoch.
	epoch := symmetry.Combine(newDate(t, 1970, 1, 4), symmetry.NewTimeOfDay(0, 0, 0))
	if got, want := epoch.Unix(), int64(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	dt, err := symmetry.DateTimeFromUnix(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !dt.Equal(epoch) {
		t.Errorf("got %v, want %v", dt, epoch)
	}
	if got, want := dt.Date().String(), "1970-01-04"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, sec := range []int64{-1, 1, 86_399, 86_400, 1_000_000_000, -1_000_000_000} {
		dt, err := symmetry.DateTimeFromUnix(sec, 0)
		if err != nil {
			t.Errorf("%v: %v", sec, err)
			continue
		}
		if got, want := dt.Unix(), sec; got != want {
			t.Errorf("%v: got %v, want %v", sec, got, want)
		}
	}

	// The offset shifts the instant.
	dt = symmetry.Combine(newDate(t, 1970, 1, 4), symmetry.NewTimeOfDay(2, 0, 0)).WithOffset(2 * time.Hour)
	if got, want := dt.Unix(), int64(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeFromTime(t *testing.T) {
	loc := time.FixedZone("", -3*3600)
	when := time.Date(2004, time.December, 31, 23, 59, 58, 123_000_000, loc)
	dt, err := symmetry.DateTimeFromTime(when)
	if err != nil {
		t.Fatal(err)
	}
	// 2004-12-31 Gregorian is 2004-12-33 Symmetry454.
	if got, want := dt.Date().String(), "2004-12-33"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.TimeOfDay().String(), "23:59:58"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	off, ok := dt.Offset()
	if !ok || off != -3*time.Hour {
		t.Errorf("got %v, %v", off, ok)
	}
	if got, want := dt.Unix(), when.Unix(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeParse(t *testing.T) {
	for _, tc := range []string{
		"2004-05-07 12:30:45",
		"2004-05-07 12:30:45.5",
		"2004-05-07 12:30:45.000001",
		"2004-12-33 23:59:59+02:00",
		"1970-01-04 00:00:00-03:30",
	} {
		dt, err := symmetry.ParseDateTime(tc)
		if err != nil {
			t.Errorf("%v: %v", tc, err)
			continue
		}
		if got, want := dt.String(), tc; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	dt, err := symmetry.ParseDateTime("2004-05-07 12:30:45Z")
	if err != nil {
		t.Fatal(err)
	}
	off, ok := dt.Offset()
	if !ok || off != 0 {
		t.Errorf("got %v, %v", off, ok)
	}

	for _, tc := range []string{
		"",
		"2004-05-07",
		"2004-05-07T12:30:45",
		"2004-05-07 25:30:45",
		"2004-05-07 12:61:45",
		"2004-05-07 12:30:45.",
		"2004-05-07 12:30:45.0000000001",
		"2004-05-07 12:30:45+2:00",
		"2004-05-07 12:30:45+25:00",
	} {
		var dt symmetry.DateTime
		if err := dt.Parse(tc); err == nil {
			t.Errorf("%v: expected error", tc)
		}
	}
}
