// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/symmetry"
)

// Sample dates from the Symmetry454 documentation, Symmetry454 on the
// left, proleptic Gregorian on the right.
var conversions = []struct {
	sym  string
	greg string
}{
	{"0001-01-01", "0001-01-01"},
	{"0122-09-08", "0122-09-07"},
	{"1776-07-04", "1776-07-04"},
	{"1867-07-01", "1867-07-01"},
	{"1970-01-04", "1970-01-01"},
	{"2004-12-33", "2004-12-31"},
	{"2004-12-34", "2005-01-01"},
	{"9998-12-28", "9998-12-27"},
}

func TestGregorianConversion(t *testing.T) {
	for _, tc := range conversions {
		sd, err := symmetry.ParseDate(tc.sym)
		if err != nil {
			t.Errorf("%v: %v", tc.sym, err)
			continue
		}
		gd, err := sd.Gregorian()
		if err != nil {
			t.Errorf("%v: %v", tc.sym, err)
			continue
		}
		if got, want := gd.Format(time.DateOnly), tc.greg; got != want {
			t.Errorf("%v: got %v, want %v", tc.sym, got, want)
		}
		rt, err := symmetry.DateFromTime(gd)
		if err != nil {
			t.Errorf("%v: %v", tc.greg, err)
			continue
		}
		if !rt.Equal(sd) {
			t.Errorf("%v: got %v, want %v", tc.greg, rt, sd)
		}
		if got, want := symmetry.GregorianOrdinal(gd), sd.Ordinal(); got != want {
			t.Errorf("%v: got %v, want %v", tc.greg, got, want)
		}
	}
}

func TestWeekdayAgreesWithHost(t *testing.T) {
	// The weekday is computed directly from the ordinal; it must agree
	// with the host calendar's weekday for the same day.
	for _, tc := range conversions {
		sd, err := symmetry.ParseDate(tc.sym)
		if err != nil {
			t.Fatalf("%v: %v", tc.sym, err)
		}
		gd, err := sd.Gregorian()
		if err != nil {
			t.Fatalf("%v: %v", tc.sym, err)
		}
		if got, want := sd.Weekday(), gd.Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", tc.sym, got, want)
		}
	}
	// Every Symmetry454 month starts on a Monday.
	for year := 2000; year <= 2010; year++ {
		for m := symmetry.January; m <= symmetry.December; m++ {
			d, err := symmetry.NewDate(year, m, 1)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := d.Weekday(), time.Monday; got != want {
				t.Errorf("%v: got %v, want %v", d, got, want)
			}
			if got, want := d.ISOWeekday(), 1; got != want {
				t.Errorf("%v: got %v, want %v", d, got, want)
			}
		}
	}
	// POSIX epoch is a Thursday.
	d, err := symmetry.ParseDate("1970-01-04")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Weekday(), time.Thursday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.ISOWeekday(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGregorianRange(t *testing.T) {
	// Pre-epoch Holocene dates are valid but have no Gregorian form.
	d, err := symmetry.NewHoloceneDate(9_500, 3, 12)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Gregorian(); !errors.Is(err, symmetry.ErrGregorianRange) {
		t.Errorf("expected ErrGregorianRange, got %v", err)
	}
	// Post-epoch Holocene dates convert normally.
	d, err = symmetry.NewHoloceneDate(11_970, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	gd, err := d.Gregorian()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := gd.Format(time.DateOnly), "1970-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateFromUnix(t *testing.T) {
	for _, tc := range []struct {
		sec  int64
		date string
	}{
		{0, "1970-01-04"},
		{86_399, "1970-01-04"},
		{86_400, "1970-01-05"},
		{-1, "1970-01-03"},
		{1_104_537_600, "2004-12-34"}, // 2005-01-01 Gregorian
	} {
		d, err := symmetry.DateFromUnix(tc.sec)
		if err != nil {
			t.Errorf("%v: %v", tc.sec, err)
			continue
		}
		if got, want := d.String(), tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.sec, got, want)
		}
	}
}
