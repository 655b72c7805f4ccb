// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/symmetry"
)

// Sample dates from the Symmetry454 arithmetic documentation,
// http://individual.utoronto.ca/kalendis/Symmetry454-Arithmetic.pdf
var sampleDates = []struct {
	year  int
	month symmetry.Month
	day   int
	note  string
}{
	{1, 1, 1, "first date shared with the host calendar's range"},
	{122, 9, 8, "building of Hadrian's Wall (circa)"},
	{1776, 7, 4, "Independence Day - USA"},
	{1867, 7, 1, "Canadian Confederation"},
	{1970, 1, 4, "POSIX epoch"},
	{2000, 2, 30, ""},
	{2004, 5, 7, ""},
	{2004, 12, 33, "leap week; calendar switch proposed for 2005-01-01"},
	{2020, 2, 25, ""},
	{2222, 2, 6, ""},
	{3333, 2, 35, ""},
	{9998, 12, 28, "last date shared with the host calendar's range"},
}

func table(_ context.Context, values interface{}, _ []string) error {
	fl := values.(*formatFlags)
	loc, err := fl.locale()
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, td := range sampleDates {
		sd, err := symmetry.NewDate(td.year, td.month, td.day)
		if err != nil {
			errs.Append(err)
			continue
		}
		gd, err := sd.Gregorian()
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%20s greg. = %20s sym. %s\n",
			gd.Format("2006-Jan-02 Mon."), sd.Format(loc, fl.Format), td.note)
	}
	return errs.Err()
}
