// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command symcal converts between proleptic Gregorian and Symmetry454
// calendar dates.
package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/symmetry"
)

var cmdSet *subcmd.CommandSet

type formatFlags struct {
	Locale string `subcmd:"locale,en,locale used for formatted output; eg. en or pt-BR"`
	Format string `subcmd:"format,%Y-%b-%d %a.,strftime style format for Symmetry454 dates"`
}

type convertFlags struct {
	Locale    string `subcmd:"locale,en,locale used for formatted output; eg. en or pt-BR"`
	Format    string `subcmd:"format,%Y-%b-%d %a.,strftime style format for Symmetry454 dates"`
	Gregorian bool   `subcmd:"gregorian,false,treat the arguments as Gregorian dates"`
}

type ordinalFlags struct {
	Holocene bool `subcmd:"holocene,false,decode ordinals in the Holocene era"`
}

func init() {
	convertFlagSet := subcmd.NewFlagSet()
	convertFlagSet.MustRegisterFlagStruct(&convertFlags{}, nil, nil)
	ordinalFlagSet := subcmd.NewFlagSet()
	ordinalFlagSet.MustRegisterFlagStruct(&ordinalFlags{}, nil, nil)
	todayFlagSet := subcmd.NewFlagSet()
	todayFlagSet.MustRegisterFlagStruct(&formatFlags{}, nil, nil)
	tableFlagSet := subcmd.NewFlagSet()
	tableFlagSet.MustRegisterFlagStruct(&formatFlags{}, nil, nil)

	convertCmd := subcmd.NewCommand("convert", convertFlagSet, convert)
	convertCmd.Document("convert dates between the Symmetry454 and Gregorian calendars", "<YYYY-MM-DD>+")

	ordinalCmd := subcmd.NewCommand("ordinal", ordinalFlagSet, ordinal)
	ordinalCmd.Document("convert ordinal day numbers to Symmetry454 dates", "<ordinal>+")

	todayCmd := subcmd.NewCommand("today", todayFlagSet, today, subcmd.WithoutArguments())
	todayCmd.Document("show the current Symmetry454 date")

	tableCmd := subcmd.NewCommand("table", tableFlagSet, table, subcmd.WithoutArguments())
	tableCmd.Document("show the calendar documentation's sample dates")

	cmdSet = subcmd.NewCommandSet(convertCmd, ordinalCmd, todayCmd, tableCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func (fl formatFlags) locale() (symmetry.Locale, error) {
	return symmetry.ParseLocale(fl.Locale)
}

func (fl convertFlags) locale() (symmetry.Locale, error) {
	return symmetry.ParseLocale(fl.Locale)
}

func printPair(sd symmetry.Date, loc symmetry.Locale, format string) error {
	gd, err := sd.Gregorian()
	if err != nil {
		return err
	}
	fmt.Printf("%s sym. = %s greg. (ordinal %d)\n",
		sd.Format(loc, format), gd.Format("2006-Jan-02 Mon."), sd.Ordinal())
	return nil
}

func convert(_ context.Context, values interface{}, args []string) error {
	fl := values.(*convertFlags)
	loc, err := fl.locale()
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, arg := range args {
		var sd symmetry.Date
		if fl.Gregorian {
			gd, err := time.Parse("2006-01-02", arg)
			if err != nil {
				errs.Append(err)
				continue
			}
			sd, err = symmetry.DateFromTime(gd)
			if err != nil {
				errs.Append(err)
				continue
			}
		} else if err := sd.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		errs.Append(printPair(sd, loc, fl.Format))
	}
	return errs.Err()
}

func ordinal(_ context.Context, values interface{}, args []string) error {
	fl := values.(*ordinalFlags)
	era := symmetry.CommonEra
	if fl.Holocene {
		era = symmetry.HoloceneEra
	}
	errs := errors.M{}
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		sd, err := symmetry.DateFromOrdinal(era, n)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%d = %s %s (week %d, day %d of year %d)\n",
			n, sd, sd.Era(), sd.WeekOfYear(), sd.DayOfYear(), sd.Year())
	}
	return errs.Err()
}

func today(_ context.Context, values interface{}, _ []string) error {
	fl := values.(*formatFlags)
	loc, err := fl.locale()
	if err != nil {
		return err
	}
	sd, err := symmetry.Today()
	if err != nil {
		return err
	}
	return printPair(sd, loc, fl.Format)
}
