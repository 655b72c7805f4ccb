// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"errors"
	"fmt"
)

// DomainError is returned when a year, month or day field is outside
// its valid range for the era in question.
type DomainError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %d out of range %d..%d", e.Field, e.Value, e.Min, e.Max)
}

// RangeError is returned when ordinal arithmetic produces a day outside
// the era's timeline.
type RangeError struct {
	Ordinal  int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ordinal %d out of range %d..%d", e.Ordinal, e.Min, e.Max)
}

// ErrGregorianRange is returned when a date has no proleptic Gregorian
// equivalent, ie. its common era relative year is less than 1. Such
// dates (Holocene years 1 through 10000) are internally valid, they
// just cannot be handed to a host calendar that has no year zero.
var ErrGregorianRange = errors.New("date precedes the proleptic Gregorian range")
