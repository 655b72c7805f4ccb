// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// TimeOfDay represents a time of day with second resolution.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Duration returns the time elapsed since midnight as a time.Duration.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
}

func (t TimeOfDay) secondOfDay() int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// TimeOfDayFromTime returns a TimeOfDay from the specified time.Time.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return true
}

func (t *TimeOfDay) parseHour(h string, ampmState int) (int, error) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %s", h)
	}
	if ampmState != 0 && hour > 12 {
		return 0, fmt.Errorf("invalid hour: %s with am/pm", h)
	}
	if ampmState == 2 && hour < 12 {
		hour += 12
	}
	return hour, nil
}

func (t *TimeOfDay) parseHourMinuteSec(h, m, s string, ampmState int) error {
	if !isDigits(s) || !isDigits(h) || !isDigits(m) {
		return fmt.Errorf("invalid time: %s:%s:%s", h, m, s)
	}
	hour, err := t.parseHour(h, ampmState)
	if err != nil {
		return err
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute: %s", m)
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 || sec > 59 {
		return fmt.Errorf("invalid second: %s", s)
	}
	*t = NewTimeOfDay(hour, minute, sec)
	return nil
}

// Parse val in formats '08[:12[:10]][am|pm]'
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	tl := strings.TrimSpace(strings.ToLower(val))
	ampmState := 0
	if strings.HasSuffix(tl, "am") {
		tl = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 1
	}
	if strings.HasSuffix(tl, "pm") {
		tl = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 2
	}
	parts := strings.Split(tl, ":")
	switch len(parts) {
	case 1:
		return t.parseHourMinuteSec(parts[0], "0", "0", ampmState)
	case 2:
		return t.parseHourMinuteSec(parts[0], parts[1], "0", ampmState)
	case 3:
		return t.parseHourMinuteSec(parts[0], parts[1], parts[2], ampmState)
	}
	return fmt.Errorf("invalid format, expected '08:12[:10]'")
}
