// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package symmetry

import "golang.org/x/text/language"

// Locale supplies the name tables and format patterns used when
// formatting dates. Formatting never consults process-global locale
// state; callers pass a Locale value explicitly.
//
// Name tables are indexed from Monday (weekday 0) since every
// Symmetry454 week, month and year starts on a Monday.
type Locale struct {
	Tag           language.Tag
	MonthNames    [12]string
	MonthAbbrevs  [12]string
	DayNames      [7]string
	DayAbbrevs    [7]string
	DateFormat    string // pattern for %x
	TimeFormat    string // pattern for %X
	DateTimeFmt   string // pattern for %c
	OrdinalSuffix func(day int) string
}

// English is the default locale.
var English = Locale{
	Tag: language.English,
	MonthNames: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthAbbrevs: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	DayNames: [7]string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	},
	DayAbbrevs:  [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	DateFormat:  "%m/%d/%Y",
	TimeFormat:  "%H:%M:%S",
	DateTimeFmt: "%a %d %b %Y %H:%M:%S",
	OrdinalSuffix: func(day int) string {
		switch {
		case day%100/10 == 1:
			return "th"
		case day%10 == 1:
			return "st"
		case day%10 == 2:
			return "nd"
		case day%10 == 3:
			return "rd"
		}
		return "th"
	},
}

// BrazilianPortuguese marks only the first day of the month as ordinal,
// as Portuguese usage does.
var BrazilianPortuguese = Locale{
	Tag: language.BrazilianPortuguese,
	MonthNames: [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	MonthAbbrevs: [12]string{
		"jan", "fev", "mar", "abr", "mai", "jun",
		"jul", "ago", "set", "out", "nov", "dez",
	},
	DayNames: [7]string{
		"segunda-feira", "terça-feira", "quarta-feira", "quinta-feira",
		"sexta-feira", "sábado", "domingo",
	},
	DayAbbrevs:  [7]string{"seg", "ter", "qua", "qui", "sex", "sáb", "dom"},
	DateFormat:  "%d/%m/%Y",
	TimeFormat:  "%H:%M:%S",
	DateTimeFmt: "%a %d %b %Y %H:%M:%S",
	OrdinalSuffix: func(day int) string {
		if day == 1 {
			return "º"
		}
		return ""
	},
}

// EuropeanPortuguese differs from pt-BR only in the ordinal indicator.
var EuropeanPortuguese = Locale{
	Tag:          language.EuropeanPortuguese,
	MonthNames:   BrazilianPortuguese.MonthNames,
	MonthAbbrevs: BrazilianPortuguese.MonthAbbrevs,
	DayNames:     BrazilianPortuguese.DayNames,
	DayAbbrevs:   BrazilianPortuguese.DayAbbrevs,
	DateFormat:   BrazilianPortuguese.DateFormat,
	TimeFormat:   BrazilianPortuguese.TimeFormat,
	DateTimeFmt:  BrazilianPortuguese.DateTimeFmt,
	OrdinalSuffix: func(day int) string {
		if day == 1 {
			return ".º"
		}
		return ""
	},
}

var (
	locales = []Locale{English, BrazilianPortuguese, EuropeanPortuguese}
	matcher language.Matcher
)

func init() {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	matcher = language.NewMatcher(tags)
}

// LookupLocale returns the builtin Locale best matching the given tag,
// falling back to English.
func LookupLocale(tag language.Tag) Locale {
	_, i, _ := matcher.Match(tag)
	return locales[i]
}

// ParseLocale returns the builtin Locale best matching a BCP 47 tag
// such as "en" or "pt-BR".
func ParseLocale(val string) (Locale, error) {
	tag, err := language.Parse(val)
	if err != nil {
		return Locale{}, err
	}
	return LookupLocale(tag), nil
}
