package calendar

import (
	"fmt"
	"math"
)

// Hebrew months, numbered from Nisan as in the biblical reckoning.
const (
	Nisan = iota + 1
	Iyyar
	Sivan
	Tammuz
	Av
	Elul
	Tishri
	Marheshvan
	Kislev
	Tevet
	Shevat
	Adar
	AdarII
)

// HebrewEpoch is the fixed date of Tishri 1, A.M. 1 (Julian October 7, 3761 B.C.E.).
var HebrewEpoch = FixedFromJulian(-3761, October, 7)

// HebrewDate is a date on the arithmetic Hebrew calendar.
type HebrewDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (h HebrewDate) String() string {
	return fmt.Sprintf("%d-%d-%d", h.Year, h.Month, h.Day)
}

// HebrewLeapYear reports whether year has a thirteenth month.
func HebrewLeapYear(year int) bool {
	return imod(7*year+1, 19) < 7
}

// LastMonthOfHebrewYear returns Adar or Adar II.
func LastMonthOfHebrewYear(year int) int {
	if HebrewLeapYear(year) {
		return AdarII
	}
	return Adar
}

// Molad returns the moment of the mean conjunction of the given month.
func Molad(month, year int) Moment {
	y := year
	if month < Tishri {
		y = year + 1
	}
	monthsElapsed := float64(month-Tishri) + math.Floor(float64(235*y-234)/19)
	return Moment(float64(HebrewEpoch) - 876.0/25920 + monthsElapsed*(29+hr(12)+793.0/25920))
}

func hebrewCalendarElapsedDays(year int) int {
	monthsElapsed := Quotient(235*year-234, 19)
	partsElapsed := 12084 + 13753*monthsElapsed
	days := 29*monthsElapsed + Quotient(partsElapsed, 25920)
	if imod(3*(days+1), 7) < 3 {
		return days + 1
	}
	return days
}

func hebrewYearLengthCorrection(year int) int {
	ny0 := hebrewCalendarElapsedDays(year - 1)
	ny1 := hebrewCalendarElapsedDays(year)
	ny2 := hebrewCalendarElapsedDays(year + 1)
	switch {
	case ny2-ny1 == 356:
		return 2
	case ny1-ny0 == 382:
		return 1
	default:
		return 0
	}
}

// HebrewNewYear returns the fixed date of Tishri 1 of year.
func HebrewNewYear(year int) Fixed {
	return HebrewEpoch + Fixed(hebrewCalendarElapsedDays(year)+hebrewYearLengthCorrection(year))
}

// DaysInHebrewYear returns 353, 354, 355, 383, 384 or 385.
func DaysInHebrewYear(year int) int {
	return int(HebrewNewYear(year+1) - HebrewNewYear(year))
}

func longMarheshvan(year int) bool {
	d := DaysInHebrewYear(year)
	return d == 355 || d == 385
}

func shortKislev(year int) bool {
	d := DaysInHebrewYear(year)
	return d == 353 || d == 383
}

// LastDayOfHebrewMonth returns 29 or 30.
func LastDayOfHebrewMonth(month, year int) int {
	switch {
	case month == Iyyar || month == Tammuz || month == Elul || month == Tevet || month == AdarII:
		return 29
	case month == Adar && !HebrewLeapYear(year):
		return 29
	case month == Marheshvan && !longMarheshvan(year):
		return 29
	case month == Kislev && shortKislev(year):
		return 29
	default:
		return 30
	}
}

// FixedFromHebrew returns the fixed date of a Hebrew date.
func FixedFromHebrew(h HebrewDate) Fixed {
	days := int(HebrewNewYear(h.Year)) + h.Day - 1
	if h.Month < Tishri {
		for m := Tishri; m <= LastMonthOfHebrewYear(h.Year); m++ {
			days += LastDayOfHebrewMonth(m, h.Year)
		}
		for m := Nisan; m < h.Month; m++ {
			days += LastDayOfHebrewMonth(m, h.Year)
		}
	} else {
		for m := Tishri; m < h.Month; m++ {
			days += LastDayOfHebrewMonth(m, h.Year)
		}
	}
	return Fixed(days)
}

// HebrewFromFixed returns the Hebrew date of a fixed date.
func HebrewFromFixed(date Fixed) HebrewDate {
	approx := int(math.Floor(float64(date-HebrewEpoch)/(35975351.0/98496))) + 1
	year := approx - 1
	for HebrewNewYear(year+1) <= date {
		year++
	}
	start := Tishri
	if date >= FixedFromHebrew(HebrewDate{year, Nisan, 1}) {
		start = Nisan
	}
	month := start
	for date > FixedFromHebrew(HebrewDate{year, month, LastDayOfHebrewMonth(month, year)}) {
		month++
	}
	day := int(date-FixedFromHebrew(HebrewDate{year, month, 1})) + 1
	return HebrewDate{Year: year, Month: month, Day: day}
}
