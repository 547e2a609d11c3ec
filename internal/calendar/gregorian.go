package calendar

import (
	"fmt"

	"github.com/carlosjhr64/jd"
)

// GregorianEpoch is the fixed date of January 1, 1 (Gregorian).
const GregorianEpoch Fixed = 1

// jdOffset converts a fixed date to a Julian day number at noon.
const jdOffset = 1721425

// Gregorian months.
const (
	January = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// GregorianDate is a proleptic Gregorian calendar date.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day)
}

// GregorianLeapYear reports whether year has 366 days.
func GregorianLeapYear(year int) bool {
	return imod(year, 4) == 0 && !(imod(year, 400) == 100 || imod(year, 400) == 200 || imod(year, 400) == 300)
}

// FixedFromGregorian returns the fixed date of a Gregorian date.
func FixedFromGregorian(g GregorianDate) Fixed {
	y := g.Year - 1
	days := int(GregorianEpoch) - 1 +
		365*y +
		Quotient(y, 4) -
		Quotient(y, 100) +
		Quotient(y, 400) +
		Quotient(367*g.Month-362, 12) +
		g.Day
	if g.Month > 2 {
		if GregorianLeapYear(g.Year) {
			days--
		} else {
			days -= 2
		}
	}
	return Fixed(days)
}

// GregorianYearFromFixed returns the Gregorian year containing date.
func GregorianYearFromFixed(date Fixed) int {
	d0 := int(date - GregorianEpoch)
	n400 := Quotient(d0, 146097)
	d1 := imod(d0, 146097)
	n100 := Quotient(d1, 36524)
	d2 := imod(d1, 36524)
	n4 := Quotient(d2, 1461)
	d3 := imod(d2, 1461)
	n1 := Quotient(d3, 365)
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		return year
	}
	return year + 1
}

// GregorianFromFixed returns the Gregorian date of a fixed date.
func GregorianFromFixed(date Fixed) GregorianDate {
	if date >= GregorianEpoch {
		y, m, d := jd.J2YMD(int(date) + jdOffset)
		return GregorianDate{Year: y, Month: m, Day: d}
	}

	// jd only handles the common era; fall back to day arithmetic.
	year := GregorianYearFromFixed(date)
	priorDays := int(date - FixedFromGregorian(GregorianDate{year, January, 1}))
	correction := 0
	if date >= FixedFromGregorian(GregorianDate{year, March, 1}) {
		if GregorianLeapYear(year) {
			correction = 1
		} else {
			correction = 2
		}
	}
	month := Quotient(12*(priorDays+correction)+373, 367)
	day := int(date-FixedFromGregorian(GregorianDate{year, month, 1})) + 1
	return GregorianDate{Year: year, Month: month, Day: day}
}

// GregorianNewYear returns the fixed date of January 1 of year.
func GregorianNewYear(year int) Fixed {
	return FixedFromGregorian(GregorianDate{year, January, 1})
}

// GregorianDateDifference returns the number of days from g1 to g2.
func GregorianDateDifference(g1, g2 GregorianDate) int {
	return int(FixedFromGregorian(g2) - FixedFromGregorian(g1))
}

// FixedFromJulian returns the fixed date of a Julian calendar date.
// Years before the common era are given as negative numbers with no year 0.
func FixedFromJulian(year, month, day int) Fixed {
	y := year
	if year < 0 {
		y = year + 1
	}
	leap := imod(year, 4) == 0
	if year < 0 {
		leap = imod(year, 4) == 3
	}
	days := -2 + 365*(y-1) + Quotient(y-1, 4) + Quotient(367*month-362, 12) + day
	if month > 2 {
		if leap {
			days--
		} else {
			days -= 2
		}
	}
	return Fixed(days)
}
