package calendar

// Easter returns the fixed date of Gregorian Easter Sunday in year.
//
// The computus follows Oudin (1940) and holds for every Gregorian year.
func Easter(year int) Fixed {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return FixedFromGregorian(GregorianDate{year, month, day})
}

// Advent returns the first Sunday of Advent, the Sunday closest to
// November 30.
func Advent(year int) Fixed {
	return KdayOnOrBefore(Sunday, FixedFromGregorian(GregorianDate{year, December, 3}))
}

// hebrewYearOffset is the Hebrew year current in January of Gregorian year 0.
const hebrewYearOffset = 3760

// Passover returns 15 Nisan falling in the spring of the Gregorian year.
func Passover(gYear int) Fixed {
	return FixedFromHebrew(HebrewDate{gYear + hebrewYearOffset, Nisan, 15})
}

// RoshHashanah returns 1 Tishri falling in the autumn of the Gregorian year.
func RoshHashanah(gYear int) Fixed {
	return HebrewNewYear(gYear + hebrewYearOffset + 1)
}

// IslamicNewYear returns the first 1 Muharram on or after January 1 of the
// Gregorian year. A Gregorian year can hold two; the second, if any, is
// not reported.
func IslamicNewYear(gYear int) Fixed {
	jan1 := GregorianNewYear(gYear)
	y := IslamicFromFixed(jan1).Year
	d := FixedFromIslamic(IslamicDate{y, 1, 1})
	if d < jan1 {
		d = FixedFromIslamic(IslamicDate{y + 1, 1, 1})
	}
	return d
}

// HebrewYearSpan returns the Hebrew years current on January 1 and
// December 31 of the Gregorian year.
func HebrewYearSpan(gYear int) (first, last int) {
	return HebrewFromFixed(GregorianNewYear(gYear)).Year,
		HebrewFromFixed(FixedFromGregorian(GregorianDate{gYear, December, 31})).Year
}

// IslamicYearSpan returns the Islamic years current on January 1 and
// December 31 of the Gregorian year.
func IslamicYearSpan(gYear int) (first, last int) {
	return IslamicFromFixed(GregorianNewYear(gYear)).Year,
		IslamicFromFixed(FixedFromGregorian(GregorianDate{gYear, December, 31})).Year
}
