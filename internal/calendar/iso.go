package calendar

// ISODate is an ISO 8601 week date. Day is 1 (Monday) through 7 (Sunday).
type ISODate struct {
	Year int `json:"year"`
	Week int `json:"week"`
	Day  int `json:"day"`
}

// FixedFromISO returns the fixed date of an ISO week date.
func FixedFromISO(iso ISODate) Fixed {
	return NthKday(iso.Week, Sunday, GregorianDate{iso.Year - 1, December, 28}) + Fixed(iso.Day)
}

// ISOFromFixed returns the ISO week date of a fixed date.
func ISOFromFixed(date Fixed) ISODate {
	approx := GregorianYearFromFixed(date - 3)
	year := approx
	if date >= FixedFromISO(ISODate{approx + 1, 1, 1}) {
		year = approx + 1
	}
	week := 1 + Quotient(int(date-FixedFromISO(ISODate{year, 1, 1})), 7)
	day := amod(int(date), 7)
	return ISODate{Year: year, Week: week, Day: day}
}

// ISOLongYear reports whether the ISO year has 53 weeks.
func ISOLongYear(year int) bool {
	jan1 := DayOfWeekFromFixed(GregorianNewYear(year))
	dec31 := DayOfWeekFromFixed(FixedFromGregorian(GregorianDate{year, December, 31}))
	return jan1 == Thursday || dec31 == Thursday
}
