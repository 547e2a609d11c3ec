package calendar

import "fmt"

// IslamicEpoch is 1 Muharram A.H. 1 (Julian July 16, 622 C.E.).
var IslamicEpoch = FixedFromJulian(622, July, 16)

// IslamicDate is a date on the arithmetic (civil) Islamic calendar.
type IslamicDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (i IslamicDate) String() string {
	return fmt.Sprintf("%d-%d-%d", i.Year, i.Month, i.Day)
}

// IslamicLeapYear reports whether Dhu al-Hijja has 30 days in year.
func IslamicLeapYear(year int) bool {
	return imod(14+11*year, 30) < 11
}

// FixedFromIslamic returns the fixed date of an Islamic date.
func FixedFromIslamic(i IslamicDate) Fixed {
	return IslamicEpoch - 1 +
		Fixed((i.Year-1)*354) +
		Fixed(Quotient(3+11*i.Year, 30)) +
		Fixed(29*(i.Month-1)) +
		Fixed(Quotient(i.Month, 2)) +
		Fixed(i.Day)
}

// IslamicFromFixed returns the Islamic date of a fixed date.
func IslamicFromFixed(date Fixed) IslamicDate {
	year := Quotient(30*int(date-IslamicEpoch)+10646, 10631)
	priorDays := int(date - FixedFromIslamic(IslamicDate{year, 1, 1}))
	month := Quotient(11*priorDays+330, 325)
	day := int(date-FixedFromIslamic(IslamicDate{year, month, 1})) + 1
	return IslamicDate{Year: year, Month: month, Day: day}
}
