package calendar

import (
	"fmt"
	"math"
)

// ChineseEpoch is the traditional start of the first sexagesimal cycle,
// February 15, 2637 B.C.E. (Gregorian).
var ChineseEpoch = FixedFromGregorian(GregorianDate{-2636, February, 15})

// ChineseDate is a date on the Chinese lunisolar calendar. Year is the
// position in the 60-year cycle; Leap marks an intercalary month.
type ChineseDate struct {
	Cycle int  `json:"cycle"`
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Leap  bool `json:"leap"`
	Day   int  `json:"day"`
}

func (c ChineseDate) String() string {
	leap := ""
	if c.Leap {
		leap = "L"
	}
	return fmt.Sprintf("%d-%d-%d%s-%d", c.Cycle, c.Year, c.Month, leap, c.Day)
}

// chinaZone returns the offset of Beijing time from UT, as a fraction of a
// day. Before 1929 the calendar used local mean time at 116°25' E.
func chinaZone(tee Moment) float64 {
	if GregorianYearFromFixed(tee.Fixed()) < 1929 {
		return hr(1397.0 / 180)
	}
	return hr(8)
}

func midnightInChina(date Fixed) Moment {
	return date.Moment() - Moment(chinaZone(date.Moment()))
}

func chinaFromUniversal(tee Moment) Moment {
	return tee + Moment(chinaZone(tee))
}

// chineseWinterSolsticeOnOrBefore returns the fixed date in Beijing of the
// last winter solstice on or before date.
func chineseWinterSolsticeOnOrBefore(date Fixed) Fixed {
	approx := EstimatePriorSolarLongitude(Winter, midnightInChina(date+1))
	day := approx.Fixed() - 1
	for Winter >= SolarLongitude(midnightInChina(day+1)) {
		day++
	}
	return day
}

func chineseNewMoonOnOrAfter(date Fixed) Fixed {
	t := NewMoonAtOrAfter(midnightInChina(date))
	return chinaFromUniversal(t).Fixed()
}

func chineseNewMoonBefore(date Fixed) Fixed {
	t := NewMoonBefore(midnightInChina(date))
	return chinaFromUniversal(t).Fixed()
}

// currentMajorSolarTerm returns the index (1 to 12) of the last major solar
// term on or before date.
func currentMajorSolarTerm(date Fixed) int {
	s := SolarLongitude(midnightInChina(date))
	return amod(2+int(math.Floor(s/30)), 12)
}

func chineseNoMajorSolarTerm(date Fixed) bool {
	return currentMajorSolarTerm(date) == currentMajorSolarTerm(chineseNewMoonOnOrAfter(date+1))
}

// chinesePriorLeapMonth reports whether a leap month occurs in the range of
// months starting at mPrime and ending at m.
func chinesePriorLeapMonth(mPrime, m Fixed) bool {
	for m >= mPrime {
		if chineseNoMajorSolarTerm(m) {
			return true
		}
		m = chineseNewMoonBefore(m)
	}
	return false
}

func lunationsBetween(a, b Fixed) int {
	return int(math.Round(float64(b-a) / MeanSynodicMonth))
}

func chineseNewYearInSui(date Fixed) Fixed {
	s1 := chineseWinterSolsticeOnOrBefore(date)
	s2 := chineseWinterSolsticeOnOrBefore(s1 + 370)
	m12 := chineseNewMoonOnOrAfter(s1 + 1)
	m13 := chineseNewMoonOnOrAfter(m12 + 1)
	nextM11 := chineseNewMoonBefore(s2 + 1)
	if lunationsBetween(m12, nextM11) == 12 && (chineseNoMajorSolarTerm(m12) || chineseNoMajorSolarTerm(m13)) {
		return chineseNewMoonOnOrAfter(m13 + 1)
	}
	return m13
}

func chineseNewYearOnOrBefore(date Fixed) Fixed {
	newYear := chineseNewYearInSui(date)
	if date >= newYear {
		return newYear
	}
	return chineseNewYearInSui(date - 180)
}

// ChineseNewYear returns the fixed date of the Chinese New Year falling in
// the given Gregorian year.
func ChineseNewYear(gYear int) Fixed {
	return chineseNewYearOnOrBefore(FixedFromGregorian(GregorianDate{gYear, July, 1}))
}

// ChineseFromFixed returns the Chinese date of a fixed date.
func ChineseFromFixed(date Fixed) ChineseDate {
	s1 := chineseWinterSolsticeOnOrBefore(date)
	s2 := chineseWinterSolsticeOnOrBefore(s1 + 370)
	m12 := chineseNewMoonOnOrAfter(s1 + 1)
	nextM11 := chineseNewMoonBefore(s2 + 1)
	m := chineseNewMoonBefore(date + 1)
	leapYear := lunationsBetween(m12, nextM11) == 12

	offset := 0
	if leapYear && chinesePriorLeapMonth(m12, m) {
		offset = 1
	}
	month := amod(lunationsBetween(m12, m)-offset, 12)
	leapMonth := leapYear && chineseNoMajorSolarTerm(m) && !chinesePriorLeapMonth(m12, chineseNewMoonBefore(m))

	elapsedYears := int(math.Floor(1.5 - float64(month)/12 + float64(date-ChineseEpoch)/MeanTropicalYear))
	return ChineseDate{
		Cycle: Quotient(elapsedYears-1, 60) + 1,
		Year:  amod(elapsedYears, 60),
		Month: month,
		Leap:  leapMonth,
		Day:   int(date-m) + 1,
	}
}

// FixedFromChinese returns the fixed date of a Chinese date.
func FixedFromChinese(c ChineseDate) Fixed {
	midYear := Fixed(math.Floor(float64(ChineseEpoch) + (float64((c.Cycle-1)*60+c.Year-1)+0.5)*MeanTropicalYear))
	newYear := chineseNewYearOnOrBefore(midYear)
	p := chineseNewMoonOnOrAfter(newYear + Fixed((c.Month-1)*29))
	d := ChineseFromFixed(p)
	priorNewMoon := p
	if c.Month != d.Month || c.Leap != d.Leap {
		priorNewMoon = chineseNewMoonOnOrAfter(p + 1)
	}
	return priorNewMoon + Fixed(c.Day) - 1
}
