// Package calendar provides calendrical conversions between a fixed day
// count and the Gregorian, ISO, Hebrew, Islamic and Chinese calendars,
// together with the solar and lunar astronomy the Chinese calendar and the
// new-moon search depend on.
//
// The algorithms follow Reingold and Dershowitz, "Calendrical Calculations".
// Every date converts to exactly one Fixed day and back.
package calendar

import "math"

// Fixed is a rata die day count: R.D. 1 is Monday, January 1, 1 (Gregorian).
type Fixed int

// Moment is a fixed day plus the elapsed fraction of that day, in UT.
type Moment float64

// Fixed returns the day on which the moment falls.
func (m Moment) Fixed() Fixed {
	return Fixed(math.Floor(float64(m)))
}

// Moment returns midnight at the start of the day.
func (f Fixed) Moment() Moment {
	return Moment(f)
}

// Weekday numbers used by DayOfWeekFromFixed and the k-day functions.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Quotient is floor division for integers.
func Quotient(m, n int) int {
	q := m / n
	if (m%n != 0) && ((m < 0) != (n < 0)) {
		q--
	}
	return q
}

// imod is the integer remainder with the sign of the divisor.
func imod(m, n int) int {
	r := m % n
	if r != 0 && ((r < 0) != (n < 0)) {
		r += n
	}
	return r
}

// amod is like imod but returns n instead of 0.
func amod(m, n int) int {
	return n + imod(m, -n)
}

// fmod is the real remainder with the sign of the divisor.
func fmod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// poly evaluates a polynomial with coefficients in increasing power.
func poly(x float64, a []float64) float64 {
	sum := 0.0
	for i := len(a) - 1; i >= 0; i-- {
		sum = sum*x + a[i]
	}
	return sum
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func sinDeg(deg float64) float64 { return math.Sin(radians(deg)) }

func cosDeg(deg float64) float64 { return math.Cos(radians(deg)) }

// arctanDeg returns the angle of the point (x, y) in degrees, in [0, 360).
func arctanDeg(y, x float64) float64 {
	return fmod(degrees(math.Atan2(y, x)), 360)
}

// hr converts hours to a fraction of a day.
func hr(x float64) float64 { return x / 24 }

// secs converts arc seconds to degrees.
func secs(x float64) float64 { return x / 3600 }

// DayOfWeekFromFixed returns 0 for Sunday through 6 for Saturday.
func DayOfWeekFromFixed(date Fixed) int {
	return imod(int(date)-Sunday, 7)
}

// KdayOnOrBefore returns the fixed date of the k-day on or before date.
func KdayOnOrBefore(k int, date Fixed) Fixed {
	return date - Fixed(DayOfWeekFromFixed(date-Fixed(k)))
}

// KdayOnOrAfter returns the fixed date of the k-day on or after date.
func KdayOnOrAfter(k int, date Fixed) Fixed {
	return KdayOnOrBefore(k, date+6)
}

// KdayBefore returns the k-day strictly before date.
func KdayBefore(k int, date Fixed) Fixed {
	return KdayOnOrBefore(k, date-1)
}

// KdayAfter returns the k-day strictly after date.
func KdayAfter(k int, date Fixed) Fixed {
	return KdayOnOrBefore(k, date+7)
}

// NthKday returns the n-th k-day after (n > 0) or before (n < 0) the given
// Gregorian date. n must not be zero.
func NthKday(n, k int, g GregorianDate) Fixed {
	if n > 0 {
		return Fixed(7*n) + KdayBefore(k, FixedFromGregorian(g))
	}
	return Fixed(7*n) + KdayAfter(k, FixedFromGregorian(g))
}

// ClockFromMoment returns the hour, minute and second of the moment.
func ClockFromMoment(tee Moment) (hour, minute int, second float64) {
	t := fmod(float64(tee), 1)
	hour = int(math.Floor(t * 24))
	minute = int(math.Floor(fmod(t*24*60, 60)))
	second = fmod(t*24*60*60, 60)
	return hour, minute, second
}
