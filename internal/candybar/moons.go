package candybar

import (
	"sort"

	"github.com/zapponejosh/candybar/internal/calendar"
)

// DefaultFudge is the extra lunations searched past each end of the grid.
// It is a safety margin found by experiment, not a derived bound.
const DefaultFudge = 3

// LocateNewMoons returns every new moon whose day falls inside the grid.
//
// The lunation count for January 1 is estimated from the arithmetic
// Islamic year (twelve mean lunations each) and a deliberately wide range
// around it is searched: a year of lunations either side, four per week
// of padding, plus fudge. A negative fudge counts as zero.
func LocateNewMoons(p Provider, grid *Grid, fudge int) NewMoons {
	if fudge < 0 {
		fudge = 0
	}
	jan1 := p.FixedFromGregorian(calendar.GregorianDate{Year: grid.Year, Month: calendar.January, Day: 1})
	approx := lunationEstimate(jan1)
	lo := approx - 12 - (4*grid.WeeksBefore + fudge)
	hi := approx + 13 + (4*grid.WeeksAfter + fudge)

	moons := make(NewMoons)
	for n := lo; n < hi; n++ {
		tee := p.NthNewMoon(n)
		day := tee.Fixed()
		if !grid.Contains(day) {
			continue
		}
		moons[day] = NewMoonEvent{
			Lunation:          n,
			Moment:            tee,
			Fixed:             day,
			Gregorian:         p.GregorianFromFixed(day),
			SiderealLongitude: p.SiderealLunarLongitude(tee),
		}
	}
	return moons
}

// lunationEstimate is twelve times the arithmetic Islamic year count at
// date. The division floors so dates before the epoch stay monotone.
func lunationEstimate(date calendar.Fixed) int {
	return calendar.Quotient(30*int(date)+10646, 10631) * 12
}

// Sorted returns the events in date order.
func (m NewMoons) Sorted() []NewMoonEvent {
	events := make([]NewMoonEvent, 0, len(m))
	for _, e := range m {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Fixed < events[j].Fixed })
	return events
}
