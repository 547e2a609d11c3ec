// Package candybar assembles the multi-calendar week table: the ISO week
// grid for a year, the new moons that fall inside it, and each week
// annotated in the Gregorian, Hebrew, Islamic and Chinese calendars.
package candybar

import (
	"fmt"

	"github.com/zapponejosh/candybar/internal/calendar"
)

// BuildGrid returns the ISO weeks of year, preceded by weeksBefore and
// followed by weeksAfter extra weeks. Every grid holds 53 weeks of the year
// itself, so short ISO years end with the first week of the next year.
func BuildGrid(p Provider, year, weeksBefore, weeksAfter int) (*Grid, error) {
	if weeksBefore < 0 || weeksAfter < 0 {
		return nil, fmt.Errorf("build grid for %d (before=%d, after=%d): %w",
			year, weeksBefore, weeksAfter, ErrNegativePadding)
	}

	firstThursday := p.NthKday(1, calendar.Thursday, calendar.GregorianDate{Year: year, Month: calendar.January, Day: 1})
	start := firstThursday - 3 - calendar.Fixed(7*weeksBefore)
	count := 53 + weeksBefore + weeksAfter

	g := &Grid{
		Year:        year,
		WeeksBefore: weeksBefore,
		WeeksAfter:  weeksAfter,
		Weeks:       make([]Week, count),
	}
	for i := range g.Weeks {
		for j := range g.Weeks[i] {
			f := start + calendar.Fixed(7*i+j)
			g.Weeks[i][j] = Day{Fixed: f, Gregorian: p.GregorianFromFixed(f)}
		}
	}
	g.Months = monthIndex(g.Weeks)
	return g, nil
}

// monthIndex counts weeks by the Gregorian month of their Monday. Weeks are
// in date order, so the counts come out sorted.
func monthIndex(weeks []Week) []MonthCount {
	var months []MonthCount
	for _, w := range weeks {
		y, m := w[0].Gregorian.Year, w[0].Gregorian.Month
		if n := len(months); n > 0 && months[n-1].Year == y && months[n-1].Month == m {
			months[n-1].Weeks++
			continue
		}
		months = append(months, MonthCount{Year: y, Month: m, Weeks: 1})
	}
	return months
}
