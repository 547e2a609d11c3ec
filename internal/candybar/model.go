package candybar

import (
	"fmt"

	"github.com/zapponejosh/candybar/internal/calendar"
)

// SchemaVersion identifies the shape of AnnotatedWeek and the algorithms
// that produce it. Cached weeks written under another version are ignored.
const SchemaVersion = 2

// Day is one grid day: the fixed day count and its Gregorian date.
type Day struct {
	Fixed     calendar.Fixed         `json:"fixed"`
	Gregorian calendar.GregorianDate `json:"gregorian"`
}

// Week holds seven consecutive days, Monday first.
type Week [7]Day

// Monday returns the fixed date the week starts on.
func (w Week) Monday() calendar.Fixed {
	return w[0].Fixed
}

// MonthCount is the number of grid weeks whose Monday falls in a
// Gregorian month.
type MonthCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Weeks int `json:"weeks"`
}

// Grid is the run of whole ISO weeks covering a year plus padding.
type Grid struct {
	Year        int          `json:"year"`
	WeeksBefore int          `json:"weeks_before"`
	WeeksAfter  int          `json:"weeks_after"`
	Weeks       []Week       `json:"weeks"`
	Months      []MonthCount `json:"months"`
}

// First returns the first day of the grid.
func (g *Grid) First() calendar.Fixed {
	return g.Weeks[0][0].Fixed
}

// Last returns the last day of the grid.
func (g *Grid) Last() calendar.Fixed {
	return g.Weeks[len(g.Weeks)-1][6].Fixed
}

// Contains reports whether date falls inside the grid.
func (g *Grid) Contains(date calendar.Fixed) bool {
	return len(g.Weeks) > 0 && date >= g.First() && date <= g.Last()
}

// NewMoonEvent is one astronomical new moon.
type NewMoonEvent struct {
	Lunation          int                    `json:"lunation"`
	Moment            calendar.Moment        `json:"moment"`
	Fixed             calendar.Fixed         `json:"fixed"`
	Gregorian         calendar.GregorianDate `json:"gregorian"`
	SiderealLongitude float64                `json:"sidereal_longitude"`
}

// NewMoons indexes new moons by the day (UT) they fall on.
type NewMoons map[calendar.Fixed]NewMoonEvent

// Date is a calendar-neutral date. Cycle and Leap are only used by the
// Chinese calendar.
type Date struct {
	Cycle int  `json:"cycle,omitempty"`
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Leap  bool `json:"leap,omitempty"`
	Day   int  `json:"day"`
}

func (d Date) String() string {
	if d.Cycle != 0 {
		leap := ""
		if d.Leap {
			leap = "L"
		}
		return fmt.Sprintf("%d-%d-%d%s-%d", d.Cycle, d.Year, d.Month, leap, d.Day)
	}
	return fmt.Sprintf("%d-%d-%d", d.Year, d.Month, d.Day)
}

// AnnotatedWeek is a grid week rendered in one calendar system.
type AnnotatedWeek struct {
	ISO  int     `json:"iso"`
	Raw  Week    `json:"raw"`
	Days [7]Date `json:"days"`

	// NewMoon is set when one of the days is a new moon. NewMoonDate is
	// that day in the week's calendar.
	NewMoon     *NewMoonEvent `json:"new_moon,omitempty"`
	NewMoonDate *Date         `json:"new_moon_date,omitempty"`

	// Molad is the mean conjunction of the Hebrew month containing the
	// week's Sunday. Only set for Hebrew weeks that hold a new moon.
	Molad     *calendar.Moment `json:"molad,omitempty"`
	MoladDate *Date            `json:"molad_date,omitempty"`
}

// NewMoonIndex returns the position of the new moon in the week, or -1.
func (w *AnnotatedWeek) NewMoonIndex() int {
	if w.NewMoon == nil {
		return -1
	}
	for i, d := range w.Raw {
		if d.Fixed == w.NewMoon.Fixed {
			return i
		}
	}
	return -1
}

// CacheKey identifies one cached run of annotated weeks.
type CacheKey struct {
	System      System
	Year        int
	WeeksBefore int
	WeeksAfter  int
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%s/%d/b%d/a%d", k.System, k.Year, k.WeeksBefore, k.WeeksAfter)
}

// CacheEntry is what a Cache stores for a key.
type CacheEntry struct {
	SchemaVersion int
	Weeks         []AnnotatedWeek
}
