// Package render turns annotated weeks into printable candybars: plain
// text for the terminal, LaTeX rows for the printed table, SVG bars, and
// CSV for spreadsheets.
package render

import (
	"fmt"

	"github.com/zapponejosh/candybar/internal/calendar"
	"github.com/zapponejosh/candybar/internal/candybar"
)

// clock formats the time of day of a moment as HH:MM.
func clock(m calendar.Moment) string {
	hour, minute, _ := calendar.ClockFromMoment(m)
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// monthName names the month of d. Hebrew Adar depends on the year, not
// the date.
func monthName(s candybar.System, d candybar.Date) string {
	leap := d.Leap
	if s == candybar.Hebrew {
		leap = calendar.HebrewLeapYear(d.Year)
	}
	return s.MonthName(d.Month, leap)
}
