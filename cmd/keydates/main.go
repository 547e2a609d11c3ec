// Command keydates prints the anchor dates of a Gregorian year in each
// calendar, then every new moon in the year's week grid.
//
// Usage:
//
//	go run ./cmd/keydates -year 2020
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zapponejosh/candybar/internal/calendar"
	"github.com/zapponejosh/candybar/internal/candybar"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "Year to list dates for")
	weeksBefore := flag.Int("weeks-before", 1, "Extra weeks before ISO week 1")
	weeksAfter := flag.Int("weeks-after", 0, "Extra weeks after the last ISO week")
	fudge := flag.Int("fudge", candybar.DefaultFudge, "Extra lunations searched past each end of the grid")
	flag.Parse()

	if err := run(*year, *weeksBefore, *weeksAfter, *fudge); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(year, weeksBefore, weeksAfter, fudge int) error {
	fmt.Printf("=== Key Dates for %d ===\n\n", year)

	hFirst, hLast := calendar.HebrewYearSpan(year)
	iFirst, iLast := calendar.IslamicYearSpan(year)
	fmt.Printf("  Hebrew years:    %d/%d\n", hFirst, hLast)
	fmt.Printf("  Islamic years:   %d/%d\n", iFirst, iLast)
	isoWeeks := 52
	if calendar.ISOLongYear(year) {
		isoWeeks = 53
	}
	fmt.Printf("  ISO weeks:       %d\n", isoWeeks)
	fmt.Println()

	// Equinoxes and solstices
	seasons := []struct {
		name   string
		lambda float64
	}{
		{"March Equinox", calendar.Spring},
		{"June Solstice", calendar.Summer},
		{"September Equinox", calendar.Autumn},
		{"December Solstice", calendar.Winter},
	}

	fmt.Println("Seasons:")
	jan1 := calendar.GregorianNewYear(year).Moment()
	for _, s := range seasons {
		tee := calendar.SolarLongitudeAfter(s.lambda, jan1)
		hour, minute, _ := calendar.ClockFromMoment(tee)
		fmt.Printf("  %-19s %s %02d:%02d UT\n", s.name+":", formatDate(tee.Fixed()), hour, minute)
	}
	fmt.Println()

	// Collect the anchors in date order
	anchors := []struct {
		name string
		date calendar.Fixed
	}{
		{"ISO Week 1", calendar.FixedFromISO(calendar.ISODate{Year: year, Week: 1, Day: 1})},
		{"Chinese New Year", calendar.ChineseNewYear(year)},
		{"Passover", calendar.Passover(year)},
		{"Easter", calendar.Easter(year)},
		{"1 Muharram", calendar.IslamicNewYear(year)},
		{"Rosh Hashanah", calendar.RoshHashanah(year)},
		{"Advent Start", calendar.Advent(year)},
	}

	fmt.Println("Anchors:")
	for _, a := range anchors {
		h := calendar.HebrewFromFixed(a.date)
		i := calendar.IslamicFromFixed(a.date)
		c := calendar.ChineseFromFixed(a.date)
		fmt.Printf("  %-17s %s %-9s  H %d-%02d-%02d  I %d-%02d-%02d  C %d-%d-%d-%d\n",
			a.name+":", formatDate(a.date), weekday(a.date),
			h.Year, h.Month, h.Day, i.Year, i.Month, i.Day,
			c.Cycle, c.Year, c.Month, c.Day)
	}
	fmt.Println()

	// New moons across the grid
	grid, err := candybar.BuildGrid(calendar.Standard{}, year, weeksBefore, weeksAfter)
	if err != nil {
		return err
	}
	moons := candybar.LocateNewMoons(calendar.Standard{}, grid, fudge)

	fmt.Printf("New Moons (%s to %s):\n", formatDate(grid.First()), formatDate(grid.Last()))
	for _, m := range moons.Sorted() {
		hour, minute, _ := calendar.ClockFromMoment(m.Moment)
		iso := calendar.ISOFromFixed(m.Fixed)
		line := fmt.Sprintf("  #%d  %s %02d:%02d UT  week %2d  sidereal %6.2f°",
			m.Lunation, m.Gregorian, hour, minute, iso.Week, m.SiderealLongitude)

		// The Hebrew month this conjunction begins
		h := calendar.HebrewFromFixed(m.Fixed + 15)
		molad := calendar.Molad(h.Month, h.Year)
		mh, mm, _ := calendar.ClockFromMoment(molad)
		line += fmt.Sprintf("  molad %s %02d:%02d", formatDate(molad.Fixed()), mh, mm)

		fmt.Println(line)
	}
	fmt.Printf("\n  %-15s %d\n", "TOTAL:", len(moons))

	return nil
}

func formatDate(date calendar.Fixed) string {
	return calendar.GregorianFromFixed(date).String()
}

func weekday(date calendar.Fixed) string {
	return time.Weekday(calendar.DayOfWeekFromFixed(date)).String()
}
