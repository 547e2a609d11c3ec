package render

import (
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/zapponejosh/candybar/internal/candybar"
)

// DayRow is one grid day in one calendar system.
type DayRow struct {
	ISO         int    `csv:"iso"`
	Fixed       int    `csv:"fixed"`
	Gregorian   string `csv:"gregorian"`
	System      string `csv:"system"`
	Cycle       int    `csv:"cycle,omitempty"`
	Year        int    `csv:"year"`
	Month       int    `csv:"month"`
	MonthName   string `csv:"month_name"`
	Leap        bool   `csv:"leap"`
	Day         int    `csv:"day"`
	NewMoon     bool   `csv:"new_moon"`
	NewMoonTime string `csv:"new_moon_time,omitempty"`
}

// DayRows flattens weeks into seven rows per week.
func DayRows(weeks []candybar.AnnotatedWeek, system candybar.System) []DayRow {
	rows := make([]DayRow, 0, 7*len(weeks))
	for i := range weeks {
		w := &weeks[i]
		nm := w.NewMoonIndex()
		for j, d := range w.Days {
			row := DayRow{
				ISO:       w.ISO,
				Fixed:     int(w.Raw[j].Fixed),
				Gregorian: w.Raw[j].Gregorian.String(),
				System:    system.String(),
				Cycle:     d.Cycle,
				Year:      d.Year,
				Month:     d.Month,
				MonthName: monthName(system, d),
				Leap:      d.Leap,
				Day:       d.Day,
			}
			if j == nm {
				row.NewMoon = true
				row.NewMoonTime = clock(w.NewMoon.Moment)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// CSV writes the day rows of weeks with a header line.
func CSV(w io.Writer, weeks []candybar.AnnotatedWeek, system candybar.System) error {
	data, err := csvutil.Marshal(DayRows(weeks, system))
	if err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	_, err = w.Write(data)
	return err
}
