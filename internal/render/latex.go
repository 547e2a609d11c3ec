package render

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/zapponejosh/candybar/internal/calendar"
	"github.com/zapponejosh/candybar/internal/candybar"
)

// NewMoonMarker replaces the new moon day in LaTeX rows. It needs wasysym.
const NewMoonMarker = `\newmoon`

// sideCell is a rotated note spanning four rows of the side column.
func sideCell(s string) string {
	return fmt.Sprintf(`\multirow{4}{4mm}[6mm]{\rotatebox{270}{\small %s}}`, s)
}

// latexCell formats cell pos of a row whose month starts at column first.
// The first day of the month gets a vertical rule on its left, and on
// both sides when it is Sunday.
func latexCell(s string, pos, first int) string {
	if s == "" {
		return " "
	}
	if pos == first {
		if first == 6 {
			return `\multicolumn{1}{|c|}{` + s + `}`
		}
		return `\multicolumn{1}{|c}{` + s + `}`
	}
	return s + " "
}

// LaTeXWeek formats a week as one row of an l|ccccccc|rr tabular, with
// \cline rules outlining the month boundary when exactly one day of the
// week is the first of a month.
func LaTeXWeek(aw candybar.AnnotatedWeek) string {
	var firsts []int
	nm := aw.NewMoonIndex()
	cells := make([]string, 0, 9)
	for j, d := range aw.Days {
		if d.Day == 1 {
			firsts = append(firsts, j)
		}
		switch {
		case j == nm:
			cells = append(cells, NewMoonMarker)
		case d.Day == 0:
			cells = append(cells, "")
		default:
			cells = append(cells, strconv.Itoa(d.Day))
		}
	}

	if aw.NewMoon != nil {
		if aw.Molad != nil && aw.MoladDate != nil {
			md := aw.MoladDate
			cells = append(cells,
				sideCell(fmt.Sprintf("%d-%d-%d", md.Year, md.Month, md.Day)),
				sideCell(clock(*aw.Molad)),
			)
		} else {
			cells = append(cells, sideCell(clock(aw.NewMoon.Moment)))
		}
	}

	first := -1
	if len(firsts) == 1 {
		first = firsts[0]
	}
	formatted := make([]string, len(cells))
	for i, c := range cells {
		formatted[i] = latexCell(c, i, first)
	}
	row := strconv.Itoa(aw.ISO) + "&" + strings.Join(formatted, "&") + `\\` + "\n"

	if first < 0 {
		return row
	}
	top := fmt.Sprintf(`\cline{%d-8}`, first+2) + "\n"
	if first == 0 {
		return top + row
	}
	bottom := fmt.Sprintf(`\cline{2-%d}`, first+1) + "\n"
	return top + row + bottom
}

// LaTeXWeeks wraps the rows of weeks in their tabular.
func LaTeXWeeks(weeks []candybar.AnnotatedWeek) string {
	var b strings.Builder
	b.WriteString(`\begin{tabular}{l|ccccccc|rr}` + "\n")
	for _, w := range weeks {
		b.WriteString(LaTeXWeek(w))
	}
	b.WriteString(`\end{tabular}` + "\n")
	return b.String()
}

// Phases is the lunar column: the new moon time on each week that has one.
func Phases(weeks []candybar.AnnotatedWeek) string {
	var b strings.Builder
	b.WriteString(`\begin{tabular}{c}` + "\n")
	for _, w := range weeks {
		if w.NewMoon != nil {
			b.WriteString(clock(w.NewMoon.Moment))
		}
		b.WriteString(`\\` + "\n")
	}
	b.WriteString(`\end{tabular}` + "\n")
	return b.String()
}

// ISOWeeks lists the grid's ISO week numbers, ruled off by the Gregorian
// month of each week's Monday.
func ISOWeeks(grid *candybar.Grid) string {
	var b strings.Builder
	b.WriteString(`\begin{tabular}{| c |}\hline` + "\n")
	i := 0
	for _, m := range grid.Months {
		for range m.Weeks {
			iso := calendar.ISOFromFixed(grid.Weeks[i].Monday())
			fmt.Fprintf(&b, ` %d \\`+"\n", iso.Week)
			i++
		}
		b.WriteString(`\hline` + "\n")
	}
	b.WriteString(`\end{tabular}` + "\n")
	return b.String()
}

// monthRun is a run of consecutive weeks whose Monday is in one month.
type monthRun struct {
	year, month int
	leap        bool
	weeks       int
}

// MonthNames is the month legend for weeks in system: one column per
// month with the number of weeks it spans, last month first.
func MonthNames(system candybar.System, weeks []candybar.AnnotatedWeek) string {
	var runs []monthRun
	for _, w := range weeks {
		d := w.Days[0]
		if n := len(runs); n > 0 && runs[n-1].year == d.Year && runs[n-1].month == d.Month && runs[n-1].leap == d.Leap {
			runs[n-1].weeks++
			continue
		}
		runs = append(runs, monthRun{year: d.Year, month: d.Month, leap: d.Leap, weeks: 1})
	}
	slices.Reverse(runs)

	cols := make([]string, len(runs))
	names := make([]string, len(runs))
	counts := make([]string, len(runs))
	for i, r := range runs {
		cols[i] = `m{1.3cm} |`
		names[i] = monthName(system, candybar.Date{Year: r.year, Month: r.month, Leap: r.leap})
		counts[i] = strconv.Itoa(r.weeks)
	}

	var b strings.Builder
	b.WriteString(`\begin{tabular}{ |` + strings.Join(cols, " ") + "}\n")
	b.WriteString(`\hline` + "\n")
	b.WriteString(strings.Join(names, " & ") + ` \\` + "\n")
	b.WriteString(`\hline` + "\n")
	b.WriteString(strings.Join(counts, " & ") + ` \\` + "\n")
	b.WriteString(`\hline` + "\n")
	b.WriteString(`\end{tabular}` + "\n")
	return b.String()
}

const documentHeader = `
\documentclass[9pt,landscape]{article}
\usepackage{calc,layouts,graphicx,wasysym,multirow,array}
\usepackage[lmargin=40pt,tmargin=40pt,bmargin=0pt]{geometry}
\pagestyle{empty}
\begin{document}

\resizebox{!}{9cm}{

\begin{tabular}{|c|c|c|c|c|}
\hline
Gregorian & Lunar & Hebrew & Islamic & Chinese \\
`

const documentFooter = `
\hline
\end{tabular}}
\end{document}
`

// ErrIncompleteTable is returned when a document needs a calendar the
// table was not built with.
var ErrIncompleteTable = errors.New("table is missing a calendar system")

// Document writes a standalone LaTeX file: the Gregorian weeks, the new
// moon times, then the Hebrew, Islamic and Chinese weeks side by side.
func Document(w io.Writer, t *candybar.Table) error {
	for _, s := range candybar.Systems {
		if _, ok := t.Weeks[s]; !ok {
			return fmt.Errorf("%w: %s", ErrIncompleteTable, s)
		}
	}

	year := t.Grid.Year
	hFirst, hLast := calendar.HebrewYearSpan(year)
	iFirst, iLast := calendar.IslamicYearSpan(year)

	var b strings.Builder
	b.WriteString(documentHeader)
	fmt.Fprintf(&b, `%d& Phases & %d/%d& %d/%d& \\`+"\n", year, hFirst, hLast, iFirst, iLast)
	b.WriteString(`\hline` + "\n")

	b.WriteString(LaTeXWeeks(t.Weeks[candybar.Gregorian]) + "\n")
	b.WriteString("&\n")
	b.WriteString(Phases(t.Weeks[candybar.Gregorian]))
	b.WriteString("&\n")
	b.WriteString(LaTeXWeeks(t.Weeks[candybar.Hebrew]) + "\n")
	b.WriteString("&\n")
	b.WriteString(LaTeXWeeks(t.Weeks[candybar.Islamic]) + "\n")
	b.WriteString("&\n")
	b.WriteString(LaTeXWeeks(t.Weeks[candybar.Chinese]) + "\n")
	b.WriteString(`\\` + "\n")
	b.WriteString(documentFooter)

	_, err := io.WriteString(w, b.String())
	return err
}
