package candybar

import (
	"errors"
	"testing"

	"github.com/zapponejosh/candybar/internal/calendar"
)

func testGrid(t *testing.T, year, before, after int) *Grid {
	t.Helper()

	g, err := BuildGrid(calendar.Standard{}, year, before, after)
	if err != nil {
		t.Fatalf("BuildGrid(%d, %d, %d) error = %v", year, before, after, err)
	}
	return g
}

func TestBuildGrid_Completeness(t *testing.T) {
	g := testGrid(t, 2020, 1, 0)

	if len(g.Weeks) != 54 {
		t.Fatalf("len(Weeks) = %d, want 54", len(g.Weeks))
	}
	if days := int(g.Last()-g.First()) + 1; days != 378 {
		t.Errorf("grid spans %d days, want 378", days)
	}

	prev := g.First() - 1
	for i, w := range g.Weeks {
		for j, d := range w {
			if d.Fixed != prev+1 {
				t.Fatalf("week %d day %d = %d, want %d", i, j, d.Fixed, prev+1)
			}
			if got := calendar.GregorianFromFixed(d.Fixed); got != d.Gregorian {
				t.Fatalf("week %d day %d Gregorian = %v, want %v", i, j, d.Gregorian, got)
			}
			prev = d.Fixed
		}
	}
}

func TestBuildGrid_MondayAlignment(t *testing.T) {
	for _, year := range []int{1999, 2015, 2020, 2021, 2026} {
		g := testGrid(t, year, 2, 1)
		for i, w := range g.Weeks {
			if dow := calendar.DayOfWeekFromFixed(w.Monday()); dow != calendar.Monday {
				t.Fatalf("%d: week %d starts on weekday %d", year, i, dow)
			}
		}

		thursday := calendar.NthKday(1, calendar.Thursday, calendar.GregorianDate{Year: year, Month: 1, Day: 1})
		if got := g.Weeks[g.WeeksBefore][3].Fixed; got != thursday {
			t.Errorf("%d: ISO week 1 Thursday = %v, want %v", year,
				calendar.GregorianFromFixed(got), calendar.GregorianFromFixed(thursday))
		}
	}
}

func TestBuildGrid_2020(t *testing.T) {
	g := testGrid(t, 2020, 1, 0)

	want := calendar.GregorianDate{Year: 2019, Month: 12, Day: 23}
	if got := g.Weeks[0][0].Gregorian; got != want {
		t.Errorf("first Monday = %v, want %v", got, want)
	}
	want = calendar.GregorianDate{Year: 2019, Month: 12, Day: 30}
	if got := g.Weeks[1][0].Gregorian; got != want {
		t.Errorf("ISO week 1 Monday = %v, want %v", got, want)
	}

	// ISO week numbers run 52 (of 2019), then 1..53.
	for i, w := range g.Weeks {
		want := i
		if i == 0 {
			want = 52
		}
		if iso := calendar.ISOFromFixed(w.Monday()).Week; iso != want {
			t.Fatalf("week %d ISO = %d, want %d", i, iso, want)
		}
	}
}

func TestBuildGrid_ShortYearWraps(t *testing.T) {
	// 2019 has 52 ISO weeks, so the 53rd grid week is week 1 of 2020.
	g := testGrid(t, 2019, 0, 0)
	last := calendar.ISOFromFixed(g.Weeks[52].Monday())
	if last.Year != 2020 || last.Week != 1 {
		t.Errorf("last week = %+v, want 2020 week 1", last)
	}
}

func TestBuildGrid_MonthIndex(t *testing.T) {
	g := testGrid(t, 2020, 1, 0)

	total := 0
	for i, m := range g.Months {
		total += m.Weeks
		if i > 0 {
			prev := g.Months[i-1]
			if prev.Year > m.Year || (prev.Year == m.Year && prev.Month >= m.Month) {
				t.Errorf("Months not sorted at %d: %+v then %+v", i, prev, m)
			}
		}
	}
	if total != len(g.Weeks) {
		t.Errorf("month counts sum to %d, want %d", total, len(g.Weeks))
	}

	if first := g.Months[0]; first != (MonthCount{Year: 2019, Month: 12, Weeks: 2}) {
		t.Errorf("Months[0] = %+v, want 2019-12 with 2 weeks", first)
	}
	// Mondays in March 2020: 2, 9, 16, 23, 30.
	for _, m := range g.Months {
		if m.Year == 2020 && m.Month == 3 && m.Weeks != 5 {
			t.Errorf("March 2020 weeks = %d, want 5", m.Weeks)
		}
	}
}

func TestBuildGrid_NegativePadding(t *testing.T) {
	_, err := BuildGrid(calendar.Standard{}, 2020, -1, 0)
	if !errors.Is(err, ErrNegativePadding) {
		t.Errorf("BuildGrid() error = %v, want ErrNegativePadding", err)
	}
}
